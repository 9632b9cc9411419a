// Package dl resolves a fixed set of native function symbols from a shared
// library and binds them to typed Go func variables.
//
// A successful Load returns a Handle in which every declared symbol was
// found. The loader checks that each address is non-null, but it cannot check
// that the library's ABI matches the declared Go signature; that is the
// caller's contract.
package dl

import (
	"errors"
	"fmt"
)

var (
	// ErrLibraryNotFound is returned when the shared library cannot be opened.
	ErrLibraryNotFound = errors.New("library not found")
	// ErrSymbolNotFound is returned when a declared symbol is missing.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// LoadError describes a failed Load. It matches ErrLibraryNotFound or
// ErrSymbolNotFound with errors.Is, and the platform cause if there is one.
type LoadError struct {
	Filename string
	Symbol   string
	Err      error
	Cause    error
}

func (e *LoadError) Error() string {
	msg := e.Filename + ": " + e.Err.Error()
	if e.Symbol != "" {
		msg = fmt.Sprintf("%s: %s %q", e.Filename, e.Err, e.Symbol)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Symbol declares one exported function. Fn is a pointer to a func variable
// carrying the parameter and return types, or nil if only the address is
// wanted.
type Symbol struct {
	Name string
	Fn   any
}

// Spec declares a library by base name and optional version together with
// the symbols that must resolve for the load to succeed.
type Spec struct {
	Name    string
	Version string
	Symbols []Symbol
}

// Library is an opened native library.
type Library interface {
	Lookup(symbol string) (uintptr, error)
	Close() error
}

// System opens libraries and turns resolved addresses into callable funcs.
type System interface {
	Open(filename string) (Library, error)
	Bind(fn any, addr uintptr) error
}

// Handle owns an opened library and the addresses resolved from it.
type Handle struct {
	filename string
	lib      Library
	symbols  map[string]uintptr
}

// Load opens the library described by spec and resolves all its symbols.
// Either every symbol is resolved and bound, or the library is closed again
// and no handle is returned.
func Load(sys System, spec Spec) (*Handle, error) {
	filename := Filename(spec.Name, spec.Version)

	lib, err := sys.Open(filename)
	if err != nil {
		return nil, &LoadError{Filename: filename, Err: ErrLibraryNotFound, Cause: err}
	}

	symbols := make(map[string]uintptr, len(spec.Symbols))
	for _, sym := range spec.Symbols {
		addr, err := lib.Lookup(sym.Name)
		if err == nil && addr == 0 {
			err = errors.New("null address")
		}
		if err == nil && sym.Fn != nil {
			err = sys.Bind(sym.Fn, addr)
		}
		if err != nil {
			lib.Close()
			return nil, &LoadError{Filename: filename, Symbol: sym.Name, Err: ErrSymbolNotFound, Cause: err}
		}
		symbols[sym.Name] = addr
	}

	return &Handle{filename: filename, lib: lib, symbols: symbols}, nil
}

// Filename returns the file name the library was opened with.
func (h *Handle) Filename() string {
	return h.filename
}

// Lookup returns the address resolved for name at load time.
func (h *Handle) Lookup(name string) (uintptr, bool) {
	addr, ok := h.symbols[name]
	return addr, ok
}

// Close releases the library. Only the first call has an effect.
func (h *Handle) Close() error {
	if h == nil || h.lib == nil {
		return nil
	}
	lib := h.lib
	h.lib = nil
	h.symbols = nil
	return lib.Close()
}
