// Package dltest provides an in-memory dl.System for tests.
package dltest

import (
	"fmt"
	"reflect"

	"github.com/tinyrange/evwin/internal/dl"
)

// System serves libraries registered with Add. Bound funcs call the Go stubs
// that were registered for each symbol.
type System struct {
	libs  map[string]*Library
	stubs map[uintptr]any
	next  uintptr

	// Log records "open <file>" and "close <file>" in call order.
	Log []string
}

// NewSystem returns an empty System.
func NewSystem() *System {
	return &System{
		libs:  make(map[string]*Library),
		stubs: make(map[uintptr]any),
		next:  0x1000,
	}
}

// Library is a registered fake library.
type Library struct {
	sys      *System
	filename string
	symbols  map[string]uintptr

	Opens  int
	Closes int
}

// Add registers filename with the given symbol stubs. A nil stub declares an
// address without a callable body.
func (s *System) Add(filename string, stubs map[string]any) *Library {
	lib := &Library{sys: s, filename: filename, symbols: make(map[string]uintptr)}
	for name, stub := range stubs {
		s.next += 0x10
		lib.symbols[name] = s.next
		if stub != nil {
			s.stubs[s.next] = stub
		}
	}
	s.libs[filename] = lib
	return lib
}

// Library returns the library registered under filename, or nil.
func (s *System) Library(filename string) *Library {
	return s.libs[filename]
}

func (s *System) Open(filename string) (dl.Library, error) {
	lib, ok := s.libs[filename]
	if !ok {
		return nil, fmt.Errorf("%s: cannot open shared object file", filename)
	}
	lib.Opens++
	s.Log = append(s.Log, "open "+filename)
	return lib, nil
}

func (s *System) Bind(fn any, addr uintptr) error {
	stub, ok := s.stubs[addr]
	if !ok {
		return fmt.Errorf("no stub at %#x", addr)
	}
	dst := reflect.ValueOf(fn)
	if dst.Kind() != reflect.Pointer || dst.Elem().Kind() != reflect.Func {
		return fmt.Errorf("bind target %T is not a pointer to func", fn)
	}
	src := reflect.ValueOf(stub)
	if !src.Type().AssignableTo(dst.Elem().Type()) {
		return fmt.Errorf("stub %s does not match %s", src.Type(), dst.Elem().Type())
	}
	dst.Elem().Set(src)
	return nil
}

func (l *Library) Lookup(symbol string) (uintptr, error) {
	addr, ok := l.symbols[symbol]
	if !ok {
		return 0, fmt.Errorf("undefined symbol: %s", symbol)
	}
	return addr, nil
}

func (l *Library) Close() error {
	l.Closes++
	l.sys.Log = append(l.sys.Log, "close "+l.filename)
	return nil
}
