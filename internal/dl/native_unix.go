//go:build darwin || freebsd || linux

package dl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

type unixLibrary struct {
	handle uintptr
}

func (l *unixLibrary) Lookup(symbol string) (uintptr, error) {
	return purego.Dlsym(l.handle, symbol)
}

func (l *unixLibrary) Close() error {
	return purego.Dlclose(l.handle)
}

type unixSystem struct{}

// Native returns the System backed by the platform dynamic loader.
func Native() System {
	return unixSystem{}
}

func (unixSystem) Open(filename string) (Library, error) {
	h, err := purego.Dlopen(filename, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, err
	}
	return &unixLibrary{handle: h}, nil
}

func (unixSystem) Bind(fn any, addr uintptr) error {
	return bindFunc(fn, addr)
}

// bindFunc wraps purego.RegisterFunc, which panics on unsupported func types.
func bindFunc(fn any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bind: %v", r)
		}
	}()
	purego.RegisterFunc(fn, addr)
	return nil
}
