//go:build windows

package dl

import (
	"fmt"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

type windowsLibrary struct {
	handle windows.Handle
}

func (l *windowsLibrary) Lookup(symbol string) (uintptr, error) {
	return windows.GetProcAddress(l.handle, symbol)
}

func (l *windowsLibrary) Close() error {
	return windows.FreeLibrary(l.handle)
}

type windowsSystem struct{}

// Native returns the System backed by LoadLibrary and GetProcAddress.
func Native() System {
	return windowsSystem{}
}

func (windowsSystem) Open(filename string) (Library, error) {
	h, err := windows.LoadLibrary(filename)
	if err != nil {
		return nil, err
	}
	return &windowsLibrary{handle: h}, nil
}

func (windowsSystem) Bind(fn any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bind: %v", r)
		}
	}()
	purego.RegisterFunc(fn, addr)
	return nil
}
