//go:build !darwin && !freebsd && !linux && !windows

package dl

import (
	"errors"
	"runtime"
)

var errNoLoader = errors.New("no dynamic loader on " + runtime.GOOS)

type unsupportedSystem struct{}

// Native returns a System whose every Open fails.
func Native() System {
	return unsupportedSystem{}
}

func (unsupportedSystem) Open(string) (Library, error) {
	return nil, errNoLoader
}

func (unsupportedSystem) Bind(any, uintptr) error {
	return errNoLoader
}
