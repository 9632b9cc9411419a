// Package gfx verifies that a graphics API loader is installed before a
// window is created. It does not create any graphics objects.
package gfx

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/tinyrange/evwin/internal/dl"
)

// Loader names a graphics API whose loader library can be probed.
type Loader string

const (
	// None skips the probe.
	None Loader = "none"
	// Vulkan probes the Vulkan loader (libvulkan.so.1, vulkan-1.dll) and asks
	// it for vkCreateInstance.
	Vulkan Loader = "vulkan"
	// OpenGL probes the platform OpenGL library (libGL.so.1, opengl32.dll).
	OpenGL Loader = "opengl"
)

// ErrUnsupported is returned for a loader that has no library on this OS.
var ErrUnsupported = errors.New("graphics loader not supported on this platform")

// ErrNoEntryPoint is returned when the Vulkan loader opens but cannot hand
// out global entry points.
var ErrNoEntryPoint = errors.New("vkGetInstanceProcAddr returned no vkCreateInstance")

// ParseLoader maps a configuration value to a Loader. The empty string is
// None.
func ParseLoader(s string) (Loader, error) {
	switch Loader(s) {
	case "", None:
		return None, nil
	case Vulkan, OpenGL:
		return Loader(s), nil
	}
	return None, fmt.Errorf("unknown graphics loader %q", s)
}

type vulkanLibrary struct {
	vkGetInstanceProcAddr func(uintptr, *byte) uintptr
}

// Probe loads the library for l through sys and returns its handle, which
// the caller keeps open for as long as the graphics API may be used. Probe
// returns a nil handle and no error for None.
func Probe(sys dl.System, l Loader) (*dl.Handle, error) {
	switch l {
	case None, "":
		return nil, nil
	case Vulkan:
		return probeVulkan(sys)
	case OpenGL:
		spec, err := openGLSpec(runtime.GOOS)
		if err != nil {
			return nil, err
		}
		return dl.Load(sys, spec)
	}
	return nil, fmt.Errorf("unknown graphics loader %q", l)
}

func probeVulkan(sys dl.System) (*dl.Handle, error) {
	var vk vulkanLibrary
	h, err := dl.Load(sys, dl.Spec{
		Name:    "vulkan",
		Version: "1",
		Symbols: []dl.Symbol{
			{Name: "vkGetInstanceProcAddr", Fn: &vk.vkGetInstanceProcAddr},
		},
	})
	if err != nil {
		return nil, err
	}
	name := append([]byte("vkCreateInstance"), 0)
	if vk.vkGetInstanceProcAddr(0, &name[0]) == 0 {
		h.Close()
		return nil, ErrNoEntryPoint
	}
	return h, nil
}

func openGLSpec(goos string) (dl.Spec, error) {
	switch goos {
	case "windows":
		return dl.Spec{Name: "opengl32", Symbols: []dl.Symbol{{Name: "wglGetProcAddress"}}}, nil
	case "linux", "freebsd":
		return dl.Spec{Name: "GL", Version: "1", Symbols: []dl.Symbol{{Name: "glXGetProcAddressARB"}}}, nil
	}
	return dl.Spec{}, fmt.Errorf("%w: %s on %s", ErrUnsupported, OpenGL, goos)
}
