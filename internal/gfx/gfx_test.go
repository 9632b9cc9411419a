package gfx

import (
	"errors"
	"runtime"
	"testing"
	"unsafe"

	"github.com/tinyrange/evwin/internal/dl"
	"github.com/tinyrange/evwin/internal/dl/dltest"
)

func TestParseLoader(t *testing.T) {
	tests := []struct {
		in      string
		want    Loader
		wantErr bool
	}{
		{"", None, false},
		{"none", None, false},
		{"vulkan", Vulkan, false},
		{"opengl", OpenGL, false},
		{"metal", None, true},
	}
	for _, tt := range tests {
		got, err := ParseLoader(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLoader(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseLoader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProbe_None(t *testing.T) {
	h, err := Probe(dltest.NewSystem(), None)
	if err != nil || h != nil {
		t.Fatalf("expected nil handle and nil error, got %v, %v", h, err)
	}
}

func TestProbe_VulkanMissing(t *testing.T) {
	_, err := Probe(dltest.NewSystem(), Vulkan)
	if !errors.Is(err, dl.ErrLibraryNotFound) {
		t.Fatalf("expected ErrLibraryNotFound, got %v", err)
	}
}

func TestProbe_VulkanAsksForCreateInstance(t *testing.T) {
	sys := dltest.NewSystem()
	var asked []string
	sys.Add(dl.Filename("vulkan", "1"), map[string]any{
		"vkGetInstanceProcAddr": func(instance uintptr, name *byte) uintptr {
			asked = append(asked, cstring(name))
			return 0xdead
		},
	})

	h, err := Probe(sys, Vulkan)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	defer h.Close()
	if len(asked) != 1 || asked[0] != "vkCreateInstance" {
		t.Fatalf("expected one query for vkCreateInstance, got %v", asked)
	}
}

func TestProbe_VulkanWithoutEntryPointIsReleased(t *testing.T) {
	sys := dltest.NewSystem()
	lib := sys.Add(dl.Filename("vulkan", "1"), map[string]any{
		"vkGetInstanceProcAddr": func(uintptr, *byte) uintptr { return 0 },
	})

	if _, err := Probe(sys, Vulkan); !errors.Is(err, ErrNoEntryPoint) {
		t.Fatalf("expected ErrNoEntryPoint, got %v", err)
	}
	if lib.Closes != 1 {
		t.Fatalf("expected the loader to be closed, got %d closes", lib.Closes)
	}
}

func TestProbe_OpenGL(t *testing.T) {
	spec, err := openGLSpec(runtime.GOOS)
	if err != nil {
		t.Skipf("no OpenGL loader on %s", runtime.GOOS)
	}
	sys := dltest.NewSystem()
	sys.Add(dl.Filename(spec.Name, spec.Version), map[string]any{spec.Symbols[0].Name: nil})

	h, err := Probe(sys, OpenGL)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenGLSpec_UnsupportedPlatform(t *testing.T) {
	if _, err := openGLSpec("darwin"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func cstring(p *byte) string {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
