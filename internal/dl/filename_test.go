package dl

import "testing"

func TestFilename(t *testing.T) {
	tests := []struct {
		goos, name, version, want string
	}{
		{"linux", "X11", "", "libX11.so"},
		{"linux", "X11", "6", "libX11.so.6"},
		{"freebsd", "vulkan", "1", "libvulkan.so.1"},
		{"darwin", "vulkan", "1", "libvulkan.1.dylib"},
		{"darwin", "MoltenVK", "", "libMoltenVK.dylib"},
		{"windows", "user32", "", "user32.dll"},
		{"windows", "vulkan", "1", "vulkan-1.dll"},
	}
	for _, tt := range tests {
		if got := filename(tt.goos, tt.name, tt.version); got != tt.want {
			t.Errorf("filename(%q, %q, %q) = %q, want %q", tt.goos, tt.name, tt.version, got, tt.want)
		}
	}
}
