package dl

import "runtime"

// Filename returns the platform file name for a library base name and an
// optional version, e.g. libX11.so.6 or vulkan-1.dll.
func Filename(name, version string) string {
	return filename(runtime.GOOS, name, version)
}

func filename(goos, name, version string) string {
	switch goos {
	case "windows":
		if version == "" {
			return name + ".dll"
		}
		return name + "-" + version + ".dll"
	case "darwin", "ios":
		if version == "" {
			return "lib" + name + ".dylib"
		}
		return "lib" + name + "." + version + ".dylib"
	default:
		if version == "" {
			return "lib" + name + ".so"
		}
		return "lib" + name + ".so." + version
	}
}
