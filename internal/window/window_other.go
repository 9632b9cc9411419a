//go:build !linux && !freebsd && !windows

package window

func newBackend(title string, width, height int, cfg *config) (backend, error) {
	return nil, ErrUnsupported
}
