//go:build linux || freebsd

package window

import "github.com/tinyrange/evwin/internal/xlib"

func newBackend(title string, width, height int, cfg *config) (backend, error) {
	x, err := xlib.Load(cfg.system)
	if err != nil {
		return nil, &ContextError{Reason: "cannot load Xlib", Err: err}
	}
	b, err := newX11Backend(x, title, width, height, cfg)
	if err != nil {
		return nil, err
	}
	return b, nil
}
