//go:build windows

package window

import (
	"sync"

	"golang.org/x/sys/windows"

	"github.com/tinyrange/evwin/internal/win32"
)

var (
	hwnds = newRegistry()

	wndProcOnce sync.Once
	wndProc     uintptr

	defWindowProc = windows.NewLazySystemDLL("user32.dll").NewProc("DefWindowProcW")
)

// route is the window procedure of every class this package registers.
// Windows limits the number of callbacks a process can create, so it is
// created once.
func route(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	if r, ok := hwnds.route(hwnd, msg, wParam, lParam); ok {
		return r
	}
	r, _, _ := defWindowProc.Call(hwnd, uintptr(msg), wParam, lParam)
	return r
}

func newBackend(title string, width, height int, cfg *config) (backend, error) {
	u, err := win32.Load(cfg.system)
	if err != nil {
		return nil, &ContextError{Reason: "cannot load user32", Err: err}
	}
	wndProcOnce.Do(func() { wndProc = windows.NewCallback(route) })
	b, err := newWin32Backend(u, hwnds, wndProc, title, width, height, cfg)
	if err != nil {
		return nil, err
	}
	return b, nil
}
