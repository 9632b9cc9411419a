package window

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/tinyrange/evwin/internal/gfx"
	"github.com/tinyrange/evwin/internal/win32"
)

// user32API is the part of user32 and kernel32 the Win32 backend calls.
// *win32.Library implements it.
type user32API interface {
	Close() error
	ModuleHandle() uintptr
	RegisterClass(instance uintptr, name string, wndProc uintptr) error
	UnregisterClass(name string, instance uintptr)
	AdjustWindowRect(r *win32.Rect, style uint32)
	CreateWindow(class, title string, style uint32, x, y, width, height int32, instance uintptr) (uintptr, error)
	DestroyWindow(hwnd uintptr)
	DefWindowProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr
	ShowWindow(hwnd uintptr, cmd int32)
	PeekMessage(m *win32.Msg, hwnd uintptr) bool
	TranslateMessage(m *win32.Msg)
	DispatchMessage(m *win32.Msg)
	MapVirtualKey(code, mapType uint32) uint32
}

const win32WindowStyle = win32.WS_OVERLAPPEDWINDOW | win32.WS_VISIBLE

var classSeq atomic.Uint64

// className returns a class name no other window in this process uses.
func className() string {
	return fmt.Sprintf("evwin_%d_%d", os.Getpid(), classSeq.Add(1))
}

type win32Backend struct {
	u       user32API
	windows *registry

	instance  uintptr
	className string
	hwnd      uintptr

	width, height int
	leftShiftScan uint32

	// inbox collects events translated by the window procedure, which the
	// system may call outside of pump, for example during CreateWindow.
	inbox eventQueue

	td teardown
}

// newWin32Backend takes ownership of u and closes it on failure or destroy.
// wndProc must be a native callback that routes to reg.
func newWin32Backend(u user32API, reg *registry, wndProc uintptr, title string, width, height int, cfg *config) (*win32Backend, error) {
	b := &win32Backend{
		u:       u,
		windows: reg,
		width:   width,
		height:  height,
		td:      teardown{log: cfg.log},
	}
	b.td.push("user32", func() { u.Close() })

	if cfg.graphics != gfx.None {
		h, err := gfx.Probe(cfg.system, cfg.graphics)
		if err != nil {
			b.td.run()
			return nil, &ContextError{Reason: "cannot load " + string(cfg.graphics) + " library", Err: err}
		}
		if h != nil {
			b.td.push("graphics loader", func() { h.Close() })
		}
	}

	b.instance = u.ModuleHandle()
	if b.instance == 0 {
		b.td.run()
		return nil, &ContextError{Reason: "cannot get the module handle"}
	}

	b.className = className()
	if err := u.RegisterClass(b.instance, b.className, wndProc); err != nil {
		b.td.run()
		return nil, &ContextError{Reason: "cannot register the window class", Err: err}
	}
	b.td.push("window class", func() { u.UnregisterClass(b.className, b.instance) })

	r := win32.Rect{Right: int32(width), Bottom: int32(height)}
	u.AdjustWindowRect(&r, win32WindowStyle)

	reg.pending = b
	hwnd, err := u.CreateWindow(b.className, title, win32WindowStyle,
		win32.CW_USEDEFAULT, win32.CW_USEDEFAULT, r.Right-r.Left, r.Bottom-r.Top, b.instance)
	reg.pending = nil
	if err != nil {
		reg.forget(b)
		b.td.run()
		return nil, windowCreationError(err)
	}
	b.hwnd = hwnd
	reg.add(hwnd, b)
	b.td.push("window", func() {
		u.DestroyWindow(hwnd)
		reg.forget(b)
	})

	u.ShowWindow(hwnd, win32.SW_SHOW)
	b.leftShiftScan = u.MapVirtualKey(win32.VK_LSHIFT, win32.MAPVK_VK_TO_VSC)
	return b, nil
}

func (b *win32Backend) pump(q *eventQueue) {
	var m win32.Msg
	for b.u.PeekMessage(&m, b.hwnd) {
		b.u.TranslateMessage(&m)
		b.u.DispatchMessage(&m)
	}
	for {
		e, ok := b.inbox.pop()
		if !ok {
			return
		}
		q.push(e)
	}
}

func (b *win32Backend) size() (int, int) {
	return b.width, b.height
}

func (b *win32Backend) destroy() {
	b.td.run()
}

// windowProc translates msg into the inbox. Messages that produce an event
// return 0. Everything else, and system keys so that Alt+F4 keeps working,
// also goes to DefWindowProc.
func (b *win32Backend) windowProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	e, ok := b.translate(msg, wParam, lParam)
	if ok {
		b.inbox.push(e)
	}
	switch {
	case msg == win32.WM_SYSKEYDOWN || msg == win32.WM_SYSKEYUP:
	case msg == win32.WM_CLOSE:
		// The caller decides whether to Close.
		return 0
	case ok:
		return 0
	}
	return b.u.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (b *win32Backend) translate(msg uint32, wParam, lParam uintptr) (Event, bool) {
	switch msg {
	// Window
	case win32.WM_CLOSE:
		return CloseEvent{}, true
	case win32.WM_SETFOCUS:
		return GainFocusEvent{}, true
	case win32.WM_KILLFOCUS:
		return LoseFocusEvent{}, true
	case win32.WM_SIZE:
		width, height := int(win32.LoWord(lParam)), int(win32.HiWord(lParam))
		changed := width != b.width || height != b.height
		b.width, b.height = width, height
		if changed {
			return ResizeEvent{Width: width, Height: height}, true
		}

	// Keyboard
	case win32.WM_KEYDOWN, win32.WM_SYSKEYDOWN:
		if win32.HiWord(lParam)&win32.KF_REPEAT != 0 {
			return nil, false
		}
		if key, ok := win32Key(wParam, lParam, b.leftShiftScan); ok {
			return KeyPressEvent{Key: key}, true
		}
	case win32.WM_KEYUP, win32.WM_SYSKEYUP:
		if key, ok := win32Key(wParam, lParam, b.leftShiftScan); ok {
			return KeyReleaseEvent{Key: key}, true
		}

	// Mouse
	case win32.WM_MOUSEMOVE:
		x, y := win32.PointFromLParam(lParam)
		return MouseMoveEvent{X: int(x), Y: int(y)}, true
	case win32.WM_LBUTTONDOWN:
		return buttonPress(ButtonLeft, lParam), true
	case win32.WM_LBUTTONUP:
		return buttonRelease(ButtonLeft, lParam), true
	case win32.WM_RBUTTONDOWN:
		return buttonPress(ButtonRight, lParam), true
	case win32.WM_RBUTTONUP:
		return buttonRelease(ButtonRight, lParam), true
	case win32.WM_MBUTTONDOWN:
		return buttonPress(ButtonMiddle, lParam), true
	case win32.WM_MBUTTONUP:
		return buttonRelease(ButtonMiddle, lParam), true
	case win32.WM_XBUTTONDOWN:
		return buttonPress(xButton(wParam), lParam), true
	case win32.WM_XBUTTONUP:
		return buttonRelease(xButton(wParam), lParam), true
	case win32.WM_MOUSEWHEEL:
		if win32.WheelDelta(wParam) > 0 {
			return MouseScrollUpEvent{}, true
		}
		return MouseScrollDownEvent{}, true
	}
	return nil, false
}

func xButton(wParam uintptr) Button {
	if win32.XButton(wParam) == win32.XBUTTON1 {
		return ButtonBack
	}
	return ButtonForward
}

func buttonPress(button Button, lParam uintptr) Event {
	x, y := win32.PointFromLParam(lParam)
	return MouseButtonPressEvent{Button: button, X: int(x), Y: int(y)}
}

func buttonRelease(button Button, lParam uintptr) Event {
	x, y := win32.PointFromLParam(lParam)
	return MouseButtonReleaseEvent{Button: button, X: int(x), Y: int(y)}
}
