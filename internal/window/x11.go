package window

import (
	"github.com/tinyrange/evwin/internal/gfx"
	"github.com/tinyrange/evwin/internal/xlib"
)

// xlibAPI is the part of libX11 the X11 backend calls. *xlib.Library
// implements it.
type xlibAPI interface {
	Close() error
	OpenDisplay(name string) uintptr
	CloseDisplay(dpy uintptr)
	DefaultScreen(dpy uintptr) int32
	DefaultRootWindow(dpy uintptr) uintptr
	BlackPixel(dpy uintptr, screen int32) uintptr
	CreateSimpleWindow(dpy, parent uintptr, x, y int32, width, height, borderWidth uint32, border, background uintptr) uintptr
	SelectInput(dpy, win uintptr, mask int64)
	InternAtom(dpy uintptr, name string) uintptr
	SetWMProtocols(dpy, win uintptr, protocols []uintptr)
	SetWMProperties(dpy, win uintptr, name string)
	ChangeUTF8Property(dpy, win, property, typ uintptr, value string)
	Flush(dpy uintptr)
	MapWindow(dpy, win uintptr)
	DestroyWindow(dpy, win uintptr)
	Pending(dpy uintptr) int
	NextEvent(dpy uintptr, ev *xlib.Event)
	PeekEvent(dpy uintptr, ev *xlib.Event)
	LookupKeysym(ev *xlib.Event, index int) xlib.Keysym
}

const x11EventMask = xlib.ButtonPressMask |
	xlib.ButtonReleaseMask |
	xlib.ExposureMask |
	xlib.FocusChangeMask |
	xlib.PointerMotionMask |
	xlib.KeyPressMask |
	xlib.KeyReleaseMask |
	xlib.StructureNotifyMask

// A release followed this closely (in server milliseconds) by a press of the
// same keycode was generated by key auto-repeat.
const autoRepeatThreshold = 20

// XLookupKeysym is asked for this many shift levels before a key is dropped.
const keysymLevels = 4

type x11Backend struct {
	x       xlibAPI
	display uintptr
	window  uintptr

	wmProtocols    uintptr
	wmDeleteWindow uintptr

	width, height int

	td teardown
}

// newX11Backend takes ownership of x and closes it on failure or destroy.
func newX11Backend(x xlibAPI, title string, width, height int, cfg *config) (*x11Backend, error) {
	b := &x11Backend{x: x, width: width, height: height, td: teardown{log: cfg.log}}
	b.td.push("xlib", func() { x.Close() })

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

	dpy := x.OpenDisplay(cfg.display)
	if dpy == 0 {
		b.td.run()
		return nil, &ContextError{Reason: "cannot open X display"}
	}
	b.display = dpy
	b.td.push("display", func() { x.CloseDisplay(dpy) })

	b.wmProtocols = x.InternAtom(dpy, "WM_PROTOCOLS")
	b.wmDeleteWindow = x.InternAtom(dpy, "WM_DELETE_WINDOW")
	utf8String := x.InternAtom(dpy, "UTF8_STRING")
	netWMName := x.InternAtom(dpy, "_NET_WM_NAME")
	netWMIconName := x.InternAtom(dpy, "_NET_WM_ICON_NAME")

	screen := x.DefaultScreen(dpy)
	black := x.BlackPixel(dpy, screen)
	win := x.CreateSimpleWindow(dpy, x.DefaultRootWindow(dpy), 0, 0, uint32(width), uint32(height), 1, black, black)
	if win == 0 {
		b.td.run()
		return nil, windowCreationError(nil)
	}
	b.window = win
	b.td.push("window", func() { x.DestroyWindow(dpy, win) })

	x.SelectInput(dpy, win, x11EventMask)

	x.SetWMProperties(dpy, win, title)
	x.ChangeUTF8Property(dpy, win, netWMName, utf8String, title)
	x.ChangeUTF8Property(dpy, win, netWMIconName, utf8String, title)
	x.Flush(dpy)

	// Ask the window manager for a WM_DELETE_WINDOW message instead of
	// killing the connection when the user closes the window.
	x.SetWMProtocols(dpy, win, []uintptr{b.wmDeleteWindow})

	x.MapWindow(dpy, win)
	return b, nil
}

func (b *x11Backend) pump(q *eventQueue) {
	for b.x.Pending(b.display) > 0 {
		var ev xlib.Event
		b.x.NextEvent(b.display, &ev)
		if e, ok := b.translate(&ev); ok {
			q.push(e)
		}
	}
}

func (b *x11Backend) size() (int, int) {
	return b.width, b.height
}

func (b *x11Backend) destroy() {
	b.td.run()
}

func (b *x11Backend) translate(ev *xlib.Event) (Event, bool) {
	switch ev.Type() {
	// Window
	case xlib.ClientMessage:
		cm := ev.ClientMessage()
		if cm.MessageType == b.wmProtocols && cm.Data[0] == b.wmDeleteWindow {
			return CloseEvent{}, true
		}
	case xlib.FocusIn:
		return GainFocusEvent{}, true
	case xlib.FocusOut:
		return LoseFocusEvent{}, true
	case xlib.ConfigureNotify:
		c := ev.Configure()
		width, height := int(c.Width), int(c.Height)
		changed := width != b.width || height != b.height
		b.width, b.height = width, height
		if changed {
			return ResizeEvent{Width: width, Height: height}, true
		}

	// Keyboard
	case xlib.KeyPress:
		if key, ok := b.lookupKey(ev); ok {
			return KeyPressEvent{Key: key}, true
		}
	case xlib.KeyRelease:
		if b.consumeRepeat(ev) {
			return nil, false
		}
		if key, ok := b.lookupKey(ev); ok {
			return KeyReleaseEvent{Key: key}, true
		}

	// Mouse
	case xlib.ButtonPress:
		be := ev.Button()
		switch be.Button {
		case xlib.Button4:
			return MouseScrollUpEvent{}, true
		case xlib.Button5:
			return MouseScrollDownEvent{}, true
		}
		if button, ok := x11Button(be.Button); ok {
			return MouseButtonPressEvent{Button: button, X: int(be.X), Y: int(be.Y)}, true
		}
	case xlib.ButtonRelease:
		be := ev.Button()
		if button, ok := x11Button(be.Button); ok {
			return MouseButtonReleaseEvent{Button: button, X: int(be.X), Y: int(be.Y)}, true
		}
	case xlib.MotionNotify:
		m := ev.Motion()
		return MouseMoveEvent{X: int(m.X), Y: int(m.Y)}, true
	}
	return nil, false
}

// consumeRepeat reports whether release is the first half of an auto-repeat
// pair. If so the matching press is removed from the native queue.
func (b *x11Backend) consumeRepeat(release *xlib.Event) bool {
	if b.x.Pending(b.display) == 0 {
		return false
	}
	var next xlib.Event
	b.x.PeekEvent(b.display, &next)
	if next.Type() != xlib.KeyPress {
		return false
	}
	nk, rk := next.Key(), release.Key()
	if nk.Keycode != rk.Keycode || nk.Time-rk.Time >= autoRepeatThreshold {
		return false
	}
	b.x.NextEvent(b.display, &next)
	return true
}

func (b *x11Backend) lookupKey(ev *xlib.Event) (Key, bool) {
	for level := 0; level < keysymLevels; level++ {
		if key, ok := x11Key(b.x.LookupKeysym(ev, level)); ok {
			return key, true
		}
	}
	return KeyUnknown, false
}
