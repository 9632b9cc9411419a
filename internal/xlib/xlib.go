// Package xlib binds the subset of libX11 used by the X11 window backend.
package xlib

import "github.com/tinyrange/evwin/internal/dl"

// Library holds the resolved libX11 entry points.
type Library struct {
	handle *dl.Handle

	xOpenDisplay         func(*byte) uintptr
	xCloseDisplay        func(uintptr) int32
	xDefaultScreen       func(uintptr) int32
	xDefaultRootWindow   func(uintptr) uintptr
	xBlackPixel          func(uintptr, int32) uintptr
	xCreateSimpleWindow  func(uintptr, uintptr, int32, int32, uint32, uint32, uint32, uintptr, uintptr) uintptr
	xSelectInput         func(uintptr, uintptr, int64) int32
	xInternAtom          func(uintptr, *byte, int32) uintptr
	xSetWMProtocols      func(uintptr, uintptr, *uintptr, int32) int32
	xutf8SetWMProperties func(uintptr, uintptr, *byte, *byte, uintptr, int32, uintptr, uintptr, uintptr)
	xChangeProperty      func(uintptr, uintptr, uintptr, uintptr, int32, int32, *byte, int32) int32
	xFlush               func(uintptr) int32
	xMapWindow           func(uintptr, uintptr) int32
	xDestroyWindow       func(uintptr, uintptr) int32
	xPending             func(uintptr) int32
	xNextEvent           func(uintptr, *Event) int32
	xPeekEvent           func(uintptr, *Event) int32
	xLookupKeysym        func(*Event, int32) uintptr
}

// Load opens libX11.so.6 through sys and binds every entry point.
func Load(sys dl.System) (*Library, error) {
	l := &Library{}
	h, err := dl.Load(sys, dl.Spec{
		Name:    "X11",
		Version: "6",
		Symbols: []dl.Symbol{
			{Name: "XOpenDisplay", Fn: &l.xOpenDisplay},
			{Name: "XCloseDisplay", Fn: &l.xCloseDisplay},
			{Name: "XDefaultScreen", Fn: &l.xDefaultScreen},
			{Name: "XDefaultRootWindow", Fn: &l.xDefaultRootWindow},
			{Name: "XBlackPixel", Fn: &l.xBlackPixel},
			{Name: "XCreateSimpleWindow", Fn: &l.xCreateSimpleWindow},
			{Name: "XSelectInput", Fn: &l.xSelectInput},
			{Name: "XInternAtom", Fn: &l.xInternAtom},
			{Name: "XSetWMProtocols", Fn: &l.xSetWMProtocols},
			{Name: "Xutf8SetWMProperties", Fn: &l.xutf8SetWMProperties},
			{Name: "XChangeProperty", Fn: &l.xChangeProperty},
			{Name: "XFlush", Fn: &l.xFlush},
			{Name: "XMapWindow", Fn: &l.xMapWindow},
			{Name: "XDestroyWindow", Fn: &l.xDestroyWindow},
			{Name: "XPending", Fn: &l.xPending},
			{Name: "XNextEvent", Fn: &l.xNextEvent},
			{Name: "XPeekEvent", Fn: &l.xPeekEvent},
			{Name: "XLookupKeysym", Fn: &l.xLookupKeysym},
		},
	})
	if err != nil {
		return nil, err
	}
	l.handle = h
	return l, nil
}

// Close releases libX11.
func (l *Library) Close() error {
	return l.handle.Close()
}

// OpenDisplay connects to the named display, or $DISPLAY if name is empty.
// It returns 0 on failure.
func (l *Library) OpenDisplay(name string) uintptr {
	if name == "" {
		return l.xOpenDisplay(nil)
	}
	return l.xOpenDisplay(cString(name))
}

func (l *Library) CloseDisplay(dpy uintptr) {
	l.xCloseDisplay(dpy)
}

func (l *Library) DefaultScreen(dpy uintptr) int32 {
	return l.xDefaultScreen(dpy)
}

func (l *Library) DefaultRootWindow(dpy uintptr) uintptr {
	return l.xDefaultRootWindow(dpy)
}

func (l *Library) BlackPixel(dpy uintptr, screen int32) uintptr {
	return l.xBlackPixel(dpy, screen)
}

func (l *Library) CreateSimpleWindow(dpy, parent uintptr, x, y int32, width, height, borderWidth uint32, border, background uintptr) uintptr {
	return l.xCreateSimpleWindow(dpy, parent, x, y, width, height, borderWidth, border, background)
}

func (l *Library) SelectInput(dpy, win uintptr, mask int64) {
	l.xSelectInput(dpy, win, mask)
}

// InternAtom returns the atom for name, creating it if needed.
func (l *Library) InternAtom(dpy uintptr, name string) uintptr {
	return l.xInternAtom(dpy, cString(name), 0)
}

func (l *Library) SetWMProtocols(dpy, win uintptr, protocols []uintptr) {
	if len(protocols) == 0 {
		return
	}
	l.xSetWMProtocols(dpy, win, &protocols[0], int32(len(protocols)))
}

// SetWMProperties sets the window and icon names through Xutf8SetWMProperties.
func (l *Library) SetWMProperties(dpy, win uintptr, name string) {
	s := cString(name)
	l.xutf8SetWMProperties(dpy, win, s, s, 0, 0, 0, 0, 0)
}

// ChangeUTF8Property replaces property with value as an 8-bit list of type typ.
func (l *Library) ChangeUTF8Property(dpy, win, property, typ uintptr, value string) {
	data := cString(value)
	l.xChangeProperty(dpy, win, property, typ, 8, PropModeReplace, data, int32(len(value)))
}

func (l *Library) Flush(dpy uintptr) {
	l.xFlush(dpy)
}

func (l *Library) MapWindow(dpy, win uintptr) {
	l.xMapWindow(dpy, win)
}

func (l *Library) DestroyWindow(dpy, win uintptr) {
	l.xDestroyWindow(dpy, win)
}

// Pending returns the number of events read from the connection but not yet
// removed from the queue.
func (l *Library) Pending(dpy uintptr) int {
	return int(l.xPending(dpy))
}

func (l *Library) NextEvent(dpy uintptr, ev *Event) {
	l.xNextEvent(dpy, ev)
}

func (l *Library) PeekEvent(dpy uintptr, ev *Event) {
	l.xPeekEvent(dpy, ev)
}

// LookupKeysym returns the keysym at index for a KeyPress or KeyRelease event.
func (l *Library) LookupKeysym(ev *Event, index int) Keysym {
	return Keysym(l.xLookupKeysym(ev, int32(index)))
}

func cString(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}
