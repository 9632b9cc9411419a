package window

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/tinyrange/evwin/internal/dl/dltest"
	"github.com/tinyrange/evwin/internal/win32"
	"github.com/tinyrange/evwin/internal/xlib"
)

func testConfig(t *testing.T, opts ...Option) *config {
	t.Helper()
	cfg := newConfig(append([]Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		func(c *config) { c.system = dltest.NewSystem() },
	}, opts...))
	return cfg
}

// fakeX records the calls an X11 backend makes and serves events from an
// in-memory queue.
type fakeX struct {
	calls []string

	display uintptr // returned by OpenDisplay
	window  uintptr // returned by CreateSimpleWindow

	atoms   map[string]uintptr
	events  []xlib.Event
	keysyms map[uint32][]xlib.Keysym // keycode to levels

	closed int
}

func newFakeX() *fakeX {
	return &fakeX{
		display: 0xd1,
		window:  0x500,
		atoms:   make(map[string]uintptr),
		keysyms: make(map[uint32][]xlib.Keysym),
	}
}

func (f *fakeX) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeX) Close() error {
	f.closed++
	f.record("Close")
	return nil
}

func (f *fakeX) OpenDisplay(name string) uintptr {
	f.record("OpenDisplay(%q)", name)
	return f.display
}

func (f *fakeX) CloseDisplay(dpy uintptr) { f.record("CloseDisplay") }
func (f *fakeX) DefaultScreen(dpy uintptr) int32 { return 0 }
func (f *fakeX) DefaultRootWindow(dpy uintptr) uintptr { return 0x100 }

func (f *fakeX) BlackPixel(dpy uintptr, screen int32) uintptr { return 0 }

func (f *fakeX) CreateSimpleWindow(dpy, parent uintptr, x, y int32, width, height, borderWidth uint32, border, background uintptr) uintptr {
	f.record("CreateSimpleWindow(%dx%d)", width, height)
	return f.window
}

func (f *fakeX) SelectInput(dpy, win uintptr, mask int64) { f.record("SelectInput(%#x)", mask) }

func (f *fakeX) InternAtom(dpy uintptr, name string) uintptr {
	a, ok := f.atoms[name]
	if !ok {
		a = uintptr(len(f.atoms) + 1)
		f.atoms[name] = a
	}
	return a
}

func (f *fakeX) SetWMProtocols(dpy, win uintptr, protocols []uintptr) {
	f.record("SetWMProtocols(%v)", protocols)
}

func (f *fakeX) SetWMProperties(dpy, win uintptr, name string) {
	f.record("SetWMProperties(%q)", name)
}

func (f *fakeX) ChangeUTF8Property(dpy, win, property, typ uintptr, value string) {
	f.record("ChangeUTF8Property(%d, %q)", property, value)
}

func (f *fakeX) Flush(dpy uintptr) { f.record("Flush") }
func (f *fakeX) MapWindow(dpy, win uintptr) { f.record("MapWindow") }
func (f *fakeX) DestroyWindow(dpy, win uintptr) { f.record("DestroyWindow") }

func (f *fakeX) Pending(dpy uintptr) int { return len(f.events) }

func (f *fakeX) NextEvent(dpy uintptr, ev *xlib.Event) {
	*ev = f.events[0]
	f.events = f.events[1:]
}

func (f *fakeX) PeekEvent(dpy uintptr, ev *xlib.Event) {
	*ev = f.events[0]
}

func (f *fakeX) LookupKeysym(ev *xlib.Event, index int) xlib.Keysym {
	levels := f.keysyms[ev.Key().Keycode]
	if index >= len(levels) {
		return xlib.NoSymbol
	}
	return levels[index]
}

func (f *fakeX) queue(evs ...xlib.Event) {
	f.events = append(f.events, evs...)
}

func xEvent(typ int32) xlib.Event {
	var ev xlib.Event
	ev.SetType(typ)
	return ev
}

func xKey(typ int32, keycode uint32, time uintptr) xlib.Event {
	ev := xEvent(typ)
	k := ev.Key()
	k.Keycode = keycode
	k.Time = time
	return ev
}

func xButtonEvent(typ int32, button uint32, x, y int32) xlib.Event {
	ev := xEvent(typ)
	b := ev.Button()
	b.Button = button
	b.X, b.Y = x, y
	return ev
}

func xMotion(x, y int32) xlib.Event {
	ev := xEvent(xlib.MotionNotify)
	m := ev.Motion()
	m.X, m.Y = x, y
	return ev
}

func xConfigure(width, height int32) xlib.Event {
	ev := xEvent(xlib.ConfigureNotify)
	c := ev.Configure()
	c.Width, c.Height = width, height
	return ev
}

func xClientMessage(messageType, data0 uintptr) xlib.Event {
	ev := xEvent(xlib.ClientMessage)
	cm := ev.ClientMessage()
	cm.MessageType = messageType
	cm.Format = 32
	cm.Data[0] = data0
	return ev
}

// fakeUser32 records the calls a Win32 backend makes. Messages queued with
// post are delivered to the window procedure by DispatchMessage.
type fakeUser32 struct {
	calls []string
	reg   *registry

	instance     uintptr
	hwnd         uintptr
	registerErr  error
	createErr    error
	leftShiftVSC uint32
	frame        int32 // added to each side by AdjustWindowRect

	// createMessages are sent through the registry during CreateWindow.
	createMessages []win32.Msg
	posted         []win32.Msg

	classes    map[string]bool
	defaulted  []uint32
	translated int
	closed     int
}

func newFakeUser32(reg *registry) *fakeUser32 {
	return &fakeUser32{
		reg:          reg,
		instance:     0x400000,
		hwnd:         0x9001,
		leftShiftVSC: 0x2a,
		frame:        8,
		classes:      make(map[string]bool),
	}
}

func (f *fakeUser32) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeUser32) Close() error {
	f.closed++
	f.record("Close")
	return nil
}

func (f *fakeUser32) ModuleHandle() uintptr { return f.instance }

func (f *fakeUser32) RegisterClass(instance uintptr, name string, wndProc uintptr) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	if f.classes[name] {
		return win32.Errno(win32.ERROR_CLASS_ALREADY_EXISTS)
	}
	f.classes[name] = true
	f.record("RegisterClass")
	return nil
}

func (f *fakeUser32) UnregisterClass(name string, instance uintptr) {
	delete(f.classes, name)
	f.record("UnregisterClass")
}

func (f *fakeUser32) AdjustWindowRect(r *win32.Rect, style uint32) {
	r.Left -= f.frame
	r.Top -= f.frame
	r.Right += f.frame
	r.Bottom += f.frame
}

func (f *fakeUser32) CreateWindow(class, title string, style uint32, x, y, width, height int32, instance uintptr) (uintptr, error) {
	f.record("CreateWindow(%q, %dx%d)", title, width, height)
	if f.createErr != nil {
		return 0, f.createErr
	}
	for _, m := range f.createMessages {
		f.reg.route(f.hwnd, m.Message, m.WParam, m.LParam)
	}
	return f.hwnd, nil
}

func (f *fakeUser32) DestroyWindow(hwnd uintptr) {
	f.record("DestroyWindow")
	f.reg.route(hwnd, win32.WM_DESTROY, 0, 0)
}

func (f *fakeUser32) DefWindowProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	f.defaulted = append(f.defaulted, msg)
	return 0
}

func (f *fakeUser32) ShowWindow(hwnd uintptr, cmd int32) { f.record("ShowWindow") }

func (f *fakeUser32) PeekMessage(m *win32.Msg, hwnd uintptr) bool {
	if len(f.posted) == 0 {
		return false
	}
	*m = f.posted[0]
	f.posted = f.posted[1:]
	return true
}

func (f *fakeUser32) TranslateMessage(m *win32.Msg) { f.translated++ }

func (f *fakeUser32) DispatchMessage(m *win32.Msg) {
	f.reg.route(m.Hwnd, m.Message, m.WParam, m.LParam)
}

func (f *fakeUser32) MapVirtualKey(code, mapType uint32) uint32 {
	if code == win32.VK_LSHIFT && mapType == win32.MAPVK_VK_TO_VSC {
		return f.leftShiftVSC
	}
	return 0
}

func (f *fakeUser32) post(msg uint32, wParam, lParam uintptr) {
	f.posted = append(f.posted, win32.Msg{Hwnd: f.hwnd, Message: msg, WParam: wParam, LParam: lParam})
}

var errFake = errors.New("fake failure")

// drain polls w until it reports no event.
func drain(w *Window) []Event {
	var out []Event
	for {
		e, ok := w.PollEvent()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func testWindow(t *testing.T, b backend) *Window {
	t.Helper()
	w := &Window{b: b, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	t.Cleanup(w.Close)
	return w
}

func assertEvents(t *testing.T, got []Event, want ...Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func assertCalls(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %q)", i, got[i], want[i], got)
		}
	}
}
