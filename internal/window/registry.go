package window

// windowProc handles a message delivered to a native window.
type windowProc interface {
	windowProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr
}

// registry maps native window handles to the backend that owns them so a
// process-wide window procedure can find its target. Like the rest of the
// package it is only used from the thread that created the windows.
type registry struct {
	windows map[uintptr]windowProc
	// pending receives messages for handles not seen before. It is set
	// while a window is being created, before its handle is known.
	pending windowProc
}

func newRegistry() *registry {
	return &registry{windows: make(map[uintptr]windowProc)}
}

// route delivers a message to the owner of hwnd. ok is false for handles
// with no owner.
func (r *registry) route(hwnd uintptr, msg uint32, wParam, lParam uintptr) (result uintptr, ok bool) {
	w, ok := r.lookup(hwnd)
	if !ok {
		if r.pending == nil {
			return 0, false
		}
		w = r.pending
		r.add(hwnd, w)
	}
	return w.windowProc(hwnd, msg, wParam, lParam), true
}

func (r *registry) add(hwnd uintptr, w windowProc) {
	r.windows[hwnd] = w
}

func (r *registry) lookup(hwnd uintptr) (windowProc, bool) {
	w, ok := r.windows[hwnd]
	return w, ok
}

// forget removes every handle owned by w.
func (r *registry) forget(w windowProc) {
	for hwnd, owner := range r.windows {
		if owner == w {
			delete(r.windows, hwnd)
		}
	}
	if r.pending == w {
		r.pending = nil
	}
}
