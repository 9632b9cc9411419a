// Package win32 binds the user32 and kernel32 entry points used by the Win32
// window backend.
package win32

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/tinyrange/evwin/internal/dl"
)

// Errno is a GetLastError code.
type Errno uint32

func (e Errno) Error() string {
	return fmt.Sprintf("win32 error %d", uint32(e))
}

// Library holds the resolved user32 and kernel32 entry points.
type Library struct {
	user32   *dl.Handle
	kernel32 *dl.Handle

	registerClassExW func(*WndClassEx) uint16
	unregisterClassW func(*uint16, uintptr) int32
	createWindowExW  func(uint32, *uint16, *uint16, uint32, int32, int32, int32, int32, uintptr, uintptr, uintptr, uintptr) uintptr
	destroyWindow    func(uintptr) int32
	defWindowProcW   func(uintptr, uint32, uintptr, uintptr) uintptr
	adjustWindowRect func(*Rect, uint32, int32) int32
	showWindow       func(uintptr, int32) int32
	updateWindow     func(uintptr) int32
	peekMessageW     func(*Msg, uintptr, uint32, uint32, uint32) int32
	translateMessage func(*Msg) int32
	dispatchMessageW func(*Msg) uintptr
	mapVirtualKeyW   func(uint32, uint32) uint32
	loadCursorW      func(uintptr, uintptr) uintptr

	getModuleHandleW func(*uint16) uintptr
	getLastError     func() uint32
}

// Load opens user32.dll and kernel32.dll through sys and binds every entry
// point. Nothing stays open if either load fails.
func Load(sys dl.System) (*Library, error) {
	l := &Library{}
	user32, err := dl.Load(sys, dl.Spec{
		Name: "user32",
		Symbols: []dl.Symbol{
			{Name: "RegisterClassExW", Fn: &l.registerClassExW},
			{Name: "UnregisterClassW", Fn: &l.unregisterClassW},
			{Name: "CreateWindowExW", Fn: &l.createWindowExW},
			{Name: "DestroyWindow", Fn: &l.destroyWindow},
			{Name: "DefWindowProcW", Fn: &l.defWindowProcW},
			{Name: "AdjustWindowRect", Fn: &l.adjustWindowRect},
			{Name: "ShowWindow", Fn: &l.showWindow},
			{Name: "UpdateWindow", Fn: &l.updateWindow},
			{Name: "PeekMessageW", Fn: &l.peekMessageW},
			{Name: "TranslateMessage", Fn: &l.translateMessage},
			{Name: "DispatchMessageW", Fn: &l.dispatchMessageW},
			{Name: "MapVirtualKeyW", Fn: &l.mapVirtualKeyW},
			{Name: "LoadCursorW", Fn: &l.loadCursorW},
		},
	})
	if err != nil {
		return nil, err
	}
	kernel32, err := dl.Load(sys, dl.Spec{
		Name: "kernel32",
		Symbols: []dl.Symbol{
			{Name: "GetModuleHandleW", Fn: &l.getModuleHandleW},
			{Name: "GetLastError", Fn: &l.getLastError},
		},
	})
	if err != nil {
		user32.Close()
		return nil, err
	}
	l.user32 = user32
	l.kernel32 = kernel32
	return l, nil
}

// Close releases kernel32 and then user32.
func (l *Library) Close() error {
	return errors.Join(l.kernel32.Close(), l.user32.Close())
}

// lastError reads GetLastError in a separate call, so the runtime may have
// reset the code in between. The Errno is a diagnostic only.
func (l *Library) lastError(op string) error {
	if code := l.getLastError(); code != 0 {
		return fmt.Errorf("%s failed: %w", op, Errno(code))
	}
	return fmt.Errorf("%s failed", op)
}

// ModuleHandle returns the handle of the executable module.
func (l *Library) ModuleHandle() uintptr {
	return l.getModuleHandleW(nil)
}

// RegisterClass registers a window class named name with the given window
// procedure and the arrow cursor.
func (l *Library) RegisterClass(instance uintptr, name string, wndProc uintptr) error {
	wc := WndClassEx{
		Style:     CS_HREDRAW | CS_VREDRAW,
		WndProc:   wndProc,
		Instance:  instance,
		Cursor:    l.loadCursorW(0, IDC_ARROW),
		ClassName: UTF16(name),
	}
	wc.Size = uint32(unsafe.Sizeof(wc))
	if l.registerClassExW(&wc) == 0 {
		return l.lastError("RegisterClassExW")
	}
	return nil
}

func (l *Library) UnregisterClass(name string, instance uintptr) {
	l.unregisterClassW(UTF16(name), instance)
}

// AdjustWindowRect grows r from a client area to the window area for style.
func (l *Library) AdjustWindowRect(r *Rect, style uint32) {
	l.adjustWindowRect(r, style, 0)
}

func (l *Library) CreateWindow(class, title string, style uint32, x, y, width, height int32, instance uintptr) (uintptr, error) {
	hwnd := l.createWindowExW(0, UTF16(class), UTF16(title), style, x, y, width, height, 0, 0, instance, 0)
	if hwnd == 0 {
		return 0, l.lastError("CreateWindowExW")
	}
	return hwnd, nil
}

func (l *Library) DestroyWindow(hwnd uintptr) {
	l.destroyWindow(hwnd)
}

func (l *Library) DefWindowProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	return l.defWindowProcW(hwnd, msg, wParam, lParam)
}

func (l *Library) ShowWindow(hwnd uintptr, cmd int32) {
	l.showWindow(hwnd, cmd)
	l.updateWindow(hwnd)
}

// PeekMessage removes the next message for hwnd, reporting whether there was
// one.
func (l *Library) PeekMessage(m *Msg, hwnd uintptr) bool {
	return l.peekMessageW(m, hwnd, 0, 0, PM_REMOVE) != 0
}

func (l *Library) TranslateMessage(m *Msg) {
	l.translateMessage(m)
}

func (l *Library) DispatchMessage(m *Msg) {
	l.dispatchMessageW(m)
}

func (l *Library) MapVirtualKey(code, mapType uint32) uint32 {
	return l.mapVirtualKeyW(code, mapType)
}
