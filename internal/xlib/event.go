package xlib

import (
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
)

// Event type codes. Xlib uses the core protocol numbering.
const (
	KeyPress        = xproto.KeyPress
	KeyRelease      = xproto.KeyRelease
	ButtonPress     = xproto.ButtonPress
	ButtonRelease   = xproto.ButtonRelease
	MotionNotify    = xproto.MotionNotify
	FocusIn         = xproto.FocusIn
	FocusOut        = xproto.FocusOut
	Expose          = xproto.Expose
	DestroyNotify   = xproto.DestroyNotify
	ConfigureNotify = xproto.ConfigureNotify
	ClientMessage   = xproto.ClientMessage
)

// Input masks for SelectInput.
const (
	KeyPressMask        = xproto.EventMaskKeyPress
	KeyReleaseMask      = xproto.EventMaskKeyRelease
	ButtonPressMask     = xproto.EventMaskButtonPress
	ButtonReleaseMask   = xproto.EventMaskButtonRelease
	PointerMotionMask   = xproto.EventMaskPointerMotion
	ExposureMask        = xproto.EventMaskExposure
	StructureNotifyMask = xproto.EventMaskStructureNotify
	FocusChangeMask     = xproto.EventMaskFocusChange
)

// Pointer buttons.
const (
	Button1 = xproto.ButtonIndex1
	Button2 = xproto.ButtonIndex2
	Button3 = xproto.ButtonIndex3
	Button4 = xproto.ButtonIndex4
	Button5 = xproto.ButtonIndex5
)

const PropModeReplace = xproto.PropModeReplace

// Event mirrors the XEvent union: 24 C longs.
type Event struct {
	pad [24]uintptr
}

// Type returns the event type code shared by every member of the union.
func (e *Event) Type() int32 {
	return *(*int32)(unsafe.Pointer(&e.pad[0]))
}

// SetType sets the event type code.
func (e *Event) SetType(t int32) {
	*(*int32)(unsafe.Pointer(&e.pad[0])) = t
}

func (e *Event) Key() *KeyEvent {
	return (*KeyEvent)(unsafe.Pointer(e))
}

func (e *Event) Button() *ButtonEvent {
	return (*ButtonEvent)(unsafe.Pointer(e))
}

func (e *Event) Motion() *MotionEvent {
	return (*MotionEvent)(unsafe.Pointer(e))
}

func (e *Event) Configure() *ConfigureEvent {
	return (*ConfigureEvent)(unsafe.Pointer(e))
}

func (e *Event) ClientMessage() *ClientMessageEvent {
	return (*ClientMessageEvent)(unsafe.Pointer(e))
}

// KeyEvent mirrors XKeyEvent.
type KeyEvent struct {
	Type       int32
	Serial     uintptr
	SendEvent  int32
	Display    uintptr
	Window     uintptr
	Root       uintptr
	Subwindow  uintptr
	Time       uintptr
	X, Y       int32
	XRoot      int32
	YRoot      int32
	State      uint32
	Keycode    uint32
	SameScreen int32
}

// ButtonEvent mirrors XButtonEvent.
type ButtonEvent struct {
	Type       int32
	Serial     uintptr
	SendEvent  int32
	Display    uintptr
	Window     uintptr
	Root       uintptr
	Subwindow  uintptr
	Time       uintptr
	X, Y       int32
	XRoot      int32
	YRoot      int32
	State      uint32
	Button     uint32
	SameScreen int32
}

// MotionEvent mirrors XMotionEvent.
type MotionEvent struct {
	Type       int32
	Serial     uintptr
	SendEvent  int32
	Display    uintptr
	Window     uintptr
	Root       uintptr
	Subwindow  uintptr
	Time       uintptr
	X, Y       int32
	XRoot      int32
	YRoot      int32
	State      uint32
	IsHint     byte
	SameScreen int32
}

// ConfigureEvent mirrors XConfigureEvent.
type ConfigureEvent struct {
	Type             int32
	Serial           uintptr
	SendEvent        int32
	Display          uintptr
	Event            uintptr
	Window           uintptr
	X, Y             int32
	Width, Height    int32
	BorderWidth      int32
	Above            uintptr
	OverrideRedirect int32
}

// ClientMessageEvent mirrors XClientMessageEvent with the data union read
// as longs.
type ClientMessageEvent struct {
	Type        int32
	Serial      uintptr
	SendEvent   int32
	Display     uintptr
	Window      uintptr
	MessageType uintptr
	Format      int32
	Data        [5]uintptr
}
