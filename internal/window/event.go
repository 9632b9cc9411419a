package window

import "fmt"

// Event is one canonical window, keyboard or mouse occurrence. The set of
// implementations is closed; switch on the concrete type.
type Event interface {
	isEvent()
}

// CloseEvent reports that the user asked to close the window.
type CloseEvent struct{}

type GainFocusEvent struct{}

type LoseFocusEvent struct{}

// ResizeEvent carries the new client area size.
type ResizeEvent struct {
	Width, Height int
}

type KeyPressEvent struct {
	Key Key
}

type KeyReleaseEvent struct {
	Key Key
}

// MouseMoveEvent carries the pointer position in window coordinates.
type MouseMoveEvent struct {
	X, Y int
}

type MouseButtonPressEvent struct {
	Button Button
	X, Y   int
}

type MouseButtonReleaseEvent struct {
	Button Button
	X, Y   int
}

// MouseScrollUpEvent is one wheel step away from the user. The magnitude is
// not reported.
type MouseScrollUpEvent struct{}

type MouseScrollDownEvent struct{}

func (CloseEvent) isEvent()              {}
func (GainFocusEvent) isEvent()          {}
func (LoseFocusEvent) isEvent()          {}
func (ResizeEvent) isEvent()             {}
func (KeyPressEvent) isEvent()           {}
func (KeyReleaseEvent) isEvent()         {}
func (MouseMoveEvent) isEvent()          {}
func (MouseButtonPressEvent) isEvent()   {}
func (MouseButtonReleaseEvent) isEvent() {}
func (MouseScrollUpEvent) isEvent()      {}
func (MouseScrollDownEvent) isEvent()    {}

func (CloseEvent) String() string     { return "Close" }
func (GainFocusEvent) String() string { return "GainFocus" }
func (LoseFocusEvent) String() string { return "LoseFocus" }

func (e ResizeEvent) String() string {
	return fmt.Sprintf("Resize(%dx%d)", e.Width, e.Height)
}

func (e KeyPressEvent) String() string {
	return fmt.Sprintf("KeyPress(%s)", e.Key)
}

func (e KeyReleaseEvent) String() string {
	return fmt.Sprintf("KeyRelease(%s)", e.Key)
}

func (e MouseMoveEvent) String() string {
	return fmt.Sprintf("MouseMove(%d, %d)", e.X, e.Y)
}

func (e MouseButtonPressEvent) String() string {
	return fmt.Sprintf("MouseButtonPress(%s, %d, %d)", e.Button, e.X, e.Y)
}

func (e MouseButtonReleaseEvent) String() string {
	return fmt.Sprintf("MouseButtonRelease(%s, %d, %d)", e.Button, e.X, e.Y)
}

func (MouseScrollUpEvent) String() string   { return "MouseScrollUp" }
func (MouseScrollDownEvent) String() string { return "MouseScrollDown" }
