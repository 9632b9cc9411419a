package window

import (
	"fmt"
	"testing"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		e    Event
		want string
	}{
		{CloseEvent{}, "Close"},
		{ResizeEvent{800, 600}, "Resize(800x600)"},
		{KeyPressEvent{KeyEscape}, "KeyPress(Escape)"},
		{MouseMoveEvent{1, 2}, "MouseMove(1, 2)"},
		{MouseButtonPressEvent{ButtonLeft, 1, 2}, "MouseButtonPress(Left, 1, 2)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprint(tt.e); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	for k := KeyUnknown; k < keyCount; k++ {
		if k.String() == "" {
			t.Errorf("key %d has no name", int(k))
		}
	}
}
