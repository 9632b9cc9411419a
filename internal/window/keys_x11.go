package window

import "github.com/tinyrange/evwin/internal/xlib"

var x11Keys = map[xlib.Keysym]Key{
	xlib.XK_grave:        KeyBackquote,
	xlib.XK_minus:        KeyMinus,
	xlib.XK_equal:        KeyEqual,
	xlib.XK_bracketleft:  KeyLeftBracket,
	xlib.XK_bracketright: KeyRightBracket,
	xlib.XK_backslash:    KeyBackslash,
	xlib.XK_semicolon:    KeySemicolon,
	xlib.XK_apostrophe:   KeyQuote,
	xlib.XK_comma:        KeyComma,
	xlib.XK_period:       KeyPeriod,
	xlib.XK_slash:        KeySlash,
	xlib.XK_Tab:          KeyTab,
	xlib.XK_Caps_Lock:    KeyCapsLock,
	xlib.XK_Shift_L:      KeyLeftShift,
	xlib.XK_BackSpace:    KeyBackspace,
	xlib.XK_Return:       KeyEnter,
	xlib.XK_Shift_R:      KeyRightShift,
	xlib.XK_space:        KeySpace,

	xlib.XK_Escape:      KeyEscape,
	xlib.XK_Print:       KeyPrintScreen,
	xlib.XK_Scroll_Lock: KeyScrollLock,
	xlib.XK_Pause:       KeyPause,
	xlib.XK_Break:       KeyPause,
	xlib.XK_Control_L:   KeyLeftControl,
	xlib.XK_Super_L:     KeyLeftSuper,
	xlib.XK_Alt_L:       KeyLeftAlt,
	xlib.XK_Alt_R:       KeyRightAlt,
	xlib.XK_Super_R:     KeyRightSuper,
	xlib.XK_Menu:        KeyMenu,
	xlib.XK_Control_R:   KeyRightControl,

	xlib.XK_Insert: KeyInsert,
	xlib.XK_Delete: KeyDelete,
	xlib.XK_Home:   KeyHome,
	xlib.XK_End:    KeyEnd,
	xlib.XK_Prior:  KeyPageUp,
	xlib.XK_Next:   KeyPageDown,
	xlib.XK_Up:     KeyUpArrow,
	xlib.XK_Down:   KeyDownArrow,
	xlib.XK_Left:   KeyLeftArrow,
	xlib.XK_Right:  KeyRightArrow,

	xlib.XK_Num_Lock:    KeyNumLock,
	xlib.XK_KP_Enter:    KeyNumpadEnter,
	xlib.XK_KP_Divide:   KeyNumpadDivide,
	xlib.XK_KP_Multiply: KeyNumpadMultiply,
	xlib.XK_KP_Subtract: KeyNumpadSubtract,
	xlib.XK_KP_Add:      KeyNumpadAdd,
	xlib.XK_KP_Decimal:  KeyNumpadDecimal,
}

// x11Key maps a keysym to a Key.
func x11Key(sym xlib.Keysym) (Key, bool) {
	switch {
	case sym >= xlib.XK_A && sym <= xlib.XK_Z:
		return KeyA + Key(sym-xlib.XK_A), true
	case sym >= xlib.XK_a && sym <= xlib.XK_z:
		return KeyA + Key(sym-xlib.XK_a), true
	case sym >= xlib.XK_0 && sym <= xlib.XK_9:
		return KeyDigit0 + Key(sym-xlib.XK_0), true
	case sym >= xlib.XK_F1 && sym <= xlib.XK_F12:
		return KeyF1 + Key(sym-xlib.XK_F1), true
	case sym >= xlib.XK_KP_0 && sym <= xlib.XK_KP_9:
		return KeyNumpad0 + Key(sym-xlib.XK_KP_0), true
	}
	key, ok := x11Keys[sym]
	return key, ok
}

func x11Button(button uint32) (Button, bool) {
	switch button {
	case xlib.Button1:
		return ButtonLeft, true
	case xlib.Button2:
		return ButtonMiddle, true
	case xlib.Button3:
		return ButtonRight, true
	case 8:
		return ButtonBack, true
	case 9:
		return ButtonForward, true
	}
	return 0, false
}
