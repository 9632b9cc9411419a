package window

import "github.com/tinyrange/evwin/internal/win32"

var win32Keys = map[uintptr]Key{
	win32.VK_OEM_3:      KeyBackquote,
	win32.VK_OEM_MINUS:  KeyMinus,
	win32.VK_OEM_PLUS:   KeyEqual,
	win32.VK_OEM_4:      KeyLeftBracket,
	win32.VK_OEM_6:      KeyRightBracket,
	win32.VK_OEM_5:      KeyBackslash,
	win32.VK_OEM_1:      KeySemicolon,
	win32.VK_OEM_7:      KeyQuote,
	win32.VK_OEM_COMMA:  KeyComma,
	win32.VK_OEM_PERIOD: KeyPeriod,
	win32.VK_OEM_2:      KeySlash,
	win32.VK_TAB:        KeyTab,
	win32.VK_CAPITAL:    KeyCapsLock,
	win32.VK_BACK:       KeyBackspace,
	win32.VK_SPACE:      KeySpace,

	win32.VK_ESCAPE:   KeyEscape,
	win32.VK_SNAPSHOT: KeyPrintScreen,
	win32.VK_PRINT:    KeyPrintScreen,
	win32.VK_SCROLL:   KeyScrollLock,
	win32.VK_PAUSE:    KeyPause,
	win32.VK_LWIN:     KeyLeftSuper,
	win32.VK_RWIN:     KeyRightSuper,
	win32.VK_APPS:     KeyMenu,

	win32.VK_INSERT: KeyInsert,
	win32.VK_DELETE: KeyDelete,
	win32.VK_HOME:   KeyHome,
	win32.VK_END:    KeyEnd,
	win32.VK_PRIOR:  KeyPageUp,
	win32.VK_NEXT:   KeyPageDown,
	win32.VK_UP:     KeyUpArrow,
	win32.VK_DOWN:   KeyDownArrow,
	win32.VK_LEFT:   KeyLeftArrow,
	win32.VK_RIGHT:  KeyRightArrow,

	win32.VK_NUMLOCK:  KeyNumLock,
	win32.VK_DIVIDE:   KeyNumpadDivide,
	win32.VK_MULTIPLY: KeyNumpadMultiply,
	win32.VK_SUBTRACT: KeyNumpadSubtract,
	win32.VK_ADD:      KeyNumpadAdd,
	win32.VK_DECIMAL:  KeyNumpadDecimal,
}

// win32Key maps a virtual-key code to a Key. Keys sharing a code are told
// apart by the extended flag or, for Shift, by the scan code in lParam.
func win32Key(vk, lParam uintptr, leftShiftScan uint32) (Key, bool) {
	extended := win32.HiWord(lParam)&win32.KF_EXTENDED != 0
	switch {
	case vk >= 'A' && vk <= 'Z':
		return KeyA + Key(vk-'A'), true
	case vk >= '0' && vk <= '9':
		return KeyDigit0 + Key(vk-'0'), true
	case vk >= win32.VK_F1 && vk <= win32.VK_F12:
		return KeyF1 + Key(vk-win32.VK_F1), true
	case vk >= win32.VK_NUMPAD0 && vk <= win32.VK_NUMPAD9:
		return KeyNumpad0 + Key(vk-win32.VK_NUMPAD0), true
	}
	switch vk {
	case win32.VK_RETURN:
		if extended {
			return KeyNumpadEnter, true
		}
		return KeyEnter, true
	case win32.VK_CONTROL:
		if extended {
			return KeyRightControl, true
		}
		return KeyLeftControl, true
	case win32.VK_MENU:
		if extended {
			return KeyRightAlt, true
		}
		return KeyLeftAlt, true
	case win32.VK_SHIFT:
		if uint32((lParam>>16)&0xff) == leftShiftScan {
			return KeyLeftShift, true
		}
		return KeyRightShift, true
	}
	key, ok := win32Keys[vk]
	return key, ok
}
