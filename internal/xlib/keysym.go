package xlib

// Keysym is an X keyboard symbol as returned by XLookupKeysym.
type Keysym uintptr

// NoSymbol is returned for a keycode with no symbol at the requested index.
const NoSymbol Keysym = 0

// Keysyms from X11/keysymdef.h.
const (
	XK_space        Keysym = 0x0020
	XK_apostrophe   Keysym = 0x0027
	XK_comma        Keysym = 0x002c
	XK_minus        Keysym = 0x002d
	XK_period       Keysym = 0x002e
	XK_slash        Keysym = 0x002f
	XK_0            Keysym = 0x0030
	XK_9            Keysym = 0x0039
	XK_semicolon    Keysym = 0x003b
	XK_equal        Keysym = 0x003d
	XK_A            Keysym = 0x0041
	XK_Z            Keysym = 0x005a
	XK_bracketleft  Keysym = 0x005b
	XK_backslash    Keysym = 0x005c
	XK_bracketright Keysym = 0x005d
	XK_grave        Keysym = 0x0060
	XK_a            Keysym = 0x0061
	XK_b            Keysym = 0x0062
	XK_z            Keysym = 0x007a

	XK_BackSpace   Keysym = 0xff08
	XK_Tab         Keysym = 0xff09
	XK_Return      Keysym = 0xff0d
	XK_Pause       Keysym = 0xff13
	XK_Scroll_Lock Keysym = 0xff14
	XK_Escape      Keysym = 0xff1b
	XK_Home        Keysym = 0xff50
	XK_Left        Keysym = 0xff51
	XK_Up          Keysym = 0xff52
	XK_Right       Keysym = 0xff53
	XK_Down        Keysym = 0xff54
	XK_Prior       Keysym = 0xff55
	XK_Next        Keysym = 0xff56
	XK_End         Keysym = 0xff57
	XK_Print       Keysym = 0xff61
	XK_Insert      Keysym = 0xff63
	XK_Menu        Keysym = 0xff67
	XK_Break       Keysym = 0xff6b
	XK_Num_Lock    Keysym = 0xff7f

	XK_KP_Enter    Keysym = 0xff8d
	XK_KP_Multiply Keysym = 0xffaa
	XK_KP_Add      Keysym = 0xffab
	XK_KP_Subtract Keysym = 0xffad
	XK_KP_Decimal  Keysym = 0xffae
	XK_KP_Divide   Keysym = 0xffaf
	XK_KP_0        Keysym = 0xffb0
	XK_KP_9        Keysym = 0xffb9

	XK_F1  Keysym = 0xffbe
	XK_F12 Keysym = 0xffc9

	XK_Shift_L   Keysym = 0xffe1
	XK_Shift_R   Keysym = 0xffe2
	XK_Control_L Keysym = 0xffe3
	XK_Control_R Keysym = 0xffe4
	XK_Caps_Lock Keysym = 0xffe5
	XK_Alt_L     Keysym = 0xffe9
	XK_Alt_R     Keysym = 0xffea
	XK_Super_L   Keysym = 0xffeb
	XK_Super_R   Keysym = 0xffec
	XK_Delete    Keysym = 0xffff
)
