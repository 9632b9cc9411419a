package win32

import "unicode/utf16"

const (
	CS_VREDRAW = 0x0001
	CS_HREDRAW = 0x0002

	WS_OVERLAPPEDWINDOW = 0x00CF0000
	WS_VISIBLE          = 0x10000000

	CW_USEDEFAULT = -0x80000000

	SW_SHOW = 5

	PM_REMOVE = 0x0001

	IDC_ARROW = 32512

	MAPVK_VK_TO_VSC = 0

	ERROR_CLASS_ALREADY_EXISTS = 1410
)

// Window messages.
const (
	WM_DESTROY     = 0x0002
	WM_SIZE        = 0x0005
	WM_SETFOCUS    = 0x0007
	WM_KILLFOCUS   = 0x0008
	WM_CLOSE       = 0x0010
	WM_KEYDOWN     = 0x0100
	WM_KEYUP       = 0x0101
	WM_SYSKEYDOWN  = 0x0104
	WM_SYSKEYUP    = 0x0105
	WM_MOUSEMOVE   = 0x0200
	WM_LBUTTONDOWN = 0x0201
	WM_LBUTTONUP   = 0x0202
	WM_RBUTTONDOWN = 0x0204
	WM_RBUTTONUP   = 0x0205
	WM_MBUTTONDOWN = 0x0207
	WM_MBUTTONUP   = 0x0208
	WM_MOUSEWHEEL  = 0x020A
	WM_XBUTTONDOWN = 0x020B
	WM_XBUTTONUP   = 0x020C
)

// Flags in the high word of a keystroke message's lParam.
const (
	KF_EXTENDED = 0x0100
	KF_REPEAT   = 0x4000
)

const (
	XBUTTON1 = 0x0001
	XBUTTON2 = 0x0002
)

// Virtual-key codes.
const (
	VK_BACK       = 0x08
	VK_TAB        = 0x09
	VK_RETURN     = 0x0d
	VK_SHIFT      = 0x10
	VK_CONTROL    = 0x11
	VK_MENU       = 0x12
	VK_PAUSE      = 0x13
	VK_CAPITAL    = 0x14
	VK_ESCAPE     = 0x1b
	VK_SPACE      = 0x20
	VK_PRIOR      = 0x21
	VK_NEXT       = 0x22
	VK_END        = 0x23
	VK_HOME       = 0x24
	VK_LEFT       = 0x25
	VK_UP         = 0x26
	VK_RIGHT      = 0x27
	VK_DOWN       = 0x28
	VK_PRINT      = 0x2a
	VK_SNAPSHOT   = 0x2c
	VK_INSERT     = 0x2d
	VK_DELETE     = 0x2e
	VK_LWIN       = 0x5b
	VK_RWIN       = 0x5c
	VK_APPS       = 0x5d
	VK_NUMPAD0    = 0x60
	VK_NUMPAD9    = 0x69
	VK_MULTIPLY   = 0x6a
	VK_ADD        = 0x6b
	VK_SUBTRACT   = 0x6d
	VK_DECIMAL    = 0x6e
	VK_DIVIDE     = 0x6f
	VK_F1         = 0x70
	VK_F12        = 0x7b
	VK_NUMLOCK    = 0x90
	VK_SCROLL     = 0x91
	VK_LSHIFT     = 0xa0
	VK_OEM_1      = 0xba
	VK_OEM_PLUS   = 0xbb
	VK_OEM_COMMA  = 0xbc
	VK_OEM_MINUS  = 0xbd
	VK_OEM_PERIOD = 0xbe
	VK_OEM_2      = 0xbf
	VK_OEM_3      = 0xc0
	VK_OEM_4      = 0xdb
	VK_OEM_5      = 0xdc
	VK_OEM_6      = 0xdd
	VK_OEM_7      = 0xde
)

// WndClassEx mirrors WNDCLASSEXW.
type WndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

// Msg mirrors MSG.
type Msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      Point
	Private uint32
}

type Point struct {
	X, Y int32
}

type Rect struct {
	Left, Top, Right, Bottom int32
}

func LoWord(v uintptr) uint16 {
	return uint16(v & 0xffff)
}

func HiWord(v uintptr) uint16 {
	return uint16((v >> 16) & 0xffff)
}

// WheelDelta returns the signed wheel rotation carried in a WM_MOUSEWHEEL
// wParam.
func WheelDelta(wParam uintptr) int16 {
	return int16(HiWord(wParam))
}

// XButton returns XBUTTON1 or XBUTTON2 from a WM_XBUTTON* wParam.
func XButton(wParam uintptr) uint16 {
	return HiWord(wParam)
}

// PointFromLParam returns the signed client coordinates packed in lParam.
func PointFromLParam(lParam uintptr) (x, y int32) {
	return int32(int16(LoWord(lParam))), int32(int16(HiWord(lParam)))
}

// UTF16 returns s as a NUL-terminated UTF-16 string.
func UTF16(s string) *uint16 {
	w := append(utf16.Encode([]rune(s)), 0)
	return &w[0]
}
