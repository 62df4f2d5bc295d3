// Package key defines the symbolic key codes produced by the matrix scanner
// and the sink contract that delivers them to a host.
package key

import "fmt"

// Code identifies a key symbolically. Printable keys use their ASCII value;
// named keys (modifiers, caps lock) sit above the ASCII range.
type Code uint8

const (
	None      Code = 0
	Backspace Code = 0x08
	Tab       Code = 0x09
	Enter     Code = 0x0D
	Escape    Code = 0x1B
	Space     Code = ' '

	LeftShift Code = 0x80
	LeftCtrl  Code = 0x81
	LeftAlt   Code = 0x82
	CapsLock  Code = 0x83
)

// Printable reports whether c is a plain printable ASCII key.
func (c Code) Printable() bool {
	return c >= 0x20 && c < 0x7F
}

// Modifier reports whether c is one of the modifier keys.
func (c Code) Modifier() bool {
	switch c {
	case LeftShift, LeftCtrl, LeftAlt:
		return true
	}
	return false
}

func (c Code) String() string {
	switch c {
	case None:
		return "none"
	case Backspace:
		return "backspace"
	case Tab:
		return "tab"
	case Enter:
		return "enter"
	case Escape:
		return "escape"
	case Space:
		return "space"
	case LeftShift:
		return "shift"
	case LeftCtrl:
		return "ctrl"
	case LeftAlt:
		return "fctn"
	case CapsLock:
		return "caps"
	}
	if c.Printable() {
		return string(rune(c))
	}
	return fmt.Sprintf("0x%02X", uint8(c))
}

// Sink accepts key events for delivery to a host. Delivery is fire and
// forget: the scanner never observes transport failures.
type Sink interface {
	Press(Code)
	Release(Code)
	ReleaseAll()
}
