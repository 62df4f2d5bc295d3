package key

// HID keyboard usage IDs (usage page 0x07) and modifier bits for the subset
// of codes the matrix produces. The bit layout of Modifiers matches the
// first byte of a boot keyboard report: LCtrl, LShift, LAlt from bit 0.

const (
	ModBitCtrl  uint8 = 1 << 0
	ModBitShift uint8 = 1 << 1
	ModBitAlt   uint8 = 1 << 2
)

// ModifierBit returns the report modifier bit for c, or 0 if c is not a
// modifier.
func ModifierBit(c Code) uint8 {
	switch c {
	case LeftCtrl:
		return ModBitCtrl
	case LeftShift:
		return ModBitShift
	case LeftAlt:
		return ModBitAlt
	}
	return 0
}

// Usage returns the HID usage ID for c, or 0 if c has no usage (None and
// the modifiers, which travel in the modifier byte instead).
func Usage(c Code) uint8 {
	switch {
	case c >= 'a' && c <= 'z':
		return 0x04 + uint8(c-'a')
	case c >= '1' && c <= '9':
		return 0x1E + uint8(c-'1')
	case c == '0':
		return 0x27
	}
	switch c {
	case Enter:
		return 0x28
	case Escape:
		return 0x29
	case Backspace:
		return 0x2A
	case Tab:
		return 0x2B
	case Space:
		return 0x2C
	case ';':
		return 0x33
	case ',':
		return 0x36
	case '.':
		return 0x37
	case '/':
		return 0x38
	case CapsLock:
		return 0x39
	}
	return 0
}
