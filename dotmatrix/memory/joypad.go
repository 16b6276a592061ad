package memory

import "github.com/dotmatrix-gb/dotmatrix/dotmatrix/bit"

// JoypadKey is one of the eight keys of the joypad.
type JoypadKey uint8

const (
	JoypadRight JoypadKey = iota
	JoypadLeft
	JoypadUp
	JoypadDown
	JoypadA
	JoypadB
	JoypadSelect
	JoypadStart
)

const (
	selectDpadBit    = 4
	selectButtonsBit = 5
)

// Joypad models the P1 register at 0xFF00. The program writes the
// selection bits to pick one half of the key matrix; reads return that
// half in the low nibble, active-low. Both key nibbles are tracked
// independently of the selection.
type Joypad struct {
	buttons uint8 // Start, Select, B, A in bits 3..0, 0 = pressed
	dpad    uint8 // Down, Up, Left, Right in bits 3..0, 0 = pressed
	line    uint8 // last written selection bits
}

// NewJoypad returns a joypad with every key released.
func NewJoypad() *Joypad {
	return &Joypad{
		buttons: 0x0F,
		dpad:    0x0F,
		line:    0x30,
	}
}

// Write latches the matrix selection bits (4 and 5).
func (j *Joypad) Write(value uint8) {
	j.line = value & 0x30
}

// Read returns the selected key nibble, active-low. Unused upper bits
// read as 1; with no half selected the whole register reads 0xFF.
func (j *Joypad) Read() uint8 {
	switch {
	case !bit.IsSet(selectButtonsBit, j.line):
		return 0xF0 | j.buttons
	case !bit.IsSet(selectDpadBit, j.line):
		return 0xF0 | j.dpad
	}
	return 0xFF
}

// Press marks a key as held down. It reports whether the key was
// previously released, which is the condition for a joypad interrupt.
func (j *Joypad) Press(key JoypadKey) bool {
	index, buttons := j.locate(key)

	var transition bool
	if buttons {
		transition = bit.IsSet(index, j.buttons)
		j.buttons = bit.Reset(index, j.buttons)
	} else {
		transition = bit.IsSet(index, j.dpad)
		j.dpad = bit.Reset(index, j.dpad)
	}
	return transition
}

// Release marks a key as released.
func (j *Joypad) Release(key JoypadKey) {
	index, buttons := j.locate(key)
	if buttons {
		j.buttons = bit.Set(index, j.buttons)
	} else {
		j.dpad = bit.Set(index, j.dpad)
	}
}

// locate maps a key to its bit index and matrix half.
func (j *Joypad) locate(key JoypadKey) (index uint8, buttons bool) {
	switch key {
	case JoypadRight:
		return 0, false
	case JoypadLeft:
		return 1, false
	case JoypadUp:
		return 2, false
	case JoypadDown:
		return 3, false
	case JoypadA:
		return 0, true
	case JoypadB:
		return 1, true
	case JoypadSelect:
		return 2, true
	default:
		return 3, true
	}
}
