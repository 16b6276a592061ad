package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoypadNothingSelected(t *testing.T) {
	joypad := NewJoypad()

	joypad.Write(0x30)
	assert.Equal(t, uint8(0xFF), joypad.Read())
}

func TestJoypadButtonSelection(t *testing.T) {
	joypad := NewJoypad()

	// Select the action buttons (bit 5 low) and press A.
	joypad.Press(JoypadA)
	joypad.Write(0x10)

	assert.Equal(t, uint8(0xFE), joypad.Read())

	joypad.Release(JoypadA)
	assert.Equal(t, uint8(0xFF), joypad.Read())
}

func TestJoypadDpadSelection(t *testing.T) {
	joypad := NewJoypad()

	// Select the directions (bit 4 low) and press Down.
	joypad.Press(JoypadDown)
	joypad.Write(0x20)

	assert.Equal(t, uint8(0xF7), joypad.Read())

	// Buttons do not leak into the direction nibble.
	joypad.Press(JoypadStart)
	assert.Equal(t, uint8(0xF7), joypad.Read())
}

func TestJoypadPressReportsTransition(t *testing.T) {
	joypad := NewJoypad()

	assert.True(t, joypad.Press(JoypadB))
	assert.False(t, joypad.Press(JoypadB))

	joypad.Release(JoypadB)
	assert.True(t, joypad.Press(JoypadB))
}

func TestJoypadAllKeys(t *testing.T) {
	keys := []JoypadKey{
		JoypadRight, JoypadLeft, JoypadUp, JoypadDown,
		JoypadA, JoypadB, JoypadSelect, JoypadStart,
	}

	joypad := NewJoypad()
	for _, key := range keys {
		assert.True(t, joypad.Press(key))
	}

	joypad.Write(0x10)
	assert.Equal(t, uint8(0xF0), joypad.Read())
	joypad.Write(0x20)
	assert.Equal(t, uint8(0xF0), joypad.Read())

	for _, key := range keys {
		joypad.Release(key)
	}
	joypad.Write(0x10)
	assert.Equal(t, uint8(0xFF), joypad.Read())
}
