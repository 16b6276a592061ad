package bit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineHighLow(t *testing.T) {
	assert.Equal(t, uint16(0x1234), Combine(0x12, 0x34))
	assert.Equal(t, uint8(0x12), High(0x1234))
	assert.Equal(t, uint8(0x34), Low(0x1234))
}

func TestSetResetIsSet(t *testing.T) {
	var b uint8

	b = Set(3, b)
	assert.True(t, IsSet(3, b))
	assert.Equal(t, uint8(0x08), b)

	b = Reset(3, b)
	assert.False(t, IsSet(3, b))
	assert.Equal(t, uint8(0), b)
}

func TestIsSet16(t *testing.T) {
	assert.True(t, IsSet16(9, 1<<9))
	assert.False(t, IsSet16(9, 1<<8))
}

func TestValue(t *testing.T) {
	assert.Equal(t, uint8(1), Value(0, 0x01))
	assert.Equal(t, uint8(0), Value(1, 0x01))
}
