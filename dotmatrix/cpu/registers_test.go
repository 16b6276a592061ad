package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterPairs(t *testing.T) {
	cpu := newTestCPU(nil)

	testCases := []struct {
		desc string
		set  func(uint16)
		get  func() uint16
		want uint16
	}{
		{desc: "BC", set: cpu.setBC, get: cpu.getBC, want: 0x1234},
		{desc: "DE", set: cpu.setDE, get: cpu.getDE, want: 0xABCD},
		{desc: "HL", set: cpu.setHL, get: cpu.getHL, want: 0xFF01},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			tC.set(tC.want)
			assert.Equal(t, tC.want, tC.get())
		})
	}
}

func TestRegisterPairHighLow(t *testing.T) {
	cpu := newTestCPU(nil)

	cpu.setBC(0x1234)
	assert.Equal(t, uint8(0x12), cpu.b)
	assert.Equal(t, uint8(0x34), cpu.c)
}

func TestAFMasksLowNibble(t *testing.T) {
	cpu := newTestCPU(nil)

	// Only the flag bits of F exist in hardware.
	cpu.setAF(0x12FF)
	assert.Equal(t, uint8(0x12), cpu.a)
	assert.Equal(t, uint8(0xF0), cpu.f)
	assert.Equal(t, uint16(0x12F0), cpu.getAF())
}

func TestFlags(t *testing.T) {
	cpu := newTestCPU(nil)

	for _, flag := range []Flag{zeroFlag, subFlag, halfCarryFlag, carryFlag} {
		cpu.f = 0

		assert.False(t, cpu.isSetFlag(flag))
		cpu.setFlag(flag)
		assert.True(t, cpu.isSetFlag(flag))
		assert.Equal(t, uint8(flag), cpu.f)

		cpu.resetFlag(flag)
		assert.False(t, cpu.isSetFlag(flag))
		assert.Equal(t, uint8(0), cpu.f)
	}
}

func TestFlagBit(t *testing.T) {
	cpu := newTestCPU(nil)

	assert.Equal(t, uint8(0), cpu.flagBit(carryFlag))
	cpu.setFlag(carryFlag)
	assert.Equal(t, uint8(1), cpu.flagBit(carryFlag))
}
