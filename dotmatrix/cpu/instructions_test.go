package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackRoundTrip(t *testing.T) {
	cpu := newTestCPU(nil)

	cpu.sp = 0xFFFE
	cpu.pushStack(0x0102)

	assert.Equal(t, uint16(0xFFFC), cpu.sp)
	assert.Equal(t, uint8(0x02), cpu.memory.Read(0xFFFC))
	assert.Equal(t, uint8(0x01), cpu.memory.Read(0xFFFD))

	assert.Equal(t, uint16(0x0102), cpu.popStack())
	assert.Equal(t, uint16(0xFFFE), cpu.sp)
}

func TestInc8(t *testing.T) {
	cpu := newTestCPU(nil)

	testCases := []struct {
		desc  string
		arg   uint8
		want  uint8
		flags Flag
	}{
		{desc: "increments", arg: 0x0A, want: 0x0B},
		{desc: "sets half carry", arg: 0x0F, want: 0x10, flags: halfCarryFlag},
		{desc: "sets zero on wrap", arg: 0xFF, want: 0x00, flags: zeroFlag | halfCarryFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			assert.Equal(t, tC.want, cpu.inc8(tC.arg))
			assert.Equal(t, uint8(tC.flags), cpu.f)
		})
	}
}

func TestInc8KeepsCarry(t *testing.T) {
	cpu := newTestCPU(nil)

	cpu.setFlag(carryFlag)
	cpu.inc8(0xFF)
	assert.True(t, cpu.isSetFlag(carryFlag))
}

func TestDec8(t *testing.T) {
	cpu := newTestCPU(nil)

	testCases := []struct {
		desc  string
		arg   uint8
		want  uint8
		flags Flag
	}{
		{desc: "decrements", arg: 0x0A, want: 0x09, flags: subFlag},
		{desc: "sets zero", arg: 0x01, want: 0x00, flags: subFlag | zeroFlag},
		{desc: "sets half carry on borrow", arg: 0x10, want: 0x0F, flags: subFlag | halfCarryFlag},
		{desc: "wraps", arg: 0x00, want: 0xFF, flags: subFlag | halfCarryFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			assert.Equal(t, tC.want, cpu.dec8(tC.arg))
			assert.Equal(t, uint8(tC.flags), cpu.f)
		})
	}
}

func TestAddToA(t *testing.T) {
	cpu := newTestCPU(nil)

	testCases := []struct {
		desc  string
		a     uint8
		arg   uint8
		want  uint8
		flags Flag
	}{
		{desc: "adds", a: 0x01, arg: 0x02, want: 0x03},
		{desc: "half carry from bit 3", a: 0x0F, arg: 0x01, want: 0x10, flags: halfCarryFlag},
		{desc: "carry past bit 7", a: 0xF0, arg: 0x20, want: 0x10, flags: carryFlag},
		{desc: "zero on full wrap", a: 0xFF, arg: 0x01, want: 0x00, flags: zeroFlag | halfCarryFlag | carryFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			cpu.a = tC.a
			cpu.addToA(tC.arg)
			assert.Equal(t, tC.want, cpu.a)
			assert.Equal(t, uint8(tC.flags), cpu.f)
		})
	}
}

func TestAdcToA(t *testing.T) {
	cpu := newTestCPU(nil)

	cpu.f = 0
	cpu.setFlag(carryFlag)
	cpu.a = 0x01
	cpu.adcToA(0x01)
	assert.Equal(t, uint8(0x03), cpu.a)

	// carry must factor into the half-carry computation
	cpu.f = 0
	cpu.setFlag(carryFlag)
	cpu.a = 0x0F
	cpu.adcToA(0x00)
	assert.Equal(t, uint8(0x10), cpu.a)
	assert.True(t, cpu.isSetFlag(halfCarryFlag))
}

func TestSubFromA(t *testing.T) {
	cpu := newTestCPU(nil)

	testCases := []struct {
		desc  string
		a     uint8
		arg   uint8
		want  uint8
		flags Flag
	}{
		{desc: "subtracts", a: 0x03, arg: 0x01, want: 0x02, flags: subFlag},
		{desc: "borrow from bit 4", a: 0x10, arg: 0x01, want: 0x0F, flags: subFlag | halfCarryFlag},
		{desc: "full borrow", a: 0x00, arg: 0x01, want: 0xFF, flags: subFlag | halfCarryFlag | carryFlag},
		{desc: "zero", a: 0x42, arg: 0x42, want: 0x00, flags: subFlag | zeroFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			cpu.a = tC.a
			cpu.subFromA(tC.arg)
			assert.Equal(t, tC.want, cpu.a)
			assert.Equal(t, uint8(tC.flags), cpu.f)
		})
	}
}

func TestSbcFromA(t *testing.T) {
	cpu := newTestCPU(nil)

	cpu.f = 0
	cpu.setFlag(carryFlag)
	cpu.a = 0x03
	cpu.sbcFromA(0x01)
	assert.Equal(t, uint8(0x01), cpu.a)

	cpu.f = 0
	cpu.setFlag(carryFlag)
	cpu.a = 0x00
	cpu.sbcFromA(0x00)
	assert.Equal(t, uint8(0xFF), cpu.a)
	assert.True(t, cpu.isSetFlag(carryFlag))
	assert.True(t, cpu.isSetFlag(halfCarryFlag))
}

func TestLogicalOps(t *testing.T) {
	cpu := newTestCPU(nil)

	cpu.a = 0b1100
	cpu.andWithA(0b1010)
	assert.Equal(t, uint8(0b1000), cpu.a)
	assert.True(t, cpu.isSetFlag(halfCarryFlag))
	assert.False(t, cpu.isSetFlag(carryFlag))

	cpu.a = 0b1100
	cpu.orWithA(0b1010)
	assert.Equal(t, uint8(0b1110), cpu.a)
	assert.False(t, cpu.isSetFlag(halfCarryFlag))

	cpu.a = 0b1100
	cpu.xorWithA(0b1010)
	assert.Equal(t, uint8(0b0110), cpu.a)

	cpu.a = 0x00
	cpu.xorWithA(0x00)
	assert.True(t, cpu.isSetFlag(zeroFlag))
}

func TestCompareA(t *testing.T) {
	cpu := newTestCPU(nil)

	cpu.a = 0x10
	cpu.compareA(0x01)

	// CP is SUB without the writeback.
	assert.Equal(t, uint8(0x10), cpu.a)
	assert.True(t, cpu.isSetFlag(subFlag))
	assert.True(t, cpu.isSetFlag(halfCarryFlag))
	assert.False(t, cpu.isSetFlag(carryFlag))

	cpu.compareA(0x10)
	assert.True(t, cpu.isSetFlag(zeroFlag))
}

func TestAddToHL(t *testing.T) {
	cpu := newTestCPU(nil)

	testCases := []struct {
		desc  string
		hl    uint16
		arg   uint16
		want  uint16
		flags Flag
	}{
		{desc: "adds", hl: 0x0100, arg: 0x0200, want: 0x0300},
		{desc: "half carry from bit 11", hl: 0x0FFF, arg: 0x0001, want: 0x1000, flags: halfCarryFlag},
		{desc: "carry from bit 15", hl: 0xF000, arg: 0x1000, want: 0x0000, flags: carryFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			cpu.setHL(tC.hl)
			cpu.addToHL(tC.arg)
			assert.Equal(t, tC.want, cpu.getHL())
			assert.Equal(t, uint8(tC.flags), cpu.f)
		})
	}
}

func TestAddToHLKeepsZero(t *testing.T) {
	cpu := newTestCPU(nil)

	cpu.setFlag(zeroFlag)
	cpu.setHL(0x0001)
	cpu.addToHL(0x0001)
	assert.True(t, cpu.isSetFlag(zeroFlag))
}

func TestAddSPRelative(t *testing.T) {
	cpu := newTestCPU(nil)

	testCases := []struct {
		desc   string
		sp     uint16
		offset int8
		want   uint16
		flags  Flag
	}{
		{desc: "positive", sp: 0xFFF0, offset: 0x05, want: 0xFFF5},
		{desc: "negative", sp: 0xFFF8, offset: -8, want: 0xFFF0, flags: halfCarryFlag | carryFlag},
		{desc: "low byte carry", sp: 0x00FF, offset: 0x01, want: 0x0100, flags: halfCarryFlag | carryFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0xF0
			cpu.sp = tC.sp
			assert.Equal(t, tC.want, cpu.addSPRelative(tC.offset))
			assert.Equal(t, uint8(tC.flags), cpu.f)
		})
	}
}

func TestRotations(t *testing.T) {
	cpu := newTestCPU(nil)

	testCases := []struct {
		desc   string
		fn     func(uint8) uint8
		arg    uint8
		carry  bool
		want   uint8
		flags  Flag
	}{
		{desc: "rlc rotates bit 7 around", fn: cpu.rlc, arg: 0x80, want: 0x01, flags: carryFlag},
		{desc: "rlc zero", fn: cpu.rlc, arg: 0x00, want: 0x00, flags: zeroFlag},
		{desc: "rrc rotates bit 0 around", fn: cpu.rrc, arg: 0x01, want: 0x80, flags: carryFlag},
		{desc: "rl shifts carry in", fn: cpu.rl, arg: 0x01, carry: true, want: 0x03},
		{desc: "rl shifts bit 7 out", fn: cpu.rl, arg: 0x80, want: 0x00, flags: zeroFlag | carryFlag},
		{desc: "rr shifts carry into bit 7", fn: cpu.rr, arg: 0x02, carry: true, want: 0x81},
		{desc: "sla drops bit 7", fn: cpu.sla, arg: 0xC0, want: 0x80, flags: carryFlag},
		{desc: "sra keeps bit 7", fn: cpu.sra, arg: 0x81, want: 0xC0, flags: carryFlag},
		{desc: "srl clears bit 7", fn: cpu.srl, arg: 0x81, want: 0x40, flags: carryFlag},
		{desc: "swap exchanges nibbles", fn: cpu.swap, arg: 0xAB, want: 0xBA},
		{desc: "swap zero", fn: cpu.swap, arg: 0x00, want: 0x00, flags: zeroFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			cpu.setFlagTo(carryFlag, tC.carry)
			assert.Equal(t, tC.want, tC.fn(tC.arg))
			assert.Equal(t, uint8(tC.flags), cpu.f)
		})
	}
}

func TestTestBit(t *testing.T) {
	cpu := newTestCPU(nil)

	cpu.f = 0
	cpu.testBit(3, 0b0000_1000)
	assert.False(t, cpu.isSetFlag(zeroFlag))
	assert.True(t, cpu.isSetFlag(halfCarryFlag))

	cpu.testBit(3, 0)
	assert.True(t, cpu.isSetFlag(zeroFlag))

	// carry must survive
	cpu.setFlag(carryFlag)
	cpu.testBit(0, 0xFF)
	assert.True(t, cpu.isSetFlag(carryFlag))
}

func TestDAA(t *testing.T) {
	cpu := newTestCPU(nil)

	testCases := []struct {
		desc  string
		a     uint8
		flags Flag
		want  uint8
		carry bool
	}{
		{desc: "no adjustment needed", a: 0x42, want: 0x42},
		{desc: "adjust low nibble", a: 0x0A, want: 0x10},
		{desc: "adjust high nibble", a: 0xA0, want: 0x00, carry: true},
		{desc: "adjust after half carry", a: 0x10, flags: halfCarryFlag, want: 0x16},
		{desc: "subtraction with carry", a: 0xA0, flags: subFlag | carryFlag, want: 0x40, carry: true},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = uint8(tC.flags)
			cpu.a = tC.a
			cpu.daa()
			assert.Equal(t, tC.want, cpu.a)
			assert.Equal(t, tC.carry, cpu.isSetFlag(carryFlag))
			assert.False(t, cpu.isSetFlag(halfCarryFlag))
		})
	}
}

func TestDAAAfterBCDAddition(t *testing.T) {
	cpu := newTestCPU(nil)

	// 0x45 + 0x38 = 0x7D, DAA turns it into BCD 83.
	cpu.a = 0x45
	cpu.addToA(0x38)
	assert.Equal(t, uint8(0x7D), cpu.a)
	assert.False(t, cpu.isSetFlag(halfCarryFlag))
	assert.False(t, cpu.isSetFlag(carryFlag))

	cpu.daa()
	assert.Equal(t, uint8(0x83), cpu.a)
	assert.False(t, cpu.isSetFlag(zeroFlag))
	assert.False(t, cpu.isSetFlag(subFlag))
	assert.False(t, cpu.isSetFlag(halfCarryFlag))
	assert.False(t, cpu.isSetFlag(carryFlag))
}
