package cpu

import (
	"fmt"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/bit"
)

// illegalOpcode halts emulation: these encodings do not exist on the
// LR35902, so reaching one means the instruction stream is corrupt.
func illegalOpcode(cpu *CPU) int {
	panic(fmt.Sprintf("illegal opcode 0x%02X at 0x%04X", cpu.currentOpcode, cpu.pc-1))
}

// prefixCB is never dispatched: the interpreter consumes the prefix and
// decodes the following byte from the extended table directly.
func prefixCB(_ *CPU) int {
	panic("CB prefix reached the base dispatch table")
}

// NOP (0x00)
func op0x00(_ *CPU) int {
	return 4
}

// LD BC, d16 (0x01)
func op0x01(cpu *CPU) int {
	cpu.setBC(cpu.fetch16())
	return 12
}

// LD (BC), A (0x02)
func op0x02(cpu *CPU) int {
	cpu.memory.Write(cpu.getBC(), cpu.a)
	return 8
}

// INC BC (0x03)
func op0x03(cpu *CPU) int {
	cpu.setBC(cpu.getBC() + 1)
	return 8
}

// INC B (0x04)
func op0x04(cpu *CPU) int {
	cpu.b = cpu.inc8(cpu.b)
	return 4
}

// DEC B (0x05)
func op0x05(cpu *CPU) int {
	cpu.b = cpu.dec8(cpu.b)
	return 4
}

// LD B, d8 (0x06)
func op0x06(cpu *CPU) int {
	cpu.b = cpu.fetch8()
	return 8
}

// RLCA (0x07)
func op0x07(cpu *CPU) int {
	cpu.a = cpu.rlc(cpu.a)
	cpu.resetFlag(zeroFlag)
	return 4
}

// LD (a16), SP (0x08)
func op0x08(cpu *CPU) int {
	target := cpu.fetch16()
	cpu.memory.Write(target, bit.Low(cpu.sp))
	cpu.memory.Write(target+1, bit.High(cpu.sp))
	return 20
}

// ADD HL, BC (0x09)
func op0x09(cpu *CPU) int {
	cpu.addToHL(cpu.getBC())
	return 8
}

// LD A, (BC) (0x0A)
func op0x0A(cpu *CPU) int {
	cpu.a = cpu.memory.Read(cpu.getBC())
	return 8
}

// DEC BC (0x0B)
func op0x0B(cpu *CPU) int {
	cpu.setBC(cpu.getBC() - 1)
	return 8
}

// INC C (0x0C)
func op0x0C(cpu *CPU) int {
	cpu.c = cpu.inc8(cpu.c)
	return 4
}

// DEC C (0x0D)
func op0x0D(cpu *CPU) int {
	cpu.c = cpu.dec8(cpu.c)
	return 4
}

// LD C, d8 (0x0E)
func op0x0E(cpu *CPU) int {
	cpu.c = cpu.fetch8()
	return 8
}

// RRCA (0x0F)
func op0x0F(cpu *CPU) int {
	cpu.a = cpu.rrc(cpu.a)
	cpu.resetFlag(zeroFlag)
	return 4
}

// STOP (0x10)
func op0x10(cpu *CPU) int {
	cpu.stop()
	return 4
}

// LD DE, d16 (0x11)
func op0x11(cpu *CPU) int {
	cpu.setDE(cpu.fetch16())
	return 12
}

// LD (DE), A (0x12)
func op0x12(cpu *CPU) int {
	cpu.memory.Write(cpu.getDE(), cpu.a)
	return 8
}

// INC DE (0x13)
func op0x13(cpu *CPU) int {
	cpu.setDE(cpu.getDE() + 1)
	return 8
}

// INC D (0x14)
func op0x14(cpu *CPU) int {
	cpu.d = cpu.inc8(cpu.d)
	return 4
}

// DEC D (0x15)
func op0x15(cpu *CPU) int {
	cpu.d = cpu.dec8(cpu.d)
	return 4
}

// LD D, d8 (0x16)
func op0x16(cpu *CPU) int {
	cpu.d = cpu.fetch8()
	return 8
}

// RLA (0x17)
func op0x17(cpu *CPU) int {
	cpu.a = cpu.rl(cpu.a)
	cpu.resetFlag(zeroFlag)
	return 4
}

// JR r8 (0x18)
func op0x18(cpu *CPU) int {
	cpu.relativeJump(cpu.fetchSigned())
	return 12
}

// ADD HL, DE (0x19)
func op0x19(cpu *CPU) int {
	cpu.addToHL(cpu.getDE())
	return 8
}

// LD A, (DE) (0x1A)
func op0x1A(cpu *CPU) int {
	cpu.a = cpu.memory.Read(cpu.getDE())
	return 8
}

// DEC DE (0x1B)
func op0x1B(cpu *CPU) int {
	cpu.setDE(cpu.getDE() - 1)
	return 8
}

// INC E (0x1C)
func op0x1C(cpu *CPU) int {
	cpu.e = cpu.inc8(cpu.e)
	return 4
}

// DEC E (0x1D)
func op0x1D(cpu *CPU) int {
	cpu.e = cpu.dec8(cpu.e)
	return 4
}

// LD E, d8 (0x1E)
func op0x1E(cpu *CPU) int {
	cpu.e = cpu.fetch8()
	return 8
}

// RRA (0x1F)
func op0x1F(cpu *CPU) int {
	cpu.a = cpu.rr(cpu.a)
	cpu.resetFlag(zeroFlag)
	return 4
}

// JR NZ, r8 (0x20)
func op0x20(cpu *CPU) int {
	offset := cpu.fetchSigned()
	if !cpu.isSetFlag(zeroFlag) {
		cpu.relativeJump(offset)
		return 12
	}
	return 8
}

// LD HL, d16 (0x21)
func op0x21(cpu *CPU) int {
	cpu.setHL(cpu.fetch16())
	return 12
}

// LDI (HL), A (0x22)
func op0x22(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), cpu.a)
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// INC HL (0x23)
func op0x23(cpu *CPU) int {
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// INC H (0x24)
func op0x24(cpu *CPU) int {
	cpu.h = cpu.inc8(cpu.h)
	return 4
}

// DEC H (0x25)
func op0x25(cpu *CPU) int {
	cpu.h = cpu.dec8(cpu.h)
	return 4
}

// LD H, d8 (0x26)
func op0x26(cpu *CPU) int {
	cpu.h = cpu.fetch8()
	return 8
}

// DAA (0x27)
func op0x27(cpu *CPU) int {
	cpu.daa()
	return 4
}

// JR Z, r8 (0x28)
func op0x28(cpu *CPU) int {
	offset := cpu.fetchSigned()
	if cpu.isSetFlag(zeroFlag) {
		cpu.relativeJump(offset)
		return 12
	}
	return 8
}

// ADD HL, HL (0x29)
func op0x29(cpu *CPU) int {
	cpu.addToHL(cpu.getHL())
	return 8
}

// LDI A, (HL) (0x2A)
func op0x2A(cpu *CPU) int {
	cpu.a = cpu.memory.Read(cpu.getHL())
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// DEC HL (0x2B)
func op0x2B(cpu *CPU) int {
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// INC L (0x2C)
func op0x2C(cpu *CPU) int {
	cpu.l = cpu.inc8(cpu.l)
	return 4
}

// DEC L (0x2D)
func op0x2D(cpu *CPU) int {
	cpu.l = cpu.dec8(cpu.l)
	return 4
}

// LD L, d8 (0x2E)
func op0x2E(cpu *CPU) int {
	cpu.l = cpu.fetch8()
	return 8
}

// CPL (0x2F)
func op0x2F(cpu *CPU) int {
	cpu.a ^= 0xFF
	cpu.setFlag(subFlag)
	cpu.setFlag(halfCarryFlag)
	return 4
}

// JR NC, r8 (0x30)
func op0x30(cpu *CPU) int {
	offset := cpu.fetchSigned()
	if !cpu.isSetFlag(carryFlag) {
		cpu.relativeJump(offset)
		return 12
	}
	return 8
}

// LD SP, d16 (0x31)
func op0x31(cpu *CPU) int {
	cpu.sp = cpu.fetch16()
	return 12
}

// LDD (HL), A (0x32)
func op0x32(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), cpu.a)
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// INC SP (0x33)
func op0x33(cpu *CPU) int {
	cpu.sp++
	return 8
}

// INC (HL) (0x34)
func op0x34(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, cpu.inc8(cpu.memory.Read(target)))
	return 12
}

// DEC (HL) (0x35)
func op0x35(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, cpu.dec8(cpu.memory.Read(target)))
	return 12
}

// LD (HL), d8 (0x36)
func op0x36(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), cpu.fetch8())
	return 12
}

// SCF (0x37)
func op0x37(cpu *CPU) int {
	cpu.resetFlag(subFlag)
	cpu.resetFlag(halfCarryFlag)
	cpu.setFlag(carryFlag)
	return 4
}

// JR C, r8 (0x38)
func op0x38(cpu *CPU) int {
	offset := cpu.fetchSigned()
	if cpu.isSetFlag(carryFlag) {
		cpu.relativeJump(offset)
		return 12
	}
	return 8
}

// ADD HL, SP (0x39)
func op0x39(cpu *CPU) int {
	cpu.addToHL(cpu.sp)
	return 8
}

// LDD A, (HL) (0x3A)
func op0x3A(cpu *CPU) int {
	cpu.a = cpu.memory.Read(cpu.getHL())
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// DEC SP (0x3B)
func op0x3B(cpu *CPU) int {
	cpu.sp--
	return 8
}

// INC A (0x3C)
func op0x3C(cpu *CPU) int {
	cpu.a = cpu.inc8(cpu.a)
	return 4
}

// DEC A (0x3D)
func op0x3D(cpu *CPU) int {
	cpu.a = cpu.dec8(cpu.a)
	return 4
}

// LD A, d8 (0x3E)
func op0x3E(cpu *CPU) int {
	cpu.a = cpu.fetch8()
	return 8
}

// CCF (0x3F)
func op0x3F(cpu *CPU) int {
	cpu.resetFlag(subFlag)
	cpu.resetFlag(halfCarryFlag)
	cpu.setFlagTo(carryFlag, !cpu.isSetFlag(carryFlag))
	return 4
}

// LD B, B (0x40)
func op0x40(_ *CPU) int {
	return 4
}

// LD B, C (0x41)
func op0x41(cpu *CPU) int {
	cpu.b = cpu.c
	return 4
}

// LD B, D (0x42)
func op0x42(cpu *CPU) int {
	cpu.b = cpu.d
	return 4
}

// LD B, E (0x43)
func op0x43(cpu *CPU) int {
	cpu.b = cpu.e
	return 4
}

// LD B, H (0x44)
func op0x44(cpu *CPU) int {
	cpu.b = cpu.h
	return 4
}

// LD B, L (0x45)
func op0x45(cpu *CPU) int {
	cpu.b = cpu.l
	return 4
}

// LD B, (HL) (0x46)
func op0x46(cpu *CPU) int {
	cpu.b = cpu.memory.Read(cpu.getHL())
	return 8
}

// LD B, A (0x47)
func op0x47(cpu *CPU) int {
	cpu.b = cpu.a
	return 4
}

// LD C, B (0x48)
func op0x48(cpu *CPU) int {
	cpu.c = cpu.b
	return 4
}

// LD C, C (0x49)
func op0x49(_ *CPU) int {
	return 4
}

// LD C, D (0x4A)
func op0x4A(cpu *CPU) int {
	cpu.c = cpu.d
	return 4
}

// LD C, E (0x4B)
func op0x4B(cpu *CPU) int {
	cpu.c = cpu.e
	return 4
}

// LD C, H (0x4C)
func op0x4C(cpu *CPU) int {
	cpu.c = cpu.h
	return 4
}

// LD C, L (0x4D)
func op0x4D(cpu *CPU) int {
	cpu.c = cpu.l
	return 4
}

// LD C, (HL) (0x4E)
func op0x4E(cpu *CPU) int {
	cpu.c = cpu.memory.Read(cpu.getHL())
	return 8
}

// LD C, A (0x4F)
func op0x4F(cpu *CPU) int {
	cpu.c = cpu.a
	return 4
}

// LD D, B (0x50)
func op0x50(cpu *CPU) int {
	cpu.d = cpu.b
	return 4
}

// LD D, C (0x51)
func op0x51(cpu *CPU) int {
	cpu.d = cpu.c
	return 4
}

// LD D, D (0x52)
func op0x52(_ *CPU) int {
	return 4
}

// LD D, E (0x53)
func op0x53(cpu *CPU) int {
	cpu.d = cpu.e
	return 4
}

// LD D, H (0x54)
func op0x54(cpu *CPU) int {
	cpu.d = cpu.h
	return 4
}

// LD D, L (0x55)
func op0x55(cpu *CPU) int {
	cpu.d = cpu.l
	return 4
}

// LD D, (HL) (0x56)
func op0x56(cpu *CPU) int {
	cpu.d = cpu.memory.Read(cpu.getHL())
	return 8
}

// LD D, A (0x57)
func op0x57(cpu *CPU) int {
	cpu.d = cpu.a
	return 4
}

// LD E, B (0x58)
func op0x58(cpu *CPU) int {
	cpu.e = cpu.b
	return 4
}

// LD E, C (0x59)
func op0x59(cpu *CPU) int {
	cpu.e = cpu.c
	return 4
}

// LD E, D (0x5A)
func op0x5A(cpu *CPU) int {
	cpu.e = cpu.d
	return 4
}

// LD E, E (0x5B)
func op0x5B(_ *CPU) int {
	return 4
}

// LD E, H (0x5C)
func op0x5C(cpu *CPU) int {
	cpu.e = cpu.h
	return 4
}

// LD E, L (0x5D)
func op0x5D(cpu *CPU) int {
	cpu.e = cpu.l
	return 4
}

// LD E, (HL) (0x5E)
func op0x5E(cpu *CPU) int {
	cpu.e = cpu.memory.Read(cpu.getHL())
	return 8
}

// LD E, A (0x5F)
func op0x5F(cpu *CPU) int {
	cpu.e = cpu.a
	return 4
}

// LD H, B (0x60)
func op0x60(cpu *CPU) int {
	cpu.h = cpu.b
	return 4
}

// LD H, C (0x61)
func op0x61(cpu *CPU) int {
	cpu.h = cpu.c
	return 4
}

// LD H, D (0x62)
func op0x62(cpu *CPU) int {
	cpu.h = cpu.d
	return 4
}

// LD H, E (0x63)
func op0x63(cpu *CPU) int {
	cpu.h = cpu.e
	return 4
}

// LD H, H (0x64)
func op0x64(_ *CPU) int {
	return 4
}

// LD H, L (0x65)
func op0x65(cpu *CPU) int {
	cpu.h = cpu.l
	return 4
}

// LD H, (HL) (0x66)
func op0x66(cpu *CPU) int {
	cpu.h = cpu.memory.Read(cpu.getHL())
	return 8
}

// LD H, A (0x67)
func op0x67(cpu *CPU) int {
	cpu.h = cpu.a
	return 4
}

// LD L, B (0x68)
func op0x68(cpu *CPU) int {
	cpu.l = cpu.b
	return 4
}

// LD L, C (0x69)
func op0x69(cpu *CPU) int {
	cpu.l = cpu.c
	return 4
}

// LD L, D (0x6A)
func op0x6A(cpu *CPU) int {
	cpu.l = cpu.d
	return 4
}

// LD L, E (0x6B)
func op0x6B(cpu *CPU) int {
	cpu.l = cpu.e
	return 4
}

// LD L, H (0x6C)
func op0x6C(cpu *CPU) int {
	cpu.l = cpu.h
	return 4
}

// LD L, L (0x6D)
func op0x6D(_ *CPU) int {
	return 4
}

// LD L, (HL) (0x6E)
func op0x6E(cpu *CPU) int {
	cpu.l = cpu.memory.Read(cpu.getHL())
	return 8
}

// LD L, A (0x6F)
func op0x6F(cpu *CPU) int {
	cpu.l = cpu.a
	return 4
}

// LD (HL), B (0x70)
func op0x70(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), cpu.b)
	return 8
}

// LD (HL), C (0x71)
func op0x71(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), cpu.c)
	return 8
}

// LD (HL), D (0x72)
func op0x72(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), cpu.d)
	return 8
}

// LD (HL), E (0x73)
func op0x73(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), cpu.e)
	return 8
}

// LD (HL), H (0x74)
func op0x74(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), cpu.h)
	return 8
}

// LD (HL), L (0x75)
func op0x75(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), cpu.l)
	return 8
}

// HALT (0x76)
func op0x76(cpu *CPU) int {
	cpu.halted = true
	return 4
}

// LD (HL), A (0x77)
func op0x77(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), cpu.a)
	return 8
}

// LD A, B (0x78)
func op0x78(cpu *CPU) int {
	cpu.a = cpu.b
	return 4
}

// LD A, C (0x79)
func op0x79(cpu *CPU) int {
	cpu.a = cpu.c
	return 4
}

// LD A, D (0x7A)
func op0x7A(cpu *CPU) int {
	cpu.a = cpu.d
	return 4
}

// LD A, E (0x7B)
func op0x7B(cpu *CPU) int {
	cpu.a = cpu.e
	return 4
}

// LD A, H (0x7C)
func op0x7C(cpu *CPU) int {
	cpu.a = cpu.h
	return 4
}

// LD A, L (0x7D)
func op0x7D(cpu *CPU) int {
	cpu.a = cpu.l
	return 4
}

// LD A, (HL) (0x7E)
func op0x7E(cpu *CPU) int {
	cpu.a = cpu.memory.Read(cpu.getHL())
	return 8
}

// LD A, A (0x7F)
func op0x7F(_ *CPU) int {
	return 4
}

// ADD A, B (0x80)
func op0x80(cpu *CPU) int {
	cpu.addToA(cpu.b)
	return 4
}

// ADD A, C (0x81)
func op0x81(cpu *CPU) int {
	cpu.addToA(cpu.c)
	return 4
}

// ADD A, D (0x82)
func op0x82(cpu *CPU) int {
	cpu.addToA(cpu.d)
	return 4
}

// ADD A, E (0x83)
func op0x83(cpu *CPU) int {
	cpu.addToA(cpu.e)
	return 4
}

// ADD A, H (0x84)
func op0x84(cpu *CPU) int {
	cpu.addToA(cpu.h)
	return 4
}

// ADD A, L (0x85)
func op0x85(cpu *CPU) int {
	cpu.addToA(cpu.l)
	return 4
}

// ADD A, (HL) (0x86)
func op0x86(cpu *CPU) int {
	cpu.addToA(cpu.memory.Read(cpu.getHL()))
	return 8
}

// ADD A, A (0x87)
func op0x87(cpu *CPU) int {
	cpu.addToA(cpu.a)
	return 4
}

// ADC A, B (0x88)
func op0x88(cpu *CPU) int {
	cpu.adcToA(cpu.b)
	return 4
}

// ADC A, C (0x89)
func op0x89(cpu *CPU) int {
	cpu.adcToA(cpu.c)
	return 4
}

// ADC A, D (0x8A)
func op0x8A(cpu *CPU) int {
	cpu.adcToA(cpu.d)
	return 4
}

// ADC A, E (0x8B)
func op0x8B(cpu *CPU) int {
	cpu.adcToA(cpu.e)
	return 4
}

// ADC A, H (0x8C)
func op0x8C(cpu *CPU) int {
	cpu.adcToA(cpu.h)
	return 4
}

// ADC A, L (0x8D)
func op0x8D(cpu *CPU) int {
	cpu.adcToA(cpu.l)
	return 4
}

// ADC A, (HL) (0x8E)
func op0x8E(cpu *CPU) int {
	cpu.adcToA(cpu.memory.Read(cpu.getHL()))
	return 8
}

// ADC A, A (0x8F)
func op0x8F(cpu *CPU) int {
	cpu.adcToA(cpu.a)
	return 4
}

// SUB B (0x90)
func op0x90(cpu *CPU) int {
	cpu.subFromA(cpu.b)
	return 4
}

// SUB C (0x91)
func op0x91(cpu *CPU) int {
	cpu.subFromA(cpu.c)
	return 4
}

// SUB D (0x92)
func op0x92(cpu *CPU) int {
	cpu.subFromA(cpu.d)
	return 4
}

// SUB E (0x93)
func op0x93(cpu *CPU) int {
	cpu.subFromA(cpu.e)
	return 4
}

// SUB H (0x94)
func op0x94(cpu *CPU) int {
	cpu.subFromA(cpu.h)
	return 4
}

// SUB L (0x95)
func op0x95(cpu *CPU) int {
	cpu.subFromA(cpu.l)
	return 4
}

// SUB (HL) (0x96)
func op0x96(cpu *CPU) int {
	cpu.subFromA(cpu.memory.Read(cpu.getHL()))
	return 8
}

// SUB A (0x97)
func op0x97(cpu *CPU) int {
	cpu.subFromA(cpu.a)
	return 4
}

// SBC A, B (0x98)
func op0x98(cpu *CPU) int {
	cpu.sbcFromA(cpu.b)
	return 4
}

// SBC A, C (0x99)
func op0x99(cpu *CPU) int {
	cpu.sbcFromA(cpu.c)
	return 4
}

// SBC A, D (0x9A)
func op0x9A(cpu *CPU) int {
	cpu.sbcFromA(cpu.d)
	return 4
}

// SBC A, E (0x9B)
func op0x9B(cpu *CPU) int {
	cpu.sbcFromA(cpu.e)
	return 4
}

// SBC A, H (0x9C)
func op0x9C(cpu *CPU) int {
	cpu.sbcFromA(cpu.h)
	return 4
}

// SBC A, L (0x9D)
func op0x9D(cpu *CPU) int {
	cpu.sbcFromA(cpu.l)
	return 4
}

// SBC A, (HL) (0x9E)
func op0x9E(cpu *CPU) int {
	cpu.sbcFromA(cpu.memory.Read(cpu.getHL()))
	return 8
}

// SBC A, A (0x9F)
func op0x9F(cpu *CPU) int {
	cpu.sbcFromA(cpu.a)
	return 4
}

// AND B (0xA0)
func op0xA0(cpu *CPU) int {
	cpu.andWithA(cpu.b)
	return 4
}

// AND C (0xA1)
func op0xA1(cpu *CPU) int {
	cpu.andWithA(cpu.c)
	return 4
}

// AND D (0xA2)
func op0xA2(cpu *CPU) int {
	cpu.andWithA(cpu.d)
	return 4
}

// AND E (0xA3)
func op0xA3(cpu *CPU) int {
	cpu.andWithA(cpu.e)
	return 4
}

// AND H (0xA4)
func op0xA4(cpu *CPU) int {
	cpu.andWithA(cpu.h)
	return 4
}

// AND L (0xA5)
func op0xA5(cpu *CPU) int {
	cpu.andWithA(cpu.l)
	return 4
}

// AND (HL) (0xA6)
func op0xA6(cpu *CPU) int {
	cpu.andWithA(cpu.memory.Read(cpu.getHL()))
	return 8
}

// AND A (0xA7)
func op0xA7(cpu *CPU) int {
	cpu.andWithA(cpu.a)
	return 4
}

// XOR B (0xA8)
func op0xA8(cpu *CPU) int {
	cpu.xorWithA(cpu.b)
	return 4
}

// XOR C (0xA9)
func op0xA9(cpu *CPU) int {
	cpu.xorWithA(cpu.c)
	return 4
}

// XOR D (0xAA)
func op0xAA(cpu *CPU) int {
	cpu.xorWithA(cpu.d)
	return 4
}

// XOR E (0xAB)
func op0xAB(cpu *CPU) int {
	cpu.xorWithA(cpu.e)
	return 4
}

// XOR H (0xAC)
func op0xAC(cpu *CPU) int {
	cpu.xorWithA(cpu.h)
	return 4
}

// XOR L (0xAD)
func op0xAD(cpu *CPU) int {
	cpu.xorWithA(cpu.l)
	return 4
}

// XOR (HL) (0xAE)
func op0xAE(cpu *CPU) int {
	cpu.xorWithA(cpu.memory.Read(cpu.getHL()))
	return 8
}

// XOR A (0xAF)
func op0xAF(cpu *CPU) int {
	cpu.xorWithA(cpu.a)
	return 4
}

// OR B (0xB0)
func op0xB0(cpu *CPU) int {
	cpu.orWithA(cpu.b)
	return 4
}

// OR C (0xB1)
func op0xB1(cpu *CPU) int {
	cpu.orWithA(cpu.c)
	return 4
}

// OR D (0xB2)
func op0xB2(cpu *CPU) int {
	cpu.orWithA(cpu.d)
	return 4
}

// OR E (0xB3)
func op0xB3(cpu *CPU) int {
	cpu.orWithA(cpu.e)
	return 4
}

// OR H (0xB4)
func op0xB4(cpu *CPU) int {
	cpu.orWithA(cpu.h)
	return 4
}

// OR L (0xB5)
func op0xB5(cpu *CPU) int {
	cpu.orWithA(cpu.l)
	return 4
}

// OR (HL) (0xB6)
func op0xB6(cpu *CPU) int {
	cpu.orWithA(cpu.memory.Read(cpu.getHL()))
	return 8
}

// OR A (0xB7)
func op0xB7(cpu *CPU) int {
	cpu.orWithA(cpu.a)
	return 4
}

// CP B (0xB8)
func op0xB8(cpu *CPU) int {
	cpu.compareA(cpu.b)
	return 4
}

// CP C (0xB9)
func op0xB9(cpu *CPU) int {
	cpu.compareA(cpu.c)
	return 4
}

// CP D (0xBA)
func op0xBA(cpu *CPU) int {
	cpu.compareA(cpu.d)
	return 4
}

// CP E (0xBB)
func op0xBB(cpu *CPU) int {
	cpu.compareA(cpu.e)
	return 4
}

// CP H (0xBC)
func op0xBC(cpu *CPU) int {
	cpu.compareA(cpu.h)
	return 4
}

// CP L (0xBD)
func op0xBD(cpu *CPU) int {
	cpu.compareA(cpu.l)
	return 4
}

// CP (HL) (0xBE)
func op0xBE(cpu *CPU) int {
	cpu.compareA(cpu.memory.Read(cpu.getHL()))
	return 8
}

// CP A (0xBF)
func op0xBF(cpu *CPU) int {
	cpu.compareA(cpu.a)
	return 4
}

// RET NZ (0xC0)
func op0xC0(cpu *CPU) int {
	if !cpu.isSetFlag(zeroFlag) {
		cpu.pc = cpu.popStack()
		return 20
	}
	return 8
}

// POP BC (0xC1)
func op0xC1(cpu *CPU) int {
	cpu.setBC(cpu.popStack())
	return 12
}

// JP NZ, a16 (0xC2)
func op0xC2(cpu *CPU) int {
	target := cpu.fetch16()
	if !cpu.isSetFlag(zeroFlag) {
		cpu.pc = target
		return 16
	}
	return 12
}

// JP a16 (0xC3)
func op0xC3(cpu *CPU) int {
	cpu.pc = cpu.fetch16()
	return 16
}

// CALL NZ, a16 (0xC4)
func op0xC4(cpu *CPU) int {
	target := cpu.fetch16()
	if !cpu.isSetFlag(zeroFlag) {
		cpu.pushStack(cpu.pc)
		cpu.pc = target
		return 24
	}
	return 12
}

// PUSH BC (0xC5)
func op0xC5(cpu *CPU) int {
	cpu.pushStack(cpu.getBC())
	return 16
}

// ADD A, d8 (0xC6)
func op0xC6(cpu *CPU) int {
	cpu.addToA(cpu.fetch8())
	return 8
}

// RST 0x00 (0xC7)
func op0xC7(cpu *CPU) int {
	cpu.pushStack(cpu.pc)
	cpu.pc = 0x00
	return 16
}

// RET Z (0xC8)
func op0xC8(cpu *CPU) int {
	if cpu.isSetFlag(zeroFlag) {
		cpu.pc = cpu.popStack()
		return 20
	}
	return 8
}

// RET (0xC9)
func op0xC9(cpu *CPU) int {
	cpu.pc = cpu.popStack()
	return 16
}

// JP Z, a16 (0xCA)
func op0xCA(cpu *CPU) int {
	target := cpu.fetch16()
	if cpu.isSetFlag(zeroFlag) {
		cpu.pc = target
		return 16
	}
	return 12
}

// CALL Z, a16 (0xCC)
func op0xCC(cpu *CPU) int {
	target := cpu.fetch16()
	if cpu.isSetFlag(zeroFlag) {
		cpu.pushStack(cpu.pc)
		cpu.pc = target
		return 24
	}
	return 12
}

// CALL a16 (0xCD)
func op0xCD(cpu *CPU) int {
	target := cpu.fetch16()
	cpu.pushStack(cpu.pc)
	cpu.pc = target
	return 24
}

// ADC A, d8 (0xCE)
func op0xCE(cpu *CPU) int {
	cpu.adcToA(cpu.fetch8())
	return 8
}

// RST 0x08 (0xCF)
func op0xCF(cpu *CPU) int {
	cpu.pushStack(cpu.pc)
	cpu.pc = 0x08
	return 16
}

// RET NC (0xD0)
func op0xD0(cpu *CPU) int {
	if !cpu.isSetFlag(carryFlag) {
		cpu.pc = cpu.popStack()
		return 20
	}
	return 8
}

// POP DE (0xD1)
func op0xD1(cpu *CPU) int {
	cpu.setDE(cpu.popStack())
	return 12
}

// JP NC, a16 (0xD2)
func op0xD2(cpu *CPU) int {
	target := cpu.fetch16()
	if !cpu.isSetFlag(carryFlag) {
		cpu.pc = target
		return 16
	}
	return 12
}

// CALL NC, a16 (0xD4)
func op0xD4(cpu *CPU) int {
	target := cpu.fetch16()
	if !cpu.isSetFlag(carryFlag) {
		cpu.pushStack(cpu.pc)
		cpu.pc = target
		return 24
	}
	return 12
}

// PUSH DE (0xD5)
func op0xD5(cpu *CPU) int {
	cpu.pushStack(cpu.getDE())
	return 16
}

// SUB d8 (0xD6)
func op0xD6(cpu *CPU) int {
	cpu.subFromA(cpu.fetch8())
	return 8
}

// RST 0x10 (0xD7)
func op0xD7(cpu *CPU) int {
	cpu.pushStack(cpu.pc)
	cpu.pc = 0x10
	return 16
}

// RET C (0xD8)
func op0xD8(cpu *CPU) int {
	if cpu.isSetFlag(carryFlag) {
		cpu.pc = cpu.popStack()
		return 20
	}
	return 8
}

// RETI (0xD9)
func op0xD9(cpu *CPU) int {
	cpu.pc = cpu.popStack()
	cpu.interruptsEnabled = true
	return 16
}

// JP C, a16 (0xDA)
func op0xDA(cpu *CPU) int {
	target := cpu.fetch16()
	if cpu.isSetFlag(carryFlag) {
		cpu.pc = target
		return 16
	}
	return 12
}

// CALL C, a16 (0xDC)
func op0xDC(cpu *CPU) int {
	target := cpu.fetch16()
	if cpu.isSetFlag(carryFlag) {
		cpu.pushStack(cpu.pc)
		cpu.pc = target
		return 24
	}
	return 12
}

// SBC A, d8 (0xDE)
func op0xDE(cpu *CPU) int {
	cpu.sbcFromA(cpu.fetch8())
	return 8
}

// RST 0x18 (0xDF)
func op0xDF(cpu *CPU) int {
	cpu.pushStack(cpu.pc)
	cpu.pc = 0x18
	return 16
}

// LDH (a8), A (0xE0)
func op0xE0(cpu *CPU) int {
	cpu.memory.Write(0xFF00+uint16(cpu.fetch8()), cpu.a)
	return 12
}

// POP HL (0xE1)
func op0xE1(cpu *CPU) int {
	cpu.setHL(cpu.popStack())
	return 12
}

// LD (C), A (0xE2)
func op0xE2(cpu *CPU) int {
	cpu.memory.Write(0xFF00+uint16(cpu.c), cpu.a)
	return 8
}

// PUSH HL (0xE5)
func op0xE5(cpu *CPU) int {
	cpu.pushStack(cpu.getHL())
	return 16
}

// AND d8 (0xE6)
func op0xE6(cpu *CPU) int {
	cpu.andWithA(cpu.fetch8())
	return 8
}

// RST 0x20 (0xE7)
func op0xE7(cpu *CPU) int {
	cpu.pushStack(cpu.pc)
	cpu.pc = 0x20
	return 16
}

// ADD SP, r8 (0xE8)
func op0xE8(cpu *CPU) int {
	cpu.sp = cpu.addSPRelative(cpu.fetchSigned())
	return 16
}

// JP (HL) (0xE9)
func op0xE9(cpu *CPU) int {
	cpu.pc = cpu.getHL()
	return 4
}

// LD (a16), A (0xEA)
func op0xEA(cpu *CPU) int {
	cpu.memory.Write(cpu.fetch16(), cpu.a)
	return 16
}

// XOR d8 (0xEE)
func op0xEE(cpu *CPU) int {
	cpu.xorWithA(cpu.fetch8())
	return 8
}

// RST 0x28 (0xEF)
func op0xEF(cpu *CPU) int {
	cpu.pushStack(cpu.pc)
	cpu.pc = 0x28
	return 16
}

// LDH A, (a8) (0xF0)
func op0xF0(cpu *CPU) int {
	cpu.a = cpu.memory.Read(0xFF00+uint16(cpu.fetch8()))
	return 12
}

// POP AF (0xF1)
func op0xF1(cpu *CPU) int {
	cpu.setAF(cpu.popStack())
	return 12
}

// LD A, (C) (0xF2)
func op0xF2(cpu *CPU) int {
	cpu.a = cpu.memory.Read(0xFF00+uint16(cpu.c))
	return 8
}

// DI (0xF3)
func op0xF3(cpu *CPU) int {
	cpu.diCountdown = 2
	return 4
}

// PUSH AF (0xF5)
func op0xF5(cpu *CPU) int {
	cpu.pushStack(cpu.getAF())
	return 16
}

// OR d8 (0xF6)
func op0xF6(cpu *CPU) int {
	cpu.orWithA(cpu.fetch8())
	return 8
}

// RST 0x30 (0xF7)
func op0xF7(cpu *CPU) int {
	cpu.pushStack(cpu.pc)
	cpu.pc = 0x30
	return 16
}

// LD HL, SP+r8 (0xF8)
func op0xF8(cpu *CPU) int {
	cpu.setHL(cpu.addSPRelative(cpu.fetchSigned()))
	return 12
}

// LD SP, HL (0xF9)
func op0xF9(cpu *CPU) int {
	cpu.sp = cpu.getHL()
	return 8
}

// LD A, (a16) (0xFA)
func op0xFA(cpu *CPU) int {
	cpu.a = cpu.memory.Read(cpu.fetch16())
	return 16
}

// EI (0xFB)
func op0xFB(cpu *CPU) int {
	cpu.eiCountdown = 2
	return 4
}

// CP d8 (0xFE)
func op0xFE(cpu *CPU) int {
	cpu.compareA(cpu.fetch8())
	return 8
}

// RST 0x38 (0xFF)
func op0xFF(cpu *CPU) int {
	cpu.pushStack(cpu.pc)
	cpu.pc = 0x38
	return 16
}
