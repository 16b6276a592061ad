package cpu

import "github.com/dotmatrix-gb/dotmatrix/dotmatrix/bit"

// RLC B (CB 0x00)
func cb0x00(cpu *CPU) int {
	cpu.b = cpu.rlc(cpu.b)
	return 8
}

// RLC C (CB 0x01)
func cb0x01(cpu *CPU) int {
	cpu.c = cpu.rlc(cpu.c)
	return 8
}

// RLC D (CB 0x02)
func cb0x02(cpu *CPU) int {
	cpu.d = cpu.rlc(cpu.d)
	return 8
}

// RLC E (CB 0x03)
func cb0x03(cpu *CPU) int {
	cpu.e = cpu.rlc(cpu.e)
	return 8
}

// RLC H (CB 0x04)
func cb0x04(cpu *CPU) int {
	cpu.h = cpu.rlc(cpu.h)
	return 8
}

// RLC L (CB 0x05)
func cb0x05(cpu *CPU) int {
	cpu.l = cpu.rlc(cpu.l)
	return 8
}

// RLC (HL) (CB 0x06)
func cb0x06(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, cpu.rlc(cpu.memory.Read(target)))
	return 16
}

// RLC A (CB 0x07)
func cb0x07(cpu *CPU) int {
	cpu.a = cpu.rlc(cpu.a)
	return 8
}

// RRC B (CB 0x08)
func cb0x08(cpu *CPU) int {
	cpu.b = cpu.rrc(cpu.b)
	return 8
}

// RRC C (CB 0x09)
func cb0x09(cpu *CPU) int {
	cpu.c = cpu.rrc(cpu.c)
	return 8
}

// RRC D (CB 0x0A)
func cb0x0A(cpu *CPU) int {
	cpu.d = cpu.rrc(cpu.d)
	return 8
}

// RRC E (CB 0x0B)
func cb0x0B(cpu *CPU) int {
	cpu.e = cpu.rrc(cpu.e)
	return 8
}

// RRC H (CB 0x0C)
func cb0x0C(cpu *CPU) int {
	cpu.h = cpu.rrc(cpu.h)
	return 8
}

// RRC L (CB 0x0D)
func cb0x0D(cpu *CPU) int {
	cpu.l = cpu.rrc(cpu.l)
	return 8
}

// RRC (HL) (CB 0x0E)
func cb0x0E(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, cpu.rrc(cpu.memory.Read(target)))
	return 16
}

// RRC A (CB 0x0F)
func cb0x0F(cpu *CPU) int {
	cpu.a = cpu.rrc(cpu.a)
	return 8
}

// RL B (CB 0x10)
func cb0x10(cpu *CPU) int {
	cpu.b = cpu.rl(cpu.b)
	return 8
}

// RL C (CB 0x11)
func cb0x11(cpu *CPU) int {
	cpu.c = cpu.rl(cpu.c)
	return 8
}

// RL D (CB 0x12)
func cb0x12(cpu *CPU) int {
	cpu.d = cpu.rl(cpu.d)
	return 8
}

// RL E (CB 0x13)
func cb0x13(cpu *CPU) int {
	cpu.e = cpu.rl(cpu.e)
	return 8
}

// RL H (CB 0x14)
func cb0x14(cpu *CPU) int {
	cpu.h = cpu.rl(cpu.h)
	return 8
}

// RL L (CB 0x15)
func cb0x15(cpu *CPU) int {
	cpu.l = cpu.rl(cpu.l)
	return 8
}

// RL (HL) (CB 0x16)
func cb0x16(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, cpu.rl(cpu.memory.Read(target)))
	return 16
}

// RL A (CB 0x17)
func cb0x17(cpu *CPU) int {
	cpu.a = cpu.rl(cpu.a)
	return 8
}

// RR B (CB 0x18)
func cb0x18(cpu *CPU) int {
	cpu.b = cpu.rr(cpu.b)
	return 8
}

// RR C (CB 0x19)
func cb0x19(cpu *CPU) int {
	cpu.c = cpu.rr(cpu.c)
	return 8
}

// RR D (CB 0x1A)
func cb0x1A(cpu *CPU) int {
	cpu.d = cpu.rr(cpu.d)
	return 8
}

// RR E (CB 0x1B)
func cb0x1B(cpu *CPU) int {
	cpu.e = cpu.rr(cpu.e)
	return 8
}

// RR H (CB 0x1C)
func cb0x1C(cpu *CPU) int {
	cpu.h = cpu.rr(cpu.h)
	return 8
}

// RR L (CB 0x1D)
func cb0x1D(cpu *CPU) int {
	cpu.l = cpu.rr(cpu.l)
	return 8
}

// RR (HL) (CB 0x1E)
func cb0x1E(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, cpu.rr(cpu.memory.Read(target)))
	return 16
}

// RR A (CB 0x1F)
func cb0x1F(cpu *CPU) int {
	cpu.a = cpu.rr(cpu.a)
	return 8
}

// SLA B (CB 0x20)
func cb0x20(cpu *CPU) int {
	cpu.b = cpu.sla(cpu.b)
	return 8
}

// SLA C (CB 0x21)
func cb0x21(cpu *CPU) int {
	cpu.c = cpu.sla(cpu.c)
	return 8
}

// SLA D (CB 0x22)
func cb0x22(cpu *CPU) int {
	cpu.d = cpu.sla(cpu.d)
	return 8
}

// SLA E (CB 0x23)
func cb0x23(cpu *CPU) int {
	cpu.e = cpu.sla(cpu.e)
	return 8
}

// SLA H (CB 0x24)
func cb0x24(cpu *CPU) int {
	cpu.h = cpu.sla(cpu.h)
	return 8
}

// SLA L (CB 0x25)
func cb0x25(cpu *CPU) int {
	cpu.l = cpu.sla(cpu.l)
	return 8
}

// SLA (HL) (CB 0x26)
func cb0x26(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, cpu.sla(cpu.memory.Read(target)))
	return 16
}

// SLA A (CB 0x27)
func cb0x27(cpu *CPU) int {
	cpu.a = cpu.sla(cpu.a)
	return 8
}

// SRA B (CB 0x28)
func cb0x28(cpu *CPU) int {
	cpu.b = cpu.sra(cpu.b)
	return 8
}

// SRA C (CB 0x29)
func cb0x29(cpu *CPU) int {
	cpu.c = cpu.sra(cpu.c)
	return 8
}

// SRA D (CB 0x2A)
func cb0x2A(cpu *CPU) int {
	cpu.d = cpu.sra(cpu.d)
	return 8
}

// SRA E (CB 0x2B)
func cb0x2B(cpu *CPU) int {
	cpu.e = cpu.sra(cpu.e)
	return 8
}

// SRA H (CB 0x2C)
func cb0x2C(cpu *CPU) int {
	cpu.h = cpu.sra(cpu.h)
	return 8
}

// SRA L (CB 0x2D)
func cb0x2D(cpu *CPU) int {
	cpu.l = cpu.sra(cpu.l)
	return 8
}

// SRA (HL) (CB 0x2E)
func cb0x2E(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, cpu.sra(cpu.memory.Read(target)))
	return 16
}

// SRA A (CB 0x2F)
func cb0x2F(cpu *CPU) int {
	cpu.a = cpu.sra(cpu.a)
	return 8
}

// SWAP B (CB 0x30)
func cb0x30(cpu *CPU) int {
	cpu.b = cpu.swap(cpu.b)
	return 8
}

// SWAP C (CB 0x31)
func cb0x31(cpu *CPU) int {
	cpu.c = cpu.swap(cpu.c)
	return 8
}

// SWAP D (CB 0x32)
func cb0x32(cpu *CPU) int {
	cpu.d = cpu.swap(cpu.d)
	return 8
}

// SWAP E (CB 0x33)
func cb0x33(cpu *CPU) int {
	cpu.e = cpu.swap(cpu.e)
	return 8
}

// SWAP H (CB 0x34)
func cb0x34(cpu *CPU) int {
	cpu.h = cpu.swap(cpu.h)
	return 8
}

// SWAP L (CB 0x35)
func cb0x35(cpu *CPU) int {
	cpu.l = cpu.swap(cpu.l)
	return 8
}

// SWAP (HL) (CB 0x36)
func cb0x36(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, cpu.swap(cpu.memory.Read(target)))
	return 16
}

// SWAP A (CB 0x37)
func cb0x37(cpu *CPU) int {
	cpu.a = cpu.swap(cpu.a)
	return 8
}

// SRL B (CB 0x38)
func cb0x38(cpu *CPU) int {
	cpu.b = cpu.srl(cpu.b)
	return 8
}

// SRL C (CB 0x39)
func cb0x39(cpu *CPU) int {
	cpu.c = cpu.srl(cpu.c)
	return 8
}

// SRL D (CB 0x3A)
func cb0x3A(cpu *CPU) int {
	cpu.d = cpu.srl(cpu.d)
	return 8
}

// SRL E (CB 0x3B)
func cb0x3B(cpu *CPU) int {
	cpu.e = cpu.srl(cpu.e)
	return 8
}

// SRL H (CB 0x3C)
func cb0x3C(cpu *CPU) int {
	cpu.h = cpu.srl(cpu.h)
	return 8
}

// SRL L (CB 0x3D)
func cb0x3D(cpu *CPU) int {
	cpu.l = cpu.srl(cpu.l)
	return 8
}

// SRL (HL) (CB 0x3E)
func cb0x3E(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, cpu.srl(cpu.memory.Read(target)))
	return 16
}

// SRL A (CB 0x3F)
func cb0x3F(cpu *CPU) int {
	cpu.a = cpu.srl(cpu.a)
	return 8
}

// BIT 0, B (CB 0x40)
func cb0x40(cpu *CPU) int {
	cpu.testBit(0, cpu.b)
	return 8
}

// BIT 0, C (CB 0x41)
func cb0x41(cpu *CPU) int {
	cpu.testBit(0, cpu.c)
	return 8
}

// BIT 0, D (CB 0x42)
func cb0x42(cpu *CPU) int {
	cpu.testBit(0, cpu.d)
	return 8
}

// BIT 0, E (CB 0x43)
func cb0x43(cpu *CPU) int {
	cpu.testBit(0, cpu.e)
	return 8
}

// BIT 0, H (CB 0x44)
func cb0x44(cpu *CPU) int {
	cpu.testBit(0, cpu.h)
	return 8
}

// BIT 0, L (CB 0x45)
func cb0x45(cpu *CPU) int {
	cpu.testBit(0, cpu.l)
	return 8
}

// BIT 0, (HL) (CB 0x46)
func cb0x46(cpu *CPU) int {
	cpu.testBit(0, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 0, A (CB 0x47)
func cb0x47(cpu *CPU) int {
	cpu.testBit(0, cpu.a)
	return 8
}

// BIT 1, B (CB 0x48)
func cb0x48(cpu *CPU) int {
	cpu.testBit(1, cpu.b)
	return 8
}

// BIT 1, C (CB 0x49)
func cb0x49(cpu *CPU) int {
	cpu.testBit(1, cpu.c)
	return 8
}

// BIT 1, D (CB 0x4A)
func cb0x4A(cpu *CPU) int {
	cpu.testBit(1, cpu.d)
	return 8
}

// BIT 1, E (CB 0x4B)
func cb0x4B(cpu *CPU) int {
	cpu.testBit(1, cpu.e)
	return 8
}

// BIT 1, H (CB 0x4C)
func cb0x4C(cpu *CPU) int {
	cpu.testBit(1, cpu.h)
	return 8
}

// BIT 1, L (CB 0x4D)
func cb0x4D(cpu *CPU) int {
	cpu.testBit(1, cpu.l)
	return 8
}

// BIT 1, (HL) (CB 0x4E)
func cb0x4E(cpu *CPU) int {
	cpu.testBit(1, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 1, A (CB 0x4F)
func cb0x4F(cpu *CPU) int {
	cpu.testBit(1, cpu.a)
	return 8
}

// BIT 2, B (CB 0x50)
func cb0x50(cpu *CPU) int {
	cpu.testBit(2, cpu.b)
	return 8
}

// BIT 2, C (CB 0x51)
func cb0x51(cpu *CPU) int {
	cpu.testBit(2, cpu.c)
	return 8
}

// BIT 2, D (CB 0x52)
func cb0x52(cpu *CPU) int {
	cpu.testBit(2, cpu.d)
	return 8
}

// BIT 2, E (CB 0x53)
func cb0x53(cpu *CPU) int {
	cpu.testBit(2, cpu.e)
	return 8
}

// BIT 2, H (CB 0x54)
func cb0x54(cpu *CPU) int {
	cpu.testBit(2, cpu.h)
	return 8
}

// BIT 2, L (CB 0x55)
func cb0x55(cpu *CPU) int {
	cpu.testBit(2, cpu.l)
	return 8
}

// BIT 2, (HL) (CB 0x56)
func cb0x56(cpu *CPU) int {
	cpu.testBit(2, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 2, A (CB 0x57)
func cb0x57(cpu *CPU) int {
	cpu.testBit(2, cpu.a)
	return 8
}

// BIT 3, B (CB 0x58)
func cb0x58(cpu *CPU) int {
	cpu.testBit(3, cpu.b)
	return 8
}

// BIT 3, C (CB 0x59)
func cb0x59(cpu *CPU) int {
	cpu.testBit(3, cpu.c)
	return 8
}

// BIT 3, D (CB 0x5A)
func cb0x5A(cpu *CPU) int {
	cpu.testBit(3, cpu.d)
	return 8
}

// BIT 3, E (CB 0x5B)
func cb0x5B(cpu *CPU) int {
	cpu.testBit(3, cpu.e)
	return 8
}

// BIT 3, H (CB 0x5C)
func cb0x5C(cpu *CPU) int {
	cpu.testBit(3, cpu.h)
	return 8
}

// BIT 3, L (CB 0x5D)
func cb0x5D(cpu *CPU) int {
	cpu.testBit(3, cpu.l)
	return 8
}

// BIT 3, (HL) (CB 0x5E)
func cb0x5E(cpu *CPU) int {
	cpu.testBit(3, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 3, A (CB 0x5F)
func cb0x5F(cpu *CPU) int {
	cpu.testBit(3, cpu.a)
	return 8
}

// BIT 4, B (CB 0x60)
func cb0x60(cpu *CPU) int {
	cpu.testBit(4, cpu.b)
	return 8
}

// BIT 4, C (CB 0x61)
func cb0x61(cpu *CPU) int {
	cpu.testBit(4, cpu.c)
	return 8
}

// BIT 4, D (CB 0x62)
func cb0x62(cpu *CPU) int {
	cpu.testBit(4, cpu.d)
	return 8
}

// BIT 4, E (CB 0x63)
func cb0x63(cpu *CPU) int {
	cpu.testBit(4, cpu.e)
	return 8
}

// BIT 4, H (CB 0x64)
func cb0x64(cpu *CPU) int {
	cpu.testBit(4, cpu.h)
	return 8
}

// BIT 4, L (CB 0x65)
func cb0x65(cpu *CPU) int {
	cpu.testBit(4, cpu.l)
	return 8
}

// BIT 4, (HL) (CB 0x66)
func cb0x66(cpu *CPU) int {
	cpu.testBit(4, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 4, A (CB 0x67)
func cb0x67(cpu *CPU) int {
	cpu.testBit(4, cpu.a)
	return 8
}

// BIT 5, B (CB 0x68)
func cb0x68(cpu *CPU) int {
	cpu.testBit(5, cpu.b)
	return 8
}

// BIT 5, C (CB 0x69)
func cb0x69(cpu *CPU) int {
	cpu.testBit(5, cpu.c)
	return 8
}

// BIT 5, D (CB 0x6A)
func cb0x6A(cpu *CPU) int {
	cpu.testBit(5, cpu.d)
	return 8
}

// BIT 5, E (CB 0x6B)
func cb0x6B(cpu *CPU) int {
	cpu.testBit(5, cpu.e)
	return 8
}

// BIT 5, H (CB 0x6C)
func cb0x6C(cpu *CPU) int {
	cpu.testBit(5, cpu.h)
	return 8
}

// BIT 5, L (CB 0x6D)
func cb0x6D(cpu *CPU) int {
	cpu.testBit(5, cpu.l)
	return 8
}

// BIT 5, (HL) (CB 0x6E)
func cb0x6E(cpu *CPU) int {
	cpu.testBit(5, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 5, A (CB 0x6F)
func cb0x6F(cpu *CPU) int {
	cpu.testBit(5, cpu.a)
	return 8
}

// BIT 6, B (CB 0x70)
func cb0x70(cpu *CPU) int {
	cpu.testBit(6, cpu.b)
	return 8
}

// BIT 6, C (CB 0x71)
func cb0x71(cpu *CPU) int {
	cpu.testBit(6, cpu.c)
	return 8
}

// BIT 6, D (CB 0x72)
func cb0x72(cpu *CPU) int {
	cpu.testBit(6, cpu.d)
	return 8
}

// BIT 6, E (CB 0x73)
func cb0x73(cpu *CPU) int {
	cpu.testBit(6, cpu.e)
	return 8
}

// BIT 6, H (CB 0x74)
func cb0x74(cpu *CPU) int {
	cpu.testBit(6, cpu.h)
	return 8
}

// BIT 6, L (CB 0x75)
func cb0x75(cpu *CPU) int {
	cpu.testBit(6, cpu.l)
	return 8
}

// BIT 6, (HL) (CB 0x76)
func cb0x76(cpu *CPU) int {
	cpu.testBit(6, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 6, A (CB 0x77)
func cb0x77(cpu *CPU) int {
	cpu.testBit(6, cpu.a)
	return 8
}

// BIT 7, B (CB 0x78)
func cb0x78(cpu *CPU) int {
	cpu.testBit(7, cpu.b)
	return 8
}

// BIT 7, C (CB 0x79)
func cb0x79(cpu *CPU) int {
	cpu.testBit(7, cpu.c)
	return 8
}

// BIT 7, D (CB 0x7A)
func cb0x7A(cpu *CPU) int {
	cpu.testBit(7, cpu.d)
	return 8
}

// BIT 7, E (CB 0x7B)
func cb0x7B(cpu *CPU) int {
	cpu.testBit(7, cpu.e)
	return 8
}

// BIT 7, H (CB 0x7C)
func cb0x7C(cpu *CPU) int {
	cpu.testBit(7, cpu.h)
	return 8
}

// BIT 7, L (CB 0x7D)
func cb0x7D(cpu *CPU) int {
	cpu.testBit(7, cpu.l)
	return 8
}

// BIT 7, (HL) (CB 0x7E)
func cb0x7E(cpu *CPU) int {
	cpu.testBit(7, cpu.memory.Read(cpu.getHL()))
	return 12
}

// BIT 7, A (CB 0x7F)
func cb0x7F(cpu *CPU) int {
	cpu.testBit(7, cpu.a)
	return 8
}

// RES 0, B (CB 0x80)
func cb0x80(cpu *CPU) int {
	cpu.b = bit.Reset(0, cpu.b)
	return 8
}

// RES 0, C (CB 0x81)
func cb0x81(cpu *CPU) int {
	cpu.c = bit.Reset(0, cpu.c)
	return 8
}

// RES 0, D (CB 0x82)
func cb0x82(cpu *CPU) int {
	cpu.d = bit.Reset(0, cpu.d)
	return 8
}

// RES 0, E (CB 0x83)
func cb0x83(cpu *CPU) int {
	cpu.e = bit.Reset(0, cpu.e)
	return 8
}

// RES 0, H (CB 0x84)
func cb0x84(cpu *CPU) int {
	cpu.h = bit.Reset(0, cpu.h)
	return 8
}

// RES 0, L (CB 0x85)
func cb0x85(cpu *CPU) int {
	cpu.l = bit.Reset(0, cpu.l)
	return 8
}

// RES 0, (HL) (CB 0x86)
func cb0x86(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Reset(0, cpu.memory.Read(target)))
	return 16
}

// RES 0, A (CB 0x87)
func cb0x87(cpu *CPU) int {
	cpu.a = bit.Reset(0, cpu.a)
	return 8
}

// RES 1, B (CB 0x88)
func cb0x88(cpu *CPU) int {
	cpu.b = bit.Reset(1, cpu.b)
	return 8
}

// RES 1, C (CB 0x89)
func cb0x89(cpu *CPU) int {
	cpu.c = bit.Reset(1, cpu.c)
	return 8
}

// RES 1, D (CB 0x8A)
func cb0x8A(cpu *CPU) int {
	cpu.d = bit.Reset(1, cpu.d)
	return 8
}

// RES 1, E (CB 0x8B)
func cb0x8B(cpu *CPU) int {
	cpu.e = bit.Reset(1, cpu.e)
	return 8
}

// RES 1, H (CB 0x8C)
func cb0x8C(cpu *CPU) int {
	cpu.h = bit.Reset(1, cpu.h)
	return 8
}

// RES 1, L (CB 0x8D)
func cb0x8D(cpu *CPU) int {
	cpu.l = bit.Reset(1, cpu.l)
	return 8
}

// RES 1, (HL) (CB 0x8E)
func cb0x8E(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Reset(1, cpu.memory.Read(target)))
	return 16
}

// RES 1, A (CB 0x8F)
func cb0x8F(cpu *CPU) int {
	cpu.a = bit.Reset(1, cpu.a)
	return 8
}

// RES 2, B (CB 0x90)
func cb0x90(cpu *CPU) int {
	cpu.b = bit.Reset(2, cpu.b)
	return 8
}

// RES 2, C (CB 0x91)
func cb0x91(cpu *CPU) int {
	cpu.c = bit.Reset(2, cpu.c)
	return 8
}

// RES 2, D (CB 0x92)
func cb0x92(cpu *CPU) int {
	cpu.d = bit.Reset(2, cpu.d)
	return 8
}

// RES 2, E (CB 0x93)
func cb0x93(cpu *CPU) int {
	cpu.e = bit.Reset(2, cpu.e)
	return 8
}

// RES 2, H (CB 0x94)
func cb0x94(cpu *CPU) int {
	cpu.h = bit.Reset(2, cpu.h)
	return 8
}

// RES 2, L (CB 0x95)
func cb0x95(cpu *CPU) int {
	cpu.l = bit.Reset(2, cpu.l)
	return 8
}

// RES 2, (HL) (CB 0x96)
func cb0x96(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Reset(2, cpu.memory.Read(target)))
	return 16
}

// RES 2, A (CB 0x97)
func cb0x97(cpu *CPU) int {
	cpu.a = bit.Reset(2, cpu.a)
	return 8
}

// RES 3, B (CB 0x98)
func cb0x98(cpu *CPU) int {
	cpu.b = bit.Reset(3, cpu.b)
	return 8
}

// RES 3, C (CB 0x99)
func cb0x99(cpu *CPU) int {
	cpu.c = bit.Reset(3, cpu.c)
	return 8
}

// RES 3, D (CB 0x9A)
func cb0x9A(cpu *CPU) int {
	cpu.d = bit.Reset(3, cpu.d)
	return 8
}

// RES 3, E (CB 0x9B)
func cb0x9B(cpu *CPU) int {
	cpu.e = bit.Reset(3, cpu.e)
	return 8
}

// RES 3, H (CB 0x9C)
func cb0x9C(cpu *CPU) int {
	cpu.h = bit.Reset(3, cpu.h)
	return 8
}

// RES 3, L (CB 0x9D)
func cb0x9D(cpu *CPU) int {
	cpu.l = bit.Reset(3, cpu.l)
	return 8
}

// RES 3, (HL) (CB 0x9E)
func cb0x9E(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Reset(3, cpu.memory.Read(target)))
	return 16
}

// RES 3, A (CB 0x9F)
func cb0x9F(cpu *CPU) int {
	cpu.a = bit.Reset(3, cpu.a)
	return 8
}

// RES 4, B (CB 0xA0)
func cb0xA0(cpu *CPU) int {
	cpu.b = bit.Reset(4, cpu.b)
	return 8
}

// RES 4, C (CB 0xA1)
func cb0xA1(cpu *CPU) int {
	cpu.c = bit.Reset(4, cpu.c)
	return 8
}

// RES 4, D (CB 0xA2)
func cb0xA2(cpu *CPU) int {
	cpu.d = bit.Reset(4, cpu.d)
	return 8
}

// RES 4, E (CB 0xA3)
func cb0xA3(cpu *CPU) int {
	cpu.e = bit.Reset(4, cpu.e)
	return 8
}

// RES 4, H (CB 0xA4)
func cb0xA4(cpu *CPU) int {
	cpu.h = bit.Reset(4, cpu.h)
	return 8
}

// RES 4, L (CB 0xA5)
func cb0xA5(cpu *CPU) int {
	cpu.l = bit.Reset(4, cpu.l)
	return 8
}

// RES 4, (HL) (CB 0xA6)
func cb0xA6(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Reset(4, cpu.memory.Read(target)))
	return 16
}

// RES 4, A (CB 0xA7)
func cb0xA7(cpu *CPU) int {
	cpu.a = bit.Reset(4, cpu.a)
	return 8
}

// RES 5, B (CB 0xA8)
func cb0xA8(cpu *CPU) int {
	cpu.b = bit.Reset(5, cpu.b)
	return 8
}

// RES 5, C (CB 0xA9)
func cb0xA9(cpu *CPU) int {
	cpu.c = bit.Reset(5, cpu.c)
	return 8
}

// RES 5, D (CB 0xAA)
func cb0xAA(cpu *CPU) int {
	cpu.d = bit.Reset(5, cpu.d)
	return 8
}

// RES 5, E (CB 0xAB)
func cb0xAB(cpu *CPU) int {
	cpu.e = bit.Reset(5, cpu.e)
	return 8
}

// RES 5, H (CB 0xAC)
func cb0xAC(cpu *CPU) int {
	cpu.h = bit.Reset(5, cpu.h)
	return 8
}

// RES 5, L (CB 0xAD)
func cb0xAD(cpu *CPU) int {
	cpu.l = bit.Reset(5, cpu.l)
	return 8
}

// RES 5, (HL) (CB 0xAE)
func cb0xAE(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Reset(5, cpu.memory.Read(target)))
	return 16
}

// RES 5, A (CB 0xAF)
func cb0xAF(cpu *CPU) int {
	cpu.a = bit.Reset(5, cpu.a)
	return 8
}

// RES 6, B (CB 0xB0)
func cb0xB0(cpu *CPU) int {
	cpu.b = bit.Reset(6, cpu.b)
	return 8
}

// RES 6, C (CB 0xB1)
func cb0xB1(cpu *CPU) int {
	cpu.c = bit.Reset(6, cpu.c)
	return 8
}

// RES 6, D (CB 0xB2)
func cb0xB2(cpu *CPU) int {
	cpu.d = bit.Reset(6, cpu.d)
	return 8
}

// RES 6, E (CB 0xB3)
func cb0xB3(cpu *CPU) int {
	cpu.e = bit.Reset(6, cpu.e)
	return 8
}

// RES 6, H (CB 0xB4)
func cb0xB4(cpu *CPU) int {
	cpu.h = bit.Reset(6, cpu.h)
	return 8
}

// RES 6, L (CB 0xB5)
func cb0xB5(cpu *CPU) int {
	cpu.l = bit.Reset(6, cpu.l)
	return 8
}

// RES 6, (HL) (CB 0xB6)
func cb0xB6(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Reset(6, cpu.memory.Read(target)))
	return 16
}

// RES 6, A (CB 0xB7)
func cb0xB7(cpu *CPU) int {
	cpu.a = bit.Reset(6, cpu.a)
	return 8
}

// RES 7, B (CB 0xB8)
func cb0xB8(cpu *CPU) int {
	cpu.b = bit.Reset(7, cpu.b)
	return 8
}

// RES 7, C (CB 0xB9)
func cb0xB9(cpu *CPU) int {
	cpu.c = bit.Reset(7, cpu.c)
	return 8
}

// RES 7, D (CB 0xBA)
func cb0xBA(cpu *CPU) int {
	cpu.d = bit.Reset(7, cpu.d)
	return 8
}

// RES 7, E (CB 0xBB)
func cb0xBB(cpu *CPU) int {
	cpu.e = bit.Reset(7, cpu.e)
	return 8
}

// RES 7, H (CB 0xBC)
func cb0xBC(cpu *CPU) int {
	cpu.h = bit.Reset(7, cpu.h)
	return 8
}

// RES 7, L (CB 0xBD)
func cb0xBD(cpu *CPU) int {
	cpu.l = bit.Reset(7, cpu.l)
	return 8
}

// RES 7, (HL) (CB 0xBE)
func cb0xBE(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Reset(7, cpu.memory.Read(target)))
	return 16
}

// RES 7, A (CB 0xBF)
func cb0xBF(cpu *CPU) int {
	cpu.a = bit.Reset(7, cpu.a)
	return 8
}

// SET 0, B (CB 0xC0)
func cb0xC0(cpu *CPU) int {
	cpu.b = bit.Set(0, cpu.b)
	return 8
}

// SET 0, C (CB 0xC1)
func cb0xC1(cpu *CPU) int {
	cpu.c = bit.Set(0, cpu.c)
	return 8
}

// SET 0, D (CB 0xC2)
func cb0xC2(cpu *CPU) int {
	cpu.d = bit.Set(0, cpu.d)
	return 8
}

// SET 0, E (CB 0xC3)
func cb0xC3(cpu *CPU) int {
	cpu.e = bit.Set(0, cpu.e)
	return 8
}

// SET 0, H (CB 0xC4)
func cb0xC4(cpu *CPU) int {
	cpu.h = bit.Set(0, cpu.h)
	return 8
}

// SET 0, L (CB 0xC5)
func cb0xC5(cpu *CPU) int {
	cpu.l = bit.Set(0, cpu.l)
	return 8
}

// SET 0, (HL) (CB 0xC6)
func cb0xC6(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Set(0, cpu.memory.Read(target)))
	return 16
}

// SET 0, A (CB 0xC7)
func cb0xC7(cpu *CPU) int {
	cpu.a = bit.Set(0, cpu.a)
	return 8
}

// SET 1, B (CB 0xC8)
func cb0xC8(cpu *CPU) int {
	cpu.b = bit.Set(1, cpu.b)
	return 8
}

// SET 1, C (CB 0xC9)
func cb0xC9(cpu *CPU) int {
	cpu.c = bit.Set(1, cpu.c)
	return 8
}

// SET 1, D (CB 0xCA)
func cb0xCA(cpu *CPU) int {
	cpu.d = bit.Set(1, cpu.d)
	return 8
}

// SET 1, E (CB 0xCB)
func cb0xCB(cpu *CPU) int {
	cpu.e = bit.Set(1, cpu.e)
	return 8
}

// SET 1, H (CB 0xCC)
func cb0xCC(cpu *CPU) int {
	cpu.h = bit.Set(1, cpu.h)
	return 8
}

// SET 1, L (CB 0xCD)
func cb0xCD(cpu *CPU) int {
	cpu.l = bit.Set(1, cpu.l)
	return 8
}

// SET 1, (HL) (CB 0xCE)
func cb0xCE(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Set(1, cpu.memory.Read(target)))
	return 16
}

// SET 1, A (CB 0xCF)
func cb0xCF(cpu *CPU) int {
	cpu.a = bit.Set(1, cpu.a)
	return 8
}

// SET 2, B (CB 0xD0)
func cb0xD0(cpu *CPU) int {
	cpu.b = bit.Set(2, cpu.b)
	return 8
}

// SET 2, C (CB 0xD1)
func cb0xD1(cpu *CPU) int {
	cpu.c = bit.Set(2, cpu.c)
	return 8
}

// SET 2, D (CB 0xD2)
func cb0xD2(cpu *CPU) int {
	cpu.d = bit.Set(2, cpu.d)
	return 8
}

// SET 2, E (CB 0xD3)
func cb0xD3(cpu *CPU) int {
	cpu.e = bit.Set(2, cpu.e)
	return 8
}

// SET 2, H (CB 0xD4)
func cb0xD4(cpu *CPU) int {
	cpu.h = bit.Set(2, cpu.h)
	return 8
}

// SET 2, L (CB 0xD5)
func cb0xD5(cpu *CPU) int {
	cpu.l = bit.Set(2, cpu.l)
	return 8
}

// SET 2, (HL) (CB 0xD6)
func cb0xD6(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Set(2, cpu.memory.Read(target)))
	return 16
}

// SET 2, A (CB 0xD7)
func cb0xD7(cpu *CPU) int {
	cpu.a = bit.Set(2, cpu.a)
	return 8
}

// SET 3, B (CB 0xD8)
func cb0xD8(cpu *CPU) int {
	cpu.b = bit.Set(3, cpu.b)
	return 8
}

// SET 3, C (CB 0xD9)
func cb0xD9(cpu *CPU) int {
	cpu.c = bit.Set(3, cpu.c)
	return 8
}

// SET 3, D (CB 0xDA)
func cb0xDA(cpu *CPU) int {
	cpu.d = bit.Set(3, cpu.d)
	return 8
}

// SET 3, E (CB 0xDB)
func cb0xDB(cpu *CPU) int {
	cpu.e = bit.Set(3, cpu.e)
	return 8
}

// SET 3, H (CB 0xDC)
func cb0xDC(cpu *CPU) int {
	cpu.h = bit.Set(3, cpu.h)
	return 8
}

// SET 3, L (CB 0xDD)
func cb0xDD(cpu *CPU) int {
	cpu.l = bit.Set(3, cpu.l)
	return 8
}

// SET 3, (HL) (CB 0xDE)
func cb0xDE(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Set(3, cpu.memory.Read(target)))
	return 16
}

// SET 3, A (CB 0xDF)
func cb0xDF(cpu *CPU) int {
	cpu.a = bit.Set(3, cpu.a)
	return 8
}

// SET 4, B (CB 0xE0)
func cb0xE0(cpu *CPU) int {
	cpu.b = bit.Set(4, cpu.b)
	return 8
}

// SET 4, C (CB 0xE1)
func cb0xE1(cpu *CPU) int {
	cpu.c = bit.Set(4, cpu.c)
	return 8
}

// SET 4, D (CB 0xE2)
func cb0xE2(cpu *CPU) int {
	cpu.d = bit.Set(4, cpu.d)
	return 8
}

// SET 4, E (CB 0xE3)
func cb0xE3(cpu *CPU) int {
	cpu.e = bit.Set(4, cpu.e)
	return 8
}

// SET 4, H (CB 0xE4)
func cb0xE4(cpu *CPU) int {
	cpu.h = bit.Set(4, cpu.h)
	return 8
}

// SET 4, L (CB 0xE5)
func cb0xE5(cpu *CPU) int {
	cpu.l = bit.Set(4, cpu.l)
	return 8
}

// SET 4, (HL) (CB 0xE6)
func cb0xE6(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Set(4, cpu.memory.Read(target)))
	return 16
}

// SET 4, A (CB 0xE7)
func cb0xE7(cpu *CPU) int {
	cpu.a = bit.Set(4, cpu.a)
	return 8
}

// SET 5, B (CB 0xE8)
func cb0xE8(cpu *CPU) int {
	cpu.b = bit.Set(5, cpu.b)
	return 8
}

// SET 5, C (CB 0xE9)
func cb0xE9(cpu *CPU) int {
	cpu.c = bit.Set(5, cpu.c)
	return 8
}

// SET 5, D (CB 0xEA)
func cb0xEA(cpu *CPU) int {
	cpu.d = bit.Set(5, cpu.d)
	return 8
}

// SET 5, E (CB 0xEB)
func cb0xEB(cpu *CPU) int {
	cpu.e = bit.Set(5, cpu.e)
	return 8
}

// SET 5, H (CB 0xEC)
func cb0xEC(cpu *CPU) int {
	cpu.h = bit.Set(5, cpu.h)
	return 8
}

// SET 5, L (CB 0xED)
func cb0xED(cpu *CPU) int {
	cpu.l = bit.Set(5, cpu.l)
	return 8
}

// SET 5, (HL) (CB 0xEE)
func cb0xEE(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Set(5, cpu.memory.Read(target)))
	return 16
}

// SET 5, A (CB 0xEF)
func cb0xEF(cpu *CPU) int {
	cpu.a = bit.Set(5, cpu.a)
	return 8
}

// SET 6, B (CB 0xF0)
func cb0xF0(cpu *CPU) int {
	cpu.b = bit.Set(6, cpu.b)
	return 8
}

// SET 6, C (CB 0xF1)
func cb0xF1(cpu *CPU) int {
	cpu.c = bit.Set(6, cpu.c)
	return 8
}

// SET 6, D (CB 0xF2)
func cb0xF2(cpu *CPU) int {
	cpu.d = bit.Set(6, cpu.d)
	return 8
}

// SET 6, E (CB 0xF3)
func cb0xF3(cpu *CPU) int {
	cpu.e = bit.Set(6, cpu.e)
	return 8
}

// SET 6, H (CB 0xF4)
func cb0xF4(cpu *CPU) int {
	cpu.h = bit.Set(6, cpu.h)
	return 8
}

// SET 6, L (CB 0xF5)
func cb0xF5(cpu *CPU) int {
	cpu.l = bit.Set(6, cpu.l)
	return 8
}

// SET 6, (HL) (CB 0xF6)
func cb0xF6(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Set(6, cpu.memory.Read(target)))
	return 16
}

// SET 6, A (CB 0xF7)
func cb0xF7(cpu *CPU) int {
	cpu.a = bit.Set(6, cpu.a)
	return 8
}

// SET 7, B (CB 0xF8)
func cb0xF8(cpu *CPU) int {
	cpu.b = bit.Set(7, cpu.b)
	return 8
}

// SET 7, C (CB 0xF9)
func cb0xF9(cpu *CPU) int {
	cpu.c = bit.Set(7, cpu.c)
	return 8
}

// SET 7, D (CB 0xFA)
func cb0xFA(cpu *CPU) int {
	cpu.d = bit.Set(7, cpu.d)
	return 8
}

// SET 7, E (CB 0xFB)
func cb0xFB(cpu *CPU) int {
	cpu.e = bit.Set(7, cpu.e)
	return 8
}

// SET 7, H (CB 0xFC)
func cb0xFC(cpu *CPU) int {
	cpu.h = bit.Set(7, cpu.h)
	return 8
}

// SET 7, L (CB 0xFD)
func cb0xFD(cpu *CPU) int {
	cpu.l = bit.Set(7, cpu.l)
	return 8
}

// SET 7, (HL) (CB 0xFE)
func cb0xFE(cpu *CPU) int {
	target := cpu.getHL()
	cpu.memory.Write(target, bit.Set(7, cpu.memory.Read(target)))
	return 16
}

// SET 7, A (CB 0xFF)
func cb0xFF(cpu *CPU) int {
	cpu.a = bit.Set(7, cpu.a)
	return 8
}

