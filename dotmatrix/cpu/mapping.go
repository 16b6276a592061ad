package cpu

// Opcode executes a single decoded instruction and returns its cost
// in T-cycles.
type Opcode func(*CPU) int

var opcodeTable = [256]Opcode{
	0x00: op0x00,
	0x01: op0x01,
	0x02: op0x02,
	0x03: op0x03,
	0x04: op0x04,
	0x05: op0x05,
	0x06: op0x06,
	0x07: op0x07,
	0x08: op0x08,
	0x09: op0x09,
	0x0A: op0x0A,
	0x0B: op0x0B,
	0x0C: op0x0C,
	0x0D: op0x0D,
	0x0E: op0x0E,
	0x0F: op0x0F,
	0x10: op0x10,
	0x11: op0x11,
	0x12: op0x12,
	0x13: op0x13,
	0x14: op0x14,
	0x15: op0x15,
	0x16: op0x16,
	0x17: op0x17,
	0x18: op0x18,
	0x19: op0x19,
	0x1A: op0x1A,
	0x1B: op0x1B,
	0x1C: op0x1C,
	0x1D: op0x1D,
	0x1E: op0x1E,
	0x1F: op0x1F,
	0x20: op0x20,
	0x21: op0x21,
	0x22: op0x22,
	0x23: op0x23,
	0x24: op0x24,
	0x25: op0x25,
	0x26: op0x26,
	0x27: op0x27,
	0x28: op0x28,
	0x29: op0x29,
	0x2A: op0x2A,
	0x2B: op0x2B,
	0x2C: op0x2C,
	0x2D: op0x2D,
	0x2E: op0x2E,
	0x2F: op0x2F,
	0x30: op0x30,
	0x31: op0x31,
	0x32: op0x32,
	0x33: op0x33,
	0x34: op0x34,
	0x35: op0x35,
	0x36: op0x36,
	0x37: op0x37,
	0x38: op0x38,
	0x39: op0x39,
	0x3A: op0x3A,
	0x3B: op0x3B,
	0x3C: op0x3C,
	0x3D: op0x3D,
	0x3E: op0x3E,
	0x3F: op0x3F,
	0x40: op0x40,
	0x41: op0x41,
	0x42: op0x42,
	0x43: op0x43,
	0x44: op0x44,
	0x45: op0x45,
	0x46: op0x46,
	0x47: op0x47,
	0x48: op0x48,
	0x49: op0x49,
	0x4A: op0x4A,
	0x4B: op0x4B,
	0x4C: op0x4C,
	0x4D: op0x4D,
	0x4E: op0x4E,
	0x4F: op0x4F,
	0x50: op0x50,
	0x51: op0x51,
	0x52: op0x52,
	0x53: op0x53,
	0x54: op0x54,
	0x55: op0x55,
	0x56: op0x56,
	0x57: op0x57,
	0x58: op0x58,
	0x59: op0x59,
	0x5A: op0x5A,
	0x5B: op0x5B,
	0x5C: op0x5C,
	0x5D: op0x5D,
	0x5E: op0x5E,
	0x5F: op0x5F,
	0x60: op0x60,
	0x61: op0x61,
	0x62: op0x62,
	0x63: op0x63,
	0x64: op0x64,
	0x65: op0x65,
	0x66: op0x66,
	0x67: op0x67,
	0x68: op0x68,
	0x69: op0x69,
	0x6A: op0x6A,
	0x6B: op0x6B,
	0x6C: op0x6C,
	0x6D: op0x6D,
	0x6E: op0x6E,
	0x6F: op0x6F,
	0x70: op0x70,
	0x71: op0x71,
	0x72: op0x72,
	0x73: op0x73,
	0x74: op0x74,
	0x75: op0x75,
	0x76: op0x76,
	0x77: op0x77,
	0x78: op0x78,
	0x79: op0x79,
	0x7A: op0x7A,
	0x7B: op0x7B,
	0x7C: op0x7C,
	0x7D: op0x7D,
	0x7E: op0x7E,
	0x7F: op0x7F,
	0x80: op0x80,
	0x81: op0x81,
	0x82: op0x82,
	0x83: op0x83,
	0x84: op0x84,
	0x85: op0x85,
	0x86: op0x86,
	0x87: op0x87,
	0x88: op0x88,
	0x89: op0x89,
	0x8A: op0x8A,
	0x8B: op0x8B,
	0x8C: op0x8C,
	0x8D: op0x8D,
	0x8E: op0x8E,
	0x8F: op0x8F,
	0x90: op0x90,
	0x91: op0x91,
	0x92: op0x92,
	0x93: op0x93,
	0x94: op0x94,
	0x95: op0x95,
	0x96: op0x96,
	0x97: op0x97,
	0x98: op0x98,
	0x99: op0x99,
	0x9A: op0x9A,
	0x9B: op0x9B,
	0x9C: op0x9C,
	0x9D: op0x9D,
	0x9E: op0x9E,
	0x9F: op0x9F,
	0xA0: op0xA0,
	0xA1: op0xA1,
	0xA2: op0xA2,
	0xA3: op0xA3,
	0xA4: op0xA4,
	0xA5: op0xA5,
	0xA6: op0xA6,
	0xA7: op0xA7,
	0xA8: op0xA8,
	0xA9: op0xA9,
	0xAA: op0xAA,
	0xAB: op0xAB,
	0xAC: op0xAC,
	0xAD: op0xAD,
	0xAE: op0xAE,
	0xAF: op0xAF,
	0xB0: op0xB0,
	0xB1: op0xB1,
	0xB2: op0xB2,
	0xB3: op0xB3,
	0xB4: op0xB4,
	0xB5: op0xB5,
	0xB6: op0xB6,
	0xB7: op0xB7,
	0xB8: op0xB8,
	0xB9: op0xB9,
	0xBA: op0xBA,
	0xBB: op0xBB,
	0xBC: op0xBC,
	0xBD: op0xBD,
	0xBE: op0xBE,
	0xBF: op0xBF,
	0xC0: op0xC0,
	0xC1: op0xC1,
	0xC2: op0xC2,
	0xC3: op0xC3,
	0xC4: op0xC4,
	0xC5: op0xC5,
	0xC6: op0xC6,
	0xC7: op0xC7,
	0xC8: op0xC8,
	0xC9: op0xC9,
	0xCA: op0xCA,
	0xCB: prefixCB,
	0xCC: op0xCC,
	0xCD: op0xCD,
	0xCE: op0xCE,
	0xCF: op0xCF,
	0xD0: op0xD0,
	0xD1: op0xD1,
	0xD2: op0xD2,
	0xD3: illegalOpcode,
	0xD4: op0xD4,
	0xD5: op0xD5,
	0xD6: op0xD6,
	0xD7: op0xD7,
	0xD8: op0xD8,
	0xD9: op0xD9,
	0xDA: op0xDA,
	0xDB: illegalOpcode,
	0xDC: op0xDC,
	0xDD: illegalOpcode,
	0xDE: op0xDE,
	0xDF: op0xDF,
	0xE0: op0xE0,
	0xE1: op0xE1,
	0xE2: op0xE2,
	0xE3: illegalOpcode,
	0xE4: illegalOpcode,
	0xE5: op0xE5,
	0xE6: op0xE6,
	0xE7: op0xE7,
	0xE8: op0xE8,
	0xE9: op0xE9,
	0xEA: op0xEA,
	0xEB: illegalOpcode,
	0xEC: illegalOpcode,
	0xED: illegalOpcode,
	0xEE: op0xEE,
	0xEF: op0xEF,
	0xF0: op0xF0,
	0xF1: op0xF1,
	0xF2: op0xF2,
	0xF3: op0xF3,
	0xF4: illegalOpcode,
	0xF5: op0xF5,
	0xF6: op0xF6,
	0xF7: op0xF7,
	0xF8: op0xF8,
	0xF9: op0xF9,
	0xFA: op0xFA,
	0xFB: op0xFB,
	0xFC: illegalOpcode,
	0xFD: illegalOpcode,
	0xFE: op0xFE,
	0xFF: op0xFF,
}

var opcodeCBTable = [256]Opcode{
	0x00: cb0x00,
	0x01: cb0x01,
	0x02: cb0x02,
	0x03: cb0x03,
	0x04: cb0x04,
	0x05: cb0x05,
	0x06: cb0x06,
	0x07: cb0x07,
	0x08: cb0x08,
	0x09: cb0x09,
	0x0A: cb0x0A,
	0x0B: cb0x0B,
	0x0C: cb0x0C,
	0x0D: cb0x0D,
	0x0E: cb0x0E,
	0x0F: cb0x0F,
	0x10: cb0x10,
	0x11: cb0x11,
	0x12: cb0x12,
	0x13: cb0x13,
	0x14: cb0x14,
	0x15: cb0x15,
	0x16: cb0x16,
	0x17: cb0x17,
	0x18: cb0x18,
	0x19: cb0x19,
	0x1A: cb0x1A,
	0x1B: cb0x1B,
	0x1C: cb0x1C,
	0x1D: cb0x1D,
	0x1E: cb0x1E,
	0x1F: cb0x1F,
	0x20: cb0x20,
	0x21: cb0x21,
	0x22: cb0x22,
	0x23: cb0x23,
	0x24: cb0x24,
	0x25: cb0x25,
	0x26: cb0x26,
	0x27: cb0x27,
	0x28: cb0x28,
	0x29: cb0x29,
	0x2A: cb0x2A,
	0x2B: cb0x2B,
	0x2C: cb0x2C,
	0x2D: cb0x2D,
	0x2E: cb0x2E,
	0x2F: cb0x2F,
	0x30: cb0x30,
	0x31: cb0x31,
	0x32: cb0x32,
	0x33: cb0x33,
	0x34: cb0x34,
	0x35: cb0x35,
	0x36: cb0x36,
	0x37: cb0x37,
	0x38: cb0x38,
	0x39: cb0x39,
	0x3A: cb0x3A,
	0x3B: cb0x3B,
	0x3C: cb0x3C,
	0x3D: cb0x3D,
	0x3E: cb0x3E,
	0x3F: cb0x3F,
	0x40: cb0x40,
	0x41: cb0x41,
	0x42: cb0x42,
	0x43: cb0x43,
	0x44: cb0x44,
	0x45: cb0x45,
	0x46: cb0x46,
	0x47: cb0x47,
	0x48: cb0x48,
	0x49: cb0x49,
	0x4A: cb0x4A,
	0x4B: cb0x4B,
	0x4C: cb0x4C,
	0x4D: cb0x4D,
	0x4E: cb0x4E,
	0x4F: cb0x4F,
	0x50: cb0x50,
	0x51: cb0x51,
	0x52: cb0x52,
	0x53: cb0x53,
	0x54: cb0x54,
	0x55: cb0x55,
	0x56: cb0x56,
	0x57: cb0x57,
	0x58: cb0x58,
	0x59: cb0x59,
	0x5A: cb0x5A,
	0x5B: cb0x5B,
	0x5C: cb0x5C,
	0x5D: cb0x5D,
	0x5E: cb0x5E,
	0x5F: cb0x5F,
	0x60: cb0x60,
	0x61: cb0x61,
	0x62: cb0x62,
	0x63: cb0x63,
	0x64: cb0x64,
	0x65: cb0x65,
	0x66: cb0x66,
	0x67: cb0x67,
	0x68: cb0x68,
	0x69: cb0x69,
	0x6A: cb0x6A,
	0x6B: cb0x6B,
	0x6C: cb0x6C,
	0x6D: cb0x6D,
	0x6E: cb0x6E,
	0x6F: cb0x6F,
	0x70: cb0x70,
	0x71: cb0x71,
	0x72: cb0x72,
	0x73: cb0x73,
	0x74: cb0x74,
	0x75: cb0x75,
	0x76: cb0x76,
	0x77: cb0x77,
	0x78: cb0x78,
	0x79: cb0x79,
	0x7A: cb0x7A,
	0x7B: cb0x7B,
	0x7C: cb0x7C,
	0x7D: cb0x7D,
	0x7E: cb0x7E,
	0x7F: cb0x7F,
	0x80: cb0x80,
	0x81: cb0x81,
	0x82: cb0x82,
	0x83: cb0x83,
	0x84: cb0x84,
	0x85: cb0x85,
	0x86: cb0x86,
	0x87: cb0x87,
	0x88: cb0x88,
	0x89: cb0x89,
	0x8A: cb0x8A,
	0x8B: cb0x8B,
	0x8C: cb0x8C,
	0x8D: cb0x8D,
	0x8E: cb0x8E,
	0x8F: cb0x8F,
	0x90: cb0x90,
	0x91: cb0x91,
	0x92: cb0x92,
	0x93: cb0x93,
	0x94: cb0x94,
	0x95: cb0x95,
	0x96: cb0x96,
	0x97: cb0x97,
	0x98: cb0x98,
	0x99: cb0x99,
	0x9A: cb0x9A,
	0x9B: cb0x9B,
	0x9C: cb0x9C,
	0x9D: cb0x9D,
	0x9E: cb0x9E,
	0x9F: cb0x9F,
	0xA0: cb0xA0,
	0xA1: cb0xA1,
	0xA2: cb0xA2,
	0xA3: cb0xA3,
	0xA4: cb0xA4,
	0xA5: cb0xA5,
	0xA6: cb0xA6,
	0xA7: cb0xA7,
	0xA8: cb0xA8,
	0xA9: cb0xA9,
	0xAA: cb0xAA,
	0xAB: cb0xAB,
	0xAC: cb0xAC,
	0xAD: cb0xAD,
	0xAE: cb0xAE,
	0xAF: cb0xAF,
	0xB0: cb0xB0,
	0xB1: cb0xB1,
	0xB2: cb0xB2,
	0xB3: cb0xB3,
	0xB4: cb0xB4,
	0xB5: cb0xB5,
	0xB6: cb0xB6,
	0xB7: cb0xB7,
	0xB8: cb0xB8,
	0xB9: cb0xB9,
	0xBA: cb0xBA,
	0xBB: cb0xBB,
	0xBC: cb0xBC,
	0xBD: cb0xBD,
	0xBE: cb0xBE,
	0xBF: cb0xBF,
	0xC0: cb0xC0,
	0xC1: cb0xC1,
	0xC2: cb0xC2,
	0xC3: cb0xC3,
	0xC4: cb0xC4,
	0xC5: cb0xC5,
	0xC6: cb0xC6,
	0xC7: cb0xC7,
	0xC8: cb0xC8,
	0xC9: cb0xC9,
	0xCA: cb0xCA,
	0xCB: cb0xCB,
	0xCC: cb0xCC,
	0xCD: cb0xCD,
	0xCE: cb0xCE,
	0xCF: cb0xCF,
	0xD0: cb0xD0,
	0xD1: cb0xD1,
	0xD2: cb0xD2,
	0xD3: cb0xD3,
	0xD4: cb0xD4,
	0xD5: cb0xD5,
	0xD6: cb0xD6,
	0xD7: cb0xD7,
	0xD8: cb0xD8,
	0xD9: cb0xD9,
	0xDA: cb0xDA,
	0xDB: cb0xDB,
	0xDC: cb0xDC,
	0xDD: cb0xDD,
	0xDE: cb0xDE,
	0xDF: cb0xDF,
	0xE0: cb0xE0,
	0xE1: cb0xE1,
	0xE2: cb0xE2,
	0xE3: cb0xE3,
	0xE4: cb0xE4,
	0xE5: cb0xE5,
	0xE6: cb0xE6,
	0xE7: cb0xE7,
	0xE8: cb0xE8,
	0xE9: cb0xE9,
	0xEA: cb0xEA,
	0xEB: cb0xEB,
	0xEC: cb0xEC,
	0xED: cb0xED,
	0xEE: cb0xEE,
	0xEF: cb0xEF,
	0xF0: cb0xF0,
	0xF1: cb0xF1,
	0xF2: cb0xF2,
	0xF3: cb0xF3,
	0xF4: cb0xF4,
	0xF5: cb0xF5,
	0xF6: cb0xF6,
	0xF7: cb0xF7,
	0xF8: cb0xF8,
	0xF9: cb0xF9,
	0xFA: cb0xFA,
	0xFB: cb0xFB,
	0xFC: cb0xFC,
	0xFD: cb0xFD,
	0xFE: cb0xFE,
	0xFF: cb0xFF,
}
