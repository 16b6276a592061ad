package memory

import (
	"fmt"
	"log/slog"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/addr"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/video"
)

// MMU is the memory bus: a single address decoder dispatching reads and
// writes to the cartridge, work RAM, the GPU's VRAM/OAM and registers,
// the MMIO devices, high RAM and the interrupt registers. Reads are
// pure functions of current state; writes commit per byte.
type MMU struct {
	Cart   *Cartridge
	Timer  *Timer
	Joypad *Joypad
	GPU    *video.GPU

	wram [0x2000]uint8
	hram [127]uint8

	interruptFlags  uint8
	interruptEnable uint8
}

// New wires a bus over the given cartridge and GPU.
func New(cart *Cartridge, gpu *video.GPU) *MMU {
	return &MMU{
		Cart:   cart,
		Timer:  NewTimer(),
		Joypad: NewJoypad(),
		GPU:    gpu,
	}
}

// InterruptFlags returns the IF register (low 5 bits).
func (m *MMU) InterruptFlags() uint8 { return m.interruptFlags }

// InterruptEnable returns the IE register.
func (m *MMU) InterruptEnable() uint8 { return m.interruptEnable }

// RequestInterrupts merges an IF-style bitmask of new requests.
func (m *MMU) RequestInterrupts(mask uint8) {
	m.interruptFlags |= mask & 0x1F
}

// RequestInterrupt raises a single interrupt request.
func (m *MMU) RequestInterrupt(request addr.Interrupt) {
	m.RequestInterrupts(uint8(request))
}

// AcknowledgeInterrupt clears the request bit of a serviced interrupt.
func (m *MMU) AcknowledgeInterrupt(request addr.Interrupt) {
	m.interruptFlags &^= uint8(request)
}

func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		return m.Cart.Read(address)
	case address < 0xA000:
		return m.GPU.ReadVRAM(address)
	case address < 0xC000:
		return m.Cart.Read(address)
	case address < 0xE000:
		return m.wram[address-0xC000]
	case address < 0xFE00:
		// Echo RAM mirrors work RAM for reads.
		return m.wram[address-0xE000]
	case address <= addr.OAMEnd:
		return m.GPU.ReadOAM(address)
	case address < 0xFF00:
		panic(fmt.Sprintf("disallowed read from unused region: 0x%04X", address))
	case address == addr.P1:
		return m.Joypad.Read()
	case address == addr.SB || address == addr.SC:
		return 0
	case address >= addr.DIV && address <= addr.TAC:
		return m.Timer.Read(address)
	case address == addr.IF:
		return m.interruptFlags
	case address >= addr.SoundStart && address <= addr.SoundEnd:
		return 0
	case address >= addr.LCDC && address <= addr.WX:
		return m.GPU.ReadRegister(address)
	case address >= 0xFF80 && address < addr.IE:
		return m.hram[address-0xFF80]
	case address == addr.IE:
		return m.interruptEnable
	}
	panic(fmt.Sprintf("disallowed read from 0x%04X", address))
}

func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		m.Cart.Write(address, value)
	case address < 0xA000:
		m.GPU.WriteVRAM(address, value)
	case address < 0xC000:
		m.Cart.Write(address, value)
	case address < 0xE000:
		m.wram[address-0xC000] = value
	case address < 0xFE00:
		panic(fmt.Sprintf("disallowed write to echo RAM: 0x%04X", address))
	case address <= addr.OAMEnd:
		m.GPU.WriteOAM(address, value)
	case address < 0xFF00:
		// Unused region; writes are dropped.
	case address == addr.P1:
		m.Joypad.Write(value)
	case address == addr.SB || address == addr.SC:
		slog.Debug("ignoring serial register write", "addr", fmt.Sprintf("0x%04X", address), "value", value)
	case address >= addr.DIV && address <= addr.TAC:
		m.Timer.Write(address, value)
	case address == addr.IF:
		m.interruptFlags = value & 0x1F
	case address >= addr.SoundStart && address <= addr.SoundEnd:
		// Sound is not emulated; register and wave RAM writes are dropped.
	case address == addr.DMA:
		m.transferOAM(value)
	case address >= addr.LCDC && address <= addr.WX:
		m.GPU.WriteRegister(address, value)
	case address >= 0xFF4C && address < addr.BootROMDisable:
		// Unused I/O; writes are dropped.
	case address == addr.BootROMDisable:
		panic("boot ROM disable is not supported")
	case address > addr.BootROMDisable && address < 0xFF80:
		// Unused I/O; writes are dropped.
	case address >= 0xFF80 && address < addr.IE:
		m.hram[address-0xFF80] = value
	case address == addr.IE:
		m.interruptEnable = value
	default:
		panic(fmt.Sprintf("disallowed write (0x%02X) to 0x%04X", value, address))
	}
}

// transferOAM performs the 0xFF46 DMA: 160 bytes are copied from
// source*0x100 into OAM, reading back through this bus. The copy is
// atomic from the program's viewpoint.
func (m *MMU) transferOAM(source uint8) {
	base := uint16(source) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.GPU.WriteOAM(addr.OAMStart+i, m.Read(base+i))
	}
}
