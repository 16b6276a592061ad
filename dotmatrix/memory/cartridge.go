package memory

import (
	"fmt"
	"log/slog"
)

// CartridgeType is the controller byte at ROM offset 0x147.
type CartridgeType uint8

const (
	ROMOnly        CartridgeType = 0x00
	MBC1           CartridgeType = 0x01
	MBC1BatteryRAM CartridgeType = 0x03
	MBC3BatteryRAM CartridgeType = 0x13
)

func (t CartridgeType) String() string {
	switch t {
	case ROMOnly:
		return "ROM_ONLY"
	case MBC1:
		return "MBC1"
	case MBC1BatteryRAM:
		return "MBC1+RAM+BATTERY"
	case MBC3BatteryRAM:
		return "MBC3+RAM+BATTERY"
	}
	return fmt.Sprintf("unknown(0x%02X)", uint8(t))
}

func (t CartridgeType) banked() bool {
	return t == MBC1 || t == MBC1BatteryRAM || t == MBC3BatteryRAM
}

// HasBattery reports whether external RAM should be persisted.
func (t CartridgeType) HasBattery() bool {
	return t == MBC1BatteryRAM || t == MBC3BatteryRAM
}

// Cartridge serves the two cartridge windows of the address space: ROM
// at 0x0000-0x7FFF (with a switchable upper bank) and external RAM at
// 0xA000-0xBFFF. Bank-control writes land in the ROM window.
type Cartridge struct {
	header *Header
	rom    []byte
	ram    []byte

	kind       CartridgeType
	ramEnabled bool

	// romBankOffset is added to reads in the switchable window; it is
	// (bank-1)*0x4000 because the window itself starts at 0x4000.
	romBankOffset int
	ramBankOffset int
}

// NewCartridge builds a cartridge from a ROM image and its external RAM
// (loaded from a savefile or zero-initialized by the caller). The header
// is parsed and its checksum validated; unknown controller types fail.
func NewCartridge(rom, ram []byte) (*Cartridge, error) {
	header, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}

	kind := header.CartridgeType
	if kind != ROMOnly && !kind.banked() {
		return nil, fmt.Errorf("unsupported cartridge type %s", kind)
	}

	declared, err := header.RAMBytes()
	if err != nil {
		return nil, err
	}
	if len(ram) != declared {
		return nil, fmt.Errorf("external RAM is %d bytes, header declares %d", len(ram), declared)
	}

	return &Cartridge{
		header: header,
		rom:    rom,
		ram:    ram,
		kind:   kind,
	}, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() *Header { return c.header }

// RAM returns the external RAM image for persistence.
func (c *Cartridge) RAM() []byte { return c.ram }

func (c *Cartridge) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return c.rom[address]
	case address < 0x8000:
		return c.rom[c.romBankOffset+int(address)]
	case address >= 0xA000 && address < 0xC000:
		if !c.ramEnabled {
			return 0xFF
		}
		index := c.ramBankOffset + int(address) - 0xA000
		if index >= len(c.ram) {
			return 0xFF
		}
		return c.ram[index]
	}
	panic(fmt.Sprintf("cartridge read outside its windows: 0x%04X", address))
}

func (c *Cartridge) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		c.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		if c.kind == ROMOnly {
			return
		}
		// Bank 0 selects bank 1: the window never maps the fixed bank.
		bank := int(value)
		if bank == 0 {
			bank = 1
		}
		c.romBankOffset = (bank - 1) * 0x4000
	case address < 0x6000:
		c.ramBankOffset = int(value) * 0x2000
	case address < 0x8000:
		// MBC3 RTC latch region; the clock is not emulated.
		slog.Warn("ignoring RTC register write", "addr", fmt.Sprintf("0x%04X", address), "value", value)
	case address >= 0xA000 && address < 0xC000:
		if !c.ramEnabled {
			return
		}
		index := c.ramBankOffset + int(address) - 0xA000
		if index < len(c.ram) {
			c.ram[index] = value
		}
	default:
		panic(fmt.Sprintf("cartridge write outside its windows: 0x%04X", address))
	}
}
