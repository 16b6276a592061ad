package cpu

import (
	"log/slog"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/addr"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/bit"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/memory"
)

// CPU holds the LR35902 architectural state and drives the
// fetch/decode/execute loop through the memory bus.
type CPU struct {
	memory *memory.MMU

	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16

	// interruptsEnabled is the IME latch. EI and DI do not touch it
	// directly; they arm a countdown so the change lands one
	// instruction later.
	interruptsEnabled bool
	eiCountdown       int
	diCountdown       int

	halted  bool
	stopped bool

	// currentOpcode is kept for diagnostics on illegal instructions.
	// CB-prefixed opcodes are stored as 0xCBxx.
	currentOpcode uint16
}

// New returns a CPU in the state the boot ROM leaves it in: execution
// starts at the cartridge entry point with the stack at the top of HRAM.
func New(mmu *memory.MMU) *CPU {
	return &CPU{
		memory: mmu,
		sp:     0xFFFE,
		pc:     0x100,
	}
}

// Tick runs one step of the interpreter: service a pending interrupt,
// then execute a single instruction (or burn an idle machine cycle while
// halted or stopped), then settle any armed EI/DI toggle. It returns the
// number of T-cycles consumed.
func (c *CPU) Tick() int {
	cycles := c.serviceInterrupts()

	if c.halted || c.stopped {
		return cycles + 4
	}

	cycles += c.execute()
	c.settleInterruptToggles()

	return cycles
}

// Halted reports whether the CPU is in the HALT low-power state.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU is in the STOP state. Only a joypad
// event leaves it.
func (c *CPU) Stopped() bool { return c.stopped }

// Resume clears the STOP state; called by the driver on joypad input.
func (c *CPU) Resume() { c.stopped = false }

// PC returns the current program counter, for logging.
func (c *CPU) PC() uint16 { return c.pc }

func (c *CPU) execute() int {
	opcode := c.fetch8()
	c.currentOpcode = uint16(opcode)

	if opcode == 0xCB {
		sub := c.fetch8()
		c.currentOpcode = 0xCB00 | uint16(sub)
		return opcodeCBTable[sub](c)
	}

	return opcodeTable[opcode](c)
}

// settleInterruptToggles applies the delayed effect of EI and DI. Both
// are armed with a count of 2 and decremented once per instruction, so
// the IME change becomes visible after the instruction following the
// EI/DI completes.
func (c *CPU) settleInterruptToggles() {
	if c.eiCountdown > 0 {
		c.eiCountdown--
		if c.eiCountdown == 0 {
			slog.Debug("enabling interrupts")
			c.interruptsEnabled = true
		}
	}
	if c.diCountdown > 0 {
		c.diCountdown--
		if c.diCountdown == 0 {
			slog.Debug("disabling interrupts")
			c.interruptsEnabled = false
		}
	}
}

// fetch8 reads the next byte of the instruction stream.
func (c *CPU) fetch8() uint8 {
	value := c.memory.Read(c.pc)
	c.pc++
	return value
}

// fetchSigned reads the next byte as a signed relative offset.
func (c *CPU) fetchSigned() int8 {
	return int8(c.fetch8())
}

// fetch16 reads a little-endian 16-bit immediate.
func (c *CPU) fetch16() uint16 {
	low := c.fetch8()
	high := c.fetch8()
	return bit.Combine(high, low)
}

// stop enters the STOP state. The opcode carries a padding byte, and
// the divider is reset as on hardware.
func (c *CPU) stop() {
	if pad := c.fetch8(); pad != 0x00 {
		slog.Warn("STOP padding byte is not zero", "value", pad)
	}
	c.stopped = true
	c.memory.Write(addr.DIV, 0)
}
