package cpu

import "github.com/dotmatrix-gb/dotmatrix/dotmatrix/addr"

// interruptMask covers the five architectural request bits of IF/IE.
const interruptMask = 0x1F

// serviceInterrupts is checked once per instruction boundary, before
// the fetch. When IME is set and a request is both raised and enabled,
// the lowest-numbered bit is serviced: IME drops, PC is pushed, control
// transfers to the vector and the request bit is acknowledged. A halted
// CPU with IME clear only wakes up; it does not vector.
func (c *CPU) serviceInterrupts() int {
	pending := c.memory.InterruptFlags() & c.memory.InterruptEnable() & interruptMask

	if !c.interruptsEnabled {
		if c.halted && pending != 0 {
			c.halted = false
		}
		return 0
	}

	if pending == 0 {
		return 0
	}

	for i := uint8(0); i < 5; i++ {
		if pending&(1<<i) == 0 {
			continue
		}

		request := addr.Interrupt(1 << i)
		c.interruptsEnabled = false
		c.pushStack(c.pc)
		c.pc = request.Vector()
		c.memory.AcknowledgeInterrupt(request)
		c.halted = false

		// 5 machine cycles for the dispatch.
		return 20
	}

	return 0
}
