package cpu

import (
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/memory"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/video"
)

// newTestCPU builds a CPU over a ROM-only cartridge. The patch map
// overrides ROM bytes, typically to lay down a test program at the
// entry point.
func newTestCPU(patch map[uint16]uint8) *CPU {
	rom := make([]byte, 0x8000)
	for address, value := range patch {
		rom[address] = value
	}

	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum

	cart, err := memory.NewCartridge(rom, nil)
	if err != nil {
		panic(err)
	}

	return New(memory.New(cart, video.NewGPU()))
}
