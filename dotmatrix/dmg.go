// Package dotmatrix couples the CPU, memory bus, timer and GPU into a
// runnable DMG machine and drives it against a display backend.
package dotmatrix

import (
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/addr"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/cpu"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/memory"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/timing"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/video"
)

// DMG is the emulated machine. A single synchronous loop owns it: each
// step executes one instruction and feeds its T-cycle cost to the timer
// and the scanline clock, merging interrupt requests into IF.
type DMG struct {
	cpu *cpu.CPU
	mmu *memory.MMU
	gpu *video.GPU

	// scanlineCountdown tracks the T-cycles left on the current line.
	scanlineCountdown int
}

// NewDMG builds a machine around a ROM image and its external RAM
// image (freshly zeroed or loaded from a savefile).
func NewDMG(rom, ram []byte) (*DMG, error) {
	cart, err := memory.NewCartridge(rom, ram)
	if err != nil {
		return nil, err
	}

	gpu := video.NewGPU()
	mmu := memory.New(cart, gpu)

	return &DMG{
		cpu:               cpu.New(mmu),
		mmu:               mmu,
		gpu:               gpu,
		scanlineCountdown: video.ScanlineCycles,
	}, nil
}

// Step executes one instruction (or an idle halt step) and advances the
// timer and the scanline clock by its cost. It returns the T-cycles
// consumed.
func (d *DMG) Step() int {
	cycles := d.cpu.Tick()

	if d.mmu.Timer.Update(cycles) {
		d.mmu.RequestInterrupt(addr.TimerInterrupt)
	}

	d.scanlineCountdown -= cycles
	if d.scanlineCountdown <= 0 {
		d.scanlineCountdown += video.ScanlineCycles
		d.mmu.RequestInterrupts(d.gpu.AdvanceScanline())
	}

	return cycles
}

// RunUntilFrame steps the machine for one frame's worth of T-cycles.
func (d *DMG) RunUntilFrame() {
	total := 0
	for total < timing.CyclesPerFrame {
		total += d.Step()
	}
}

// PressKey registers a key press. A released-to-pressed transition
// raises the joypad interrupt and wakes the CPU from STOP.
func (d *DMG) PressKey(key memory.JoypadKey) {
	if d.mmu.Joypad.Press(key) {
		d.mmu.RequestInterrupt(addr.JoypadInterrupt)
		d.cpu.Resume()
	}
}

// ReleaseKey registers a key release.
func (d *DMG) ReleaseKey(key memory.JoypadKey) {
	d.mmu.Joypad.Release(key)
}

// Frame returns the GPU output framebuffer.
func (d *DMG) Frame() *video.FrameBuffer {
	return d.gpu.Frame()
}

// Cartridge returns the loaded cartridge.
func (d *DMG) Cartridge() *memory.Cartridge {
	return d.mmu.Cart
}

// SetColorMap switches the display color map.
func (d *DMG) SetColorMap(colors video.ColorMap) {
	d.gpu.SetColorMap(colors)
}
