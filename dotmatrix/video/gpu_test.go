package video

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/addr"
)

func TestAdvanceScanlineWrapsLY(t *testing.T) {
	gpu := NewGPU()

	for line := 1; line < 154; line++ {
		gpu.AdvanceScanline()
		assert.Equal(t, uint8(line), gpu.ReadRegister(addr.LY))
	}

	gpu.AdvanceScanline()
	assert.Equal(t, uint8(0), gpu.ReadRegister(addr.LY))
}

func TestVBlankInterruptAtLine144(t *testing.T) {
	gpu := NewGPU()

	for line := 1; line < 144; line++ {
		assert.Equal(t, uint8(0), gpu.AdvanceScanline()&uint8(addr.VBlankInterrupt))
	}

	// Entering line 144 raises V-Blank exactly once.
	requests := gpu.AdvanceScanline()
	assert.Equal(t, uint8(addr.VBlankInterrupt), requests&uint8(addr.VBlankInterrupt))

	for line := 145; line < 154; line++ {
		assert.Equal(t, uint8(0), gpu.AdvanceScanline()&uint8(addr.VBlankInterrupt))
	}
}

func TestVBlankSetsMode1(t *testing.T) {
	gpu := NewGPU()

	gpu.WriteRegister(addr.LY, 143)
	gpu.AdvanceScanline()

	assert.Equal(t, uint8(1), gpu.ReadRegister(addr.STAT)&0x03)
}

func TestHBlankStatInterrupt(t *testing.T) {
	gpu := NewGPU()
	gpu.WriteRegister(addr.STAT, 1<<statHblankIrq)

	requests := gpu.AdvanceScanline()

	assert.Equal(t, uint8(addr.StatInterrupt), requests&uint8(addr.StatInterrupt))
	assert.Equal(t, uint8(0), gpu.ReadRegister(addr.STAT)&0x03)
}

func TestLYCCoincidence(t *testing.T) {
	gpu := NewGPU()
	gpu.WriteRegister(addr.LYC, 5)

	var requests uint8
	for line := 1; line <= 5; line++ {
		requests = gpu.AdvanceScanline()
	}

	assert.NotEqual(t, uint8(0), gpu.ReadRegister(addr.STAT)&(1<<statCoincidence))
	// without the LYC interrupt enable, no STAT request
	assert.Equal(t, uint8(0), requests&uint8(addr.StatInterrupt))

	gpu.AdvanceScanline()
	assert.Equal(t, uint8(0), gpu.ReadRegister(addr.STAT)&(1<<statCoincidence))
}

func TestLYCStatInterrupt(t *testing.T) {
	gpu := NewGPU()
	gpu.WriteRegister(addr.LYC, 1)
	gpu.WriteRegister(addr.STAT, 1<<statLycIrq)

	requests := gpu.AdvanceScanline()

	assert.Equal(t, uint8(addr.StatInterrupt), requests&uint8(addr.StatInterrupt))
}

func TestSTATWritePreservesHardwareBits(t *testing.T) {
	gpu := NewGPU()

	gpu.WriteRegister(addr.LYC, 1)
	gpu.AdvanceScanline() // sets coincidence, mode 0

	gpu.WriteRegister(addr.STAT, 0xFF)
	stat := gpu.ReadRegister(addr.STAT)

	assert.Equal(t, uint8(0x78), stat&0x78)
	assert.NotEqual(t, uint8(0), stat&(1<<statCoincidence))
	assert.Equal(t, uint8(0), stat&0x03)
}

// writeTile stores one 8x8 tile with every pixel at the given 2-bit
// color index.
func writeTile(gpu *GPU, tile int, colorIndex uint8) {
	var lsb, msb uint8
	if colorIndex&1 != 0 {
		lsb = 0xFF
	}
	if colorIndex&2 != 0 {
		msb = 0xFF
	}
	for row := 0; row < 8; row++ {
		gpu.WriteVRAM(uint16(0x8000+tile*16+row*2), lsb)
		gpu.WriteVRAM(uint16(0x8000+tile*16+row*2+1), msb)
	}
}

// renderLine0 positions the GPU just before line 0 and advances once.
func renderLine0(gpu *GPU) {
	gpu.WriteRegister(addr.LY, 153)
	gpu.AdvanceScanline()
}

func TestBackgroundRendering(t *testing.T) {
	gpu := NewGPU()

	// LCD on, 8000 addressing, BG on; identity palette.
	gpu.WriteRegister(addr.LCDC, 0x91)
	gpu.WriteRegister(addr.BGP, 0xE4)

	writeTile(gpu, 1, 3)
	// First tile of the map row shows tile 1, the rest stay at tile 0.
	gpu.WriteVRAM(0x9800, 1)

	renderLine0(gpu)

	// Tile 1 pixels are shade 3 (black), tile 0 pixels shade 0 (white).
	assert.Equal(t, GrayscaleMap[3], gpu.Frame().At(0, 0))
	assert.Equal(t, GrayscaleMap[3], gpu.Frame().At(7, 0))
	assert.Equal(t, GrayscaleMap[0], gpu.Frame().At(8, 0))
}

func TestBackgroundPaletteMapping(t *testing.T) {
	gpu := NewGPU()

	gpu.WriteRegister(addr.LCDC, 0x91)
	// Inverted palette: color index 3 maps to shade 0.
	gpu.WriteRegister(addr.BGP, 0x1B)

	writeTile(gpu, 0, 3)

	renderLine0(gpu)

	assert.Equal(t, GrayscaleMap[0], gpu.Frame().At(0, 0))
}

func TestBackgroundScrollX(t *testing.T) {
	gpu := NewGPU()

	gpu.WriteRegister(addr.LCDC, 0x91)
	gpu.WriteRegister(addr.BGP, 0xE4)
	gpu.WriteRegister(addr.SCX, 4)

	writeTile(gpu, 1, 3)
	gpu.WriteVRAM(0x9800, 1)

	renderLine0(gpu)

	// Scrolling right by 4 leaves only the tail of tile 1 visible.
	assert.Equal(t, GrayscaleMap[3], gpu.Frame().At(0, 0))
	assert.Equal(t, GrayscaleMap[3], gpu.Frame().At(3, 0))
	assert.Equal(t, GrayscaleMap[0], gpu.Frame().At(4, 0))
}

func TestBackgroundScrollYWraps(t *testing.T) {
	gpu := NewGPU()

	gpu.WriteRegister(addr.LCDC, 0x91)
	gpu.WriteRegister(addr.BGP, 0xE4)
	gpu.WriteRegister(addr.SCY, 248)

	// Row 31 of the map becomes the source for line 0.
	writeTile(gpu, 1, 3)
	gpu.WriteVRAM(0x9800+31*32, 1)

	renderLine0(gpu)

	assert.Equal(t, GrayscaleMap[3], gpu.Frame().At(0, 0))
}

func TestSignedTileAddressing(t *testing.T) {
	gpu := NewGPU()

	// LCDC bit 4 clear selects the 8800 method.
	gpu.WriteRegister(addr.LCDC, 0x81)
	gpu.WriteRegister(addr.BGP, 0xE4)

	// Tile -1 lives right below 0x9000.
	for row := 0; row < 8; row++ {
		gpu.WriteVRAM(uint16(0x9000-16+row*2), 0xFF)
		gpu.WriteVRAM(uint16(0x9000-16+row*2+1), 0xFF)
	}
	gpu.WriteVRAM(0x9800, 0xFF)

	renderLine0(gpu)

	assert.Equal(t, GrayscaleMap[3], gpu.Frame().At(0, 0))
}

func TestAlternateTileMap(t *testing.T) {
	gpu := NewGPU()

	// LCDC bit 3 selects the 9C00 map.
	gpu.WriteRegister(addr.LCDC, 0x99)
	gpu.WriteRegister(addr.BGP, 0xE4)

	writeTile(gpu, 1, 3)
	gpu.WriteVRAM(0x9C00, 1)

	renderLine0(gpu)

	assert.Equal(t, GrayscaleMap[3], gpu.Frame().At(0, 0))
}

func TestWindowRendering(t *testing.T) {
	gpu := NewGPU()

	// LCD + BG + window enabled; window map at 9C00.
	gpu.WriteRegister(addr.LCDC, 0x91|1<<windowEnable|1<<windowMapSelect)
	gpu.WriteRegister(addr.BGP, 0xE4)
	gpu.WriteRegister(addr.WY, 0)
	gpu.WriteRegister(addr.WX, 7+80) // window starts at x=80

	writeTile(gpu, 1, 3)
	gpu.WriteVRAM(0x9C00, 1)

	renderLine0(gpu)

	assert.Equal(t, GrayscaleMap[0], gpu.Frame().At(79, 0))
	assert.Equal(t, GrayscaleMap[3], gpu.Frame().At(80, 0))
	assert.Equal(t, GrayscaleMap[3], gpu.Frame().At(87, 0))
	assert.Equal(t, GrayscaleMap[0], gpu.Frame().At(88, 0))
}

func TestWindowBelowWYDoesNotRender(t *testing.T) {
	gpu := NewGPU()

	gpu.WriteRegister(addr.LCDC, 0x91|1<<windowEnable)
	gpu.WriteRegister(addr.BGP, 0xE4)
	gpu.WriteRegister(addr.WY, 100)
	gpu.WriteRegister(addr.WX, 7)

	writeTile(gpu, 1, 3)
	gpu.WriteVRAM(0x9800+0, 0) // BG shows tile 0
	gpu.WriteVRAM(0x9C00, 1)

	renderLine0(gpu)

	assert.Equal(t, GrayscaleMap[0], gpu.Frame().At(0, 0))
}

func TestLCDDisabledSkipsRendering(t *testing.T) {
	gpu := NewGPU()

	gpu.WriteRegister(addr.LCDC, 0x11) // LCD off
	gpu.WriteRegister(addr.BGP, 0xE4)
	writeTile(gpu, 0, 3)

	renderLine0(gpu)

	// Nothing was drawn; the framebuffer stays at its cleared state.
	assert.Equal(t, RGB{}, gpu.Frame().At(0, 0))
}

func TestTallSpriteModeFaults(t *testing.T) {
	gpu := NewGPU()

	gpu.WriteRegister(addr.LCDC, 0x91|1<<spriteSizeSelect)

	assert.Panics(t, func() {
		renderLine0(gpu)
	})
}

func TestColorMapSwitch(t *testing.T) {
	gpu := NewGPU()

	gpu.WriteRegister(addr.LCDC, 0x91)
	gpu.WriteRegister(addr.BGP, 0xE4)
	writeTile(gpu, 0, 3)

	gpu.SetColorMap(RetroGreenMap)
	renderLine0(gpu)

	assert.Equal(t, RetroGreenMap[3], gpu.Frame().At(0, 0))
}

func TestDisallowedRegisterAccessFaults(t *testing.T) {
	gpu := NewGPU()

	assert.Panics(t, func() {
		gpu.ReadRegister(addr.DMA)
	})
	assert.Panics(t, func() {
		gpu.WriteRegister(addr.DMA, 0x00)
	})
}
