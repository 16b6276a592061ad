package video

import (
	"fmt"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/addr"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/bit"
)

// ScanlineCycles is the duration of one scanline in T-cycles. The
// driver calls AdvanceScanline once per interval.
const ScanlineCycles = 456

// LCDC bit positions.
// Bit 7 - LCD enable
// Bit 6 - Window tile map select (0=9800, 1=9C00)
// Bit 5 - Window enable
// Bit 4 - BG & window tile data select (0=8800 method, 1=8000 method)
// Bit 3 - BG tile map select (0=9800, 1=9C00)
// Bit 2 - Sprite size (0=8x8, 1=8x16)
// Bit 1 - Sprite enable
// Bit 0 - BG & window enable
const (
	lcdEnable         = 7
	windowMapSelect   = 6
	windowEnable      = 5
	tileDataSelect    = 4
	bgMapSelect       = 3
	spriteSizeSelect  = 2
	spriteEnable      = 1
	bgEnable          = 0
)

// STAT bit positions. Bits 0-1 hold the PPU mode, bit 2 the LY==LYC
// coincidence; bits 3-6 enable the STAT interrupt sources.
const (
	statLycIrq      = 6
	statOamIrq      = 5
	statVblankIrq   = 4
	statHblankIrq   = 3
	statCoincidence = 2
)

// GPU owns VRAM, OAM and the LCD registers, and renders one scanline at
// a time into the framebuffer. It reports interrupt requests by value;
// it holds no reference to the bus or the CPU.
type GPU struct {
	vram [0x2000]uint8
	oam  [0xA0]uint8

	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	frame *FrameBuffer

	// bgIndex keeps the pre-palette 2-bit color of every background and
	// window pixel, consulted when a behind-BG sprite is drawn.
	bgIndex [FramebufferSize]uint8

	colors ColorMap
}

// NewGPU returns a GPU with cleared video memory and the grayscale map.
func NewGPU() *GPU {
	return &GPU{
		frame:  NewFrameBuffer(),
		colors: GrayscaleMap,
	}
}

// Frame returns the output framebuffer.
func (g *GPU) Frame() *FrameBuffer { return g.frame }

// SetColorMap switches the display color map.
func (g *GPU) SetColorMap(colors ColorMap) { g.colors = colors }

func (g *GPU) ReadVRAM(address uint16) uint8 {
	return g.vram[address-0x8000]
}

func (g *GPU) WriteVRAM(address uint16, value uint8) {
	g.vram[address-0x8000] = value
}

func (g *GPU) ReadOAM(address uint16) uint8 {
	return g.oam[address-addr.OAMStart]
}

func (g *GPU) WriteOAM(address uint16, value uint8) {
	g.oam[address-addr.OAMStart] = value
}

// ReadRegister serves the LCD register window. DMA (0xFF46) is handled
// by the bus and is not readable.
func (g *GPU) ReadRegister(address uint16) uint8 {
	switch address {
	case addr.LCDC:
		return g.lcdc
	case addr.STAT:
		return g.stat
	case addr.SCY:
		return g.scy
	case addr.SCX:
		return g.scx
	case addr.LY:
		return g.ly
	case addr.LYC:
		return g.lyc
	case addr.BGP:
		return g.bgp
	case addr.OBP0:
		return g.obp0
	case addr.OBP1:
		return g.obp1
	case addr.WY:
		return g.wy
	case addr.WX:
		return g.wx
	}
	panic(fmt.Sprintf("disallowed LCD register read: 0x%04X", address))
}

func (g *GPU) WriteRegister(address uint16, value uint8) {
	switch address {
	case addr.LCDC:
		g.lcdc = value
	case addr.STAT:
		// Mode and coincidence bits stay hardware-owned.
		g.stat = g.stat&0x07 | value&0x78
	case addr.SCY:
		g.scy = value
	case addr.SCX:
		g.scx = value
	case addr.LY:
		g.ly = value
	case addr.LYC:
		g.lyc = value
	case addr.BGP:
		g.bgp = value
	case addr.OBP0:
		g.obp0 = value
	case addr.OBP1:
		g.obp1 = value
	case addr.WY:
		g.wy = value
	case addr.WX:
		g.wx = value
	default:
		panic(fmt.Sprintf("disallowed LCD register write: 0x%04X", address))
	}
}

// AdvanceScanline moves to the next scanline, renders it if visible,
// updates STAT and returns the raised interrupt requests as an IF-style
// bitmask for the driver to merge.
func (g *GPU) AdvanceScanline() uint8 {
	g.ly = (g.ly + 1) % 154

	var requests uint8

	if g.ly == g.lyc {
		g.stat = bit.Set(statCoincidence, g.stat)
		if bit.IsSet(statLycIrq, g.stat) {
			requests |= uint8(addr.StatInterrupt)
		}
	} else {
		g.stat = bit.Reset(statCoincidence, g.stat)
	}

	if g.ly < FramebufferHeight {
		if bit.IsSet(lcdEnable, g.lcdc) {
			g.renderLine()
		}

		// Mode 0, H-Blank.
		g.stat &= 0xFC
		if bit.IsSet(statHblankIrq, g.stat) {
			requests |= uint8(addr.StatInterrupt)
		}
	} else {
		// Mode 1, V-Blank.
		g.stat = g.stat&0xFC | 0x01

		if g.ly == FramebufferHeight {
			requests |= uint8(addr.VBlankInterrupt)
			if bit.IsSet(statVblankIrq, g.stat) {
				requests |= uint8(addr.StatInterrupt)
			}
		}
	}

	return requests
}

func (g *GPU) renderLine() {
	if bit.IsSet(spriteSizeSelect, g.lcdc) {
		panic("8x16 sprite mode is not supported")
	}

	signedTiles := !bit.IsSet(tileDataSelect, g.lcdc)

	if bit.IsSet(bgEnable, g.lcdc) {
		g.renderBackground(signedTiles)

		if bit.IsSet(windowEnable, g.lcdc) {
			g.renderWindow(signedTiles)
		}
	}

	if bit.IsSet(spriteEnable, g.lcdc) {
		g.renderSprites()
	}
}

// tileDataOffset resolves a tile map entry to the tile's offset within
// VRAM, using either the unsigned 8000 method or the signed 8800 method.
func (g *GPU) tileDataOffset(signedTiles bool, tileIndex uint8) int {
	if signedTiles {
		return int(addr.TileData2-addr.TileData0) + int(int8(tileIndex))*16
	}
	return int(tileIndex) * 16
}

func (g *GPU) renderBackground(signedTiles bool) {
	mapBase := addr.TileMap0
	if bit.IsSet(bgMapSelect, g.lcdc) {
		mapBase = addr.TileMap1
	}
	mapOffset := int(mapBase - addr.TileData0)

	// The source row wraps around the 256-pixel background plane.
	sourceY := (int(g.scy) + int(g.ly)) & 0xFF
	tileRow := (sourceY / 8) % 32
	yInTile := sourceY % 8

	for col := range 32 {
		tileIndex := g.vram[mapOffset+tileRow*32+col]
		tileOffset := g.tileDataOffset(signedTiles, tileIndex)

		offsetX := col*8 - int(g.scx)
		if offsetX < -8 {
			offsetX += 256
		}
		if offsetX < FramebufferWidth {
			g.drawTileLine(g.bgp, offsetX, yInTile, tileOffset, false, false, false)
		}
	}
}

func (g *GPU) renderWindow(signedTiles bool) {
	if int(g.ly) < int(g.wy) {
		return
	}

	windowY := int(g.ly) - int(g.wy)
	tileRow := windowY / 8
	if tileRow >= 32 {
		return
	}
	yInTile := windowY % 8

	mapBase := addr.TileMap0
	if bit.IsSet(windowMapSelect, g.lcdc) {
		mapBase = addr.TileMap1
	}
	mapOffset := int(mapBase - addr.TileData0)

	for col := range 32 {
		tileIndex := g.vram[mapOffset+tileRow*32+col]
		tileOffset := g.tileDataOffset(signedTiles, tileIndex)

		offsetX := col*8 + int(g.wx) - 7
		if offsetX >= -8 && offsetX <= FramebufferWidth {
			g.drawTileLine(g.bgp, offsetX, yInTile, tileOffset, false, false, false)
		}
	}
}

func (g *GPU) renderSprites() {
	line := int(g.ly)
	drawn := 0

	// OAM order decides priority; at most 10 sprites land on a line.
	for sprite := 0; sprite < 40 && drawn < 10; sprite++ {
		entry := sprite * 4
		spriteY := int(g.oam[entry]) - 16

		if spriteY > line || spriteY < line-7 {
			continue
		}

		spriteX := int(g.oam[entry+1]) - 8
		if spriteX <= -8 || spriteX >= FramebufferWidth {
			continue
		}
		drawn++

		tileIndex := g.oam[entry+2]
		flags := g.oam[entry+3]

		behindBG := bit.IsSet(7, flags)
		xFlip := bit.IsSet(5, flags)

		palette := g.obp0
		if bit.IsSet(4, flags) {
			palette = g.obp1
		}

		yInTile := line - spriteY
		if bit.IsSet(6, flags) {
			yInTile = 7 - yInTile
		}

		// Sprites always use the unsigned 8000 method.
		g.drawTileLine(palette, spriteX, yInTile, int(tileIndex)*16, true, xFlip, behindBG)
	}
}

// drawTileLine decodes one 8-pixel tile row and writes the visible
// pixels. Background pixels record their pre-palette color index;
// sprite pixels honor transparency and the behind-BG flag.
func (g *GPU) drawTileLine(palette uint8, offsetX, yInTile, tileOffset int, sprite, xFlip, behindBG bool) {
	lsb := g.vram[tileOffset+yInTile*2]
	msb := g.vram[tileOffset+yInTile*2+1]

	for x := range 8 {
		colorIndex := ((msb>>(7-x))&1)<<1 | (lsb>>(7-x))&1

		if sprite && colorIndex == 0 {
			continue
		}

		pixelX := offsetX + x
		if xFlip {
			pixelX = offsetX + 7 - x
		}
		if pixelX < 0 || pixelX >= FramebufferWidth {
			continue
		}

		position := int(g.ly)*FramebufferWidth + pixelX
		if !sprite {
			g.bgIndex[position] = colorIndex
		} else if behindBG && g.bgIndex[position] != 0 {
			continue
		}

		g.frame.SetPixel(position, g.colors[paletteShade(palette, colorIndex)])
	}
}
