package video

// ColorMap translates the four DMG shades to display colors. Color maps
// are a convenience of the emulator; games only ever observe the 2-bit
// shades produced by the palette registers.
type ColorMap [4]RGB

var (
	// GrayscaleMap is the plain white-to-black rendering.
	GrayscaleMap = ColorMap{
		{255, 255, 255},
		{170, 170, 170},
		{85, 85, 85},
		{0, 0, 0},
	}

	// RetroGreenMap mimics the original green LCD.
	RetroGreenMap = ColorMap{
		{155, 188, 15},
		{139, 172, 15},
		{48, 98, 48},
		{15, 56, 15},
	}
)

// ColorMaps lists the built-in maps in cycling order.
var ColorMaps = []ColorMap{GrayscaleMap, RetroGreenMap}

// paletteShade applies a palette register (BGP, OBP0 or OBP1) to a
// 2-bit color index: each index occupies two bits, low to high.
func paletteShade(palette, index uint8) uint8 {
	return (palette >> (index * 2)) & 0x03
}
