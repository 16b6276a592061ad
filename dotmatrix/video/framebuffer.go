package video

// Screen dimensions of the DMG LCD.
const (
	FramebufferWidth  = 160
	FramebufferHeight = 144
	FramebufferSize   = FramebufferWidth * FramebufferHeight
)

// RGB is a single display color.
type RGB struct {
	R, G, B uint8
}

// FrameBuffer is the 160x144 output image, stored as packed RGB8
// triplets ready for a display sink.
type FrameBuffer struct {
	pixels []uint8
}

// NewFrameBuffer returns a cleared framebuffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		pixels: make([]uint8, FramebufferSize*3),
	}
}

// SetPixel writes one pixel by linear position (y*width + x).
func (fb *FrameBuffer) SetPixel(position int, color RGB) {
	offset := position * 3
	fb.pixels[offset] = color.R
	fb.pixels[offset+1] = color.G
	fb.pixels[offset+2] = color.B
}

// At returns the pixel at the given coordinates.
func (fb *FrameBuffer) At(x, y int) RGB {
	offset := (y*FramebufferWidth + x) * 3
	return RGB{fb.pixels[offset], fb.pixels[offset+1], fb.pixels[offset+2]}
}

// RGB returns the raw RGB8 buffer. The slice aliases the framebuffer
// storage; display sinks must not hold on to it across frames.
func (fb *FrameBuffer) RGB() []uint8 {
	return fb.pixels
}

// Clear resets the framebuffer to black.
func (fb *FrameBuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = 0
	}
}
