// Package terminal renders the framebuffer as shaded characters in the
// terminal and captures keyboard input with tcell.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/backend"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/memory"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/video"
)

// Terminal characters are taller than wide, so each pixel is doubled
// horizontally to keep the aspect ratio roughly square.
const scaleX = 2

// blitInterval caps how often the terminal is redrawn. Scanlines render
// far more often than a terminal can usefully display.
const blitInterval = 50 * time.Millisecond

// shadeChars maps the four shades, lightest to darkest.
var shadeChars = [4]rune{' ', '░', '▒', '█'}

// Backend implements backend.Backend on a tcell screen.
type Backend struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	lastBlit time.Time

	// Terminals report key taps, not releases. Every tap is delivered
	// as a press, and the matching release is emitted on the following
	// update so games observe a complete press/release cycle.
	pendingReleases []memory.JoypadKey
}

// New returns an uninitialized terminal backend.
func New() *Backend {
	return &Backend{}
}

func (t *Backend) Init(config backend.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	t.screen = screen
	t.events = make(chan tcell.Event, 32)
	t.done = make(chan struct{})

	go func() {
		for {
			event := screen.PollEvent()
			if event == nil {
				return
			}
			select {
			case t.events <- event:
			case <-t.done:
				return
			}
		}
	}()

	return nil
}

func (t *Backend) Update(frame *video.FrameBuffer) ([]backend.Event, error) {
	var out []backend.Event

	for _, key := range t.pendingReleases {
		out = append(out, backend.Event{Type: backend.KeyReleased, Key: key})
	}
	t.pendingReleases = t.pendingReleases[:0]

	for {
		select {
		case event := <-t.events:
			out = append(out, t.translate(event)...)
		default:
			t.render(frame)
			return out, nil
		}
	}
}

func (t *Backend) Cleanup() error {
	close(t.done)
	t.screen.Fini()
	return nil
}

func (t *Backend) translate(event tcell.Event) []backend.Event {
	switch event := event.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return []backend.Event{{Type: backend.Quit}}
		case tcell.KeyUp:
			return t.tap(memory.JoypadUp)
		case tcell.KeyDown:
			return t.tap(memory.JoypadDown)
		case tcell.KeyLeft:
			return t.tap(memory.JoypadLeft)
		case tcell.KeyRight:
			return t.tap(memory.JoypadRight)
		case tcell.KeyEnter:
			return t.tap(memory.JoypadStart)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return t.tap(memory.JoypadSelect)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'z':
				return t.tap(memory.JoypadA)
			case 'x':
				return t.tap(memory.JoypadB)
			case 'c':
				return []backend.Event{{Type: backend.ColorMapCycled}}
			}
		}
	}
	return nil
}

// tap emits a press now and schedules the release for the next update.
func (t *Backend) tap(key memory.JoypadKey) []backend.Event {
	t.pendingReleases = append(t.pendingReleases, key)
	return []backend.Event{{Type: backend.KeyPressed, Key: key}}
}

func (t *Backend) render(frame *video.FrameBuffer) {
	if time.Since(t.lastBlit) < blitInterval {
		return
	}
	t.lastBlit = time.Now()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			pixel := frame.At(x, y)

			// Bucket the luminance into the four shades.
			luminance := (int(pixel.R) + int(pixel.G) + int(pixel.B)) / 3
			shade := 3 - luminance/64
			if shade < 0 {
				shade = 0
			}

			for sx := 0; sx < scaleX; sx++ {
				t.screen.SetContent(x*scaleX+sx, y, shadeChars[shade], nil, style)
			}
		}
	}

	t.screen.Show()
}
