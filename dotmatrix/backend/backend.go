package backend

import (
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/memory"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/video"
)

// EventType classifies the events a backend can report.
type EventType int

const (
	// KeyPressed and KeyReleased carry a joypad key change.
	KeyPressed EventType = iota
	KeyReleased
	// ColorMapCycled asks the driver to switch to the next color map.
	ColorMapCycled
	// Quit requests an orderly shutdown.
	Quit
)

// Event is a single input event polled from the platform.
type Event struct {
	Type EventType
	Key  memory.JoypadKey
}

// Config holds backend configuration.
type Config struct {
	Title string
	Scale int
}

// Backend is a display sink plus input source: it presents frames and
// returns the input events collected since the previous update. The
// poll must never block the emulation loop.
type Backend interface {
	// Init prepares the platform resources. Required before Update.
	Init(config Config) error

	// Update presents the frame and returns pending input events.
	Update(frame *video.FrameBuffer) ([]Event, error)

	// Cleanup releases platform resources on shutdown.
	Cleanup() error
}
