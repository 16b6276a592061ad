// Package headless runs the emulator without a display, for automated
// testing and batch execution.
package headless

import (
	"log/slog"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/backend"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/video"
)

// Backend counts frames and requests shutdown once the target is hit.
type Backend struct {
	maxFrames  int
	frameCount int

	// LastFrame keeps the most recent framebuffer for inspection.
	LastFrame *video.FrameBuffer
}

// New returns a headless backend that stops after maxFrames frames.
func New(maxFrames int) *Backend {
	return &Backend{maxFrames: maxFrames}
}

func (h *Backend) Init(config backend.Config) error {
	slog.Info("running headless", "frames", h.maxFrames)
	return nil
}

func (h *Backend) Update(frame *video.FrameBuffer) ([]backend.Event, error) {
	h.frameCount++
	h.LastFrame = frame

	if h.frameCount%600 == 0 {
		slog.Info("frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount >= h.maxFrames {
		return []backend.Event{{Type: backend.Quit}}, nil
	}
	return nil, nil
}

func (h *Backend) Cleanup() error {
	return nil
}
