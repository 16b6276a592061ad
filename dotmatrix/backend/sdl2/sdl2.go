//go:build sdl2

// Package sdl2 renders the framebuffer into an SDL2 window. Building it
// requires the SDL2 development libraries; default builds use the stub.
package sdl2

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/backend"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/memory"
	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/video"
)

// Backend implements backend.Backend on an SDL2 window and texture.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// New returns an uninitialized SDL2 backend.
func New() (backend.Backend, error) {
	return &Backend{}, nil
}

func (s *Backend) Init(config backend.Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initializing SDL2: %w", err)
	}

	scale := config.Scale
	if scale <= 0 {
		scale = 3
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*scale),
		int32(video.FramebufferHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24,
		sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth,
		video.FramebufferHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating texture: %w", err)
	}
	s.texture = texture

	return nil
}

func (s *Backend) Update(frame *video.FrameBuffer) ([]backend.Event, error) {
	var out []backend.Event

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event := event.(type) {
		case *sdl.QuitEvent:
			out = append(out, backend.Event{Type: backend.Quit})
		case *sdl.KeyboardEvent:
			out = append(out, s.translateKey(event)...)
		}
	}

	pixels := frame.RGB()
	if err := s.texture.Update(nil, unsafe.Pointer(&pixels[0]), video.FramebufferWidth*3); err != nil {
		return out, fmt.Errorf("updating texture: %w", err)
	}

	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()

	return out, nil
}

func (s *Backend) Cleanup() error {
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func (s *Backend) translateKey(event *sdl.KeyboardEvent) []backend.Event {
	eventType := backend.KeyPressed
	if event.Type == sdl.KEYUP {
		eventType = backend.KeyReleased
	}

	switch event.Keysym.Sym {
	case sdl.K_ESCAPE:
		if event.Type == sdl.KEYDOWN {
			return []backend.Event{{Type: backend.Quit}}
		}
	case sdl.K_c:
		if event.Type == sdl.KEYDOWN {
			return []backend.Event{{Type: backend.ColorMapCycled}}
		}
	case sdl.K_UP:
		return []backend.Event{{Type: eventType, Key: memory.JoypadUp}}
	case sdl.K_DOWN:
		return []backend.Event{{Type: eventType, Key: memory.JoypadDown}}
	case sdl.K_LEFT:
		return []backend.Event{{Type: eventType, Key: memory.JoypadLeft}}
	case sdl.K_RIGHT:
		return []backend.Event{{Type: eventType, Key: memory.JoypadRight}}
	case sdl.K_RETURN:
		return []backend.Event{{Type: eventType, Key: memory.JoypadStart}}
	case sdl.K_BACKSPACE:
		return []backend.Event{{Type: eventType, Key: memory.JoypadSelect}}
	case sdl.K_z:
		return []backend.Event{{Type: eventType, Key: memory.JoypadA}}
	case sdl.K_x:
		return []backend.Event{{Type: eventType, Key: memory.JoypadB}}
	}
	return nil
}
