//go:build !sdl2

package sdl2

import (
	"errors"

	"github.com/dotmatrix-gb/dotmatrix/dotmatrix/backend"
)

// New reports that SDL2 support was not compiled in. Build with
// -tags sdl2 (and the SDL2 development libraries installed) to enable it.
func New() (backend.Backend, error) {
	return nil, errors.New("built without SDL2 support, rebuild with -tags sdl2")
}
