//go:build !sdl

package sdl

import (
	"context"
	"errors"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

func Run(_ context.Context, _ config.Run, _ *field.Field) error {
	return errors.New("sdl backend requires building with -tags sdl (and SDL2 installed)")
}
