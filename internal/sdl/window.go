//go:build sdl

package sdl

import (
	"context"
	"fmt"

	"github.com/tfriedel6/canvas/sdlcanvas"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

// Run opens an SDL canvas window and animates f until the window is
// closed or ctx is done.
func Run(ctx context.Context, cfg config.Run, f *field.Field) error {
	wnd, cv, err := sdlcanvas.CreateWindow(cfg.Width, cfg.Height, "Particle Field")
	if err != nil {
		return fmt.Errorf("create sdl window: %w", err)
	}
	defer wnd.Destroy()

	h := newHost(cv, cfg.Width, cfg.Height)
	wnd.SizeChange = h.resize
	wnd.KeyDown = func(_ int, rn rune, name string) {
		if name == "Escape" || rn == 'q' || rn == 'Q' {
			wnd.Close()
		}
	}

	f.Mount(h)
	defer f.Unmount()

	wnd.MainLoop(func() {
		if ctx.Err() != nil {
			wnd.Close()
			return
		}
		h.step()
	})
	return nil
}
