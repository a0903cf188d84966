package raster

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

// Headless is a window-less field.Host driven frame by frame. Its clock is
// the frame count at config.TPS, so renders are reproducible.
type Headless struct {
	field.Scheduler

	w, h    int
	surface *Surface
	frames  uint64
	// NoSurface makes the host report that no drawing surface exists.
	NoSurface bool
}

func NewHeadless(w, h int) *Headless {
	return &Headless{w: w, h: h}
}

func (h *Headless) Viewport() (int, int) { return h.w, h.h }

func (h *Headless) Surface() (field.Surface, bool) {
	if h.NoSurface {
		return nil, false
	}
	if h.surface == nil {
		h.surface = NewSurface(h.w, h.h)
	}
	return h.surface, true
}

// Step runs one frame and reports whether a frame callback was pending.
func (h *Headless) Step() bool {
	ran := h.Tick()
	if ran {
		h.frames++
	}
	return ran
}

// Resize changes the viewport and notifies resize handlers.
func (h *Headless) Resize(w, hh int) {
	h.w, h.h = w, hh
	h.NotifyResize(w, hh)
}

// Elapsed is the simulated time since the first frame.
func (h *Headless) Elapsed() time.Duration {
	return time.Duration(h.frames) * time.Second / config.TPS
}

// Image composites the current layer over the page background, or returns
// a blank background when nothing was drawn.
func (h *Headless) Image() *image.RGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, h.w, h.h))
	if h.surface != nil {
		layer = h.surface.Image()
	}
	return Composite(layer, config.PageBackground, field.FadeIn(h.Elapsed()))
}

// Render mounts f on a headless host, runs cfg.Frames frames and returns
// the final composited image.
func Render(ctx context.Context, cfg config.Run, f *field.Field) (*image.RGBA, error) {
	h := NewHeadless(cfg.Width, cfg.Height)
	f.Mount(h)
	defer f.Unmount()

	for i := 0; i < cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !h.Step() {
			break
		}
	}
	return h.Image(), nil
}

func WritePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}
