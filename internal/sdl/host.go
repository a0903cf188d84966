package sdl

import (
	"github.com/iburimskiy/particle-field/internal/field"
)

// host adapts a canvas window to field.Host. The window loop calls step
// once per frame and resize from its size-change callback.
type host struct {
	field.Scheduler

	surface *surface
	w, h    int
}

func newHost(cv context2D, w, h int) *host {
	return &host{surface: &surface{cv: cv}, w: w, h: h}
}

func (h *host) Viewport() (int, int) { return h.w, h.h }

func (h *host) Surface() (field.Surface, bool) {
	if h.surface == nil || h.surface.cv == nil {
		return nil, false
	}
	return h.surface, true
}

func (h *host) resize(w, hh int) {
	if w == h.w && hh == h.h {
		return
	}
	h.w, h.h = w, hh
	h.NotifyResize(w, hh)
}

func (h *host) step() bool {
	return h.Tick()
}
