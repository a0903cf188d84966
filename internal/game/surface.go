package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/field"
)

// surface is the field layer: an offscreen ebiten image that the game
// composites over the page background.
type surface struct {
	img   *ebiten.Image
	w, h  int
	alpha float64
}

func newSurface(w, h int) *surface {
	s := &surface{alpha: 1}
	s.SetSize(w, h)
	return s
}

func (s *surface) Size() (int, int) { return s.w, s.h }

func (s *surface) SetSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if s.img != nil && w == s.w && h == s.h {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(w, h)
	s.w, s.h = w, h
}

func (s *surface) Clear() { s.img.Clear() }

func (s *surface) SetGlobalAlpha(a float64) { s.alpha = a }

func (s *surface) FillCircle(x, y, r float64, c field.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c.NRGBA(s.alpha), true)
}

func (s *surface) StrokeLine(x0, y0, x1, y1, width float64, c field.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.NRGBA(s.alpha), true)
}
