// Package sdl draws the particle field through an HTML5-style canvas
// context backed by SDL and OpenGL.
package sdl

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tfriedel6/canvas"

	"github.com/iburimskiy/particle-field/internal/field"
)

// context2D is the subset of *canvas.Canvas the field needs.
type context2D interface {
	ClearRect(x, y, w, h float64)
	SetGlobalAlpha(alpha float64)
	SetFillStyle(value ...interface{})
	SetStrokeStyle(value ...interface{})
	SetLineWidth(width float64)
	BeginPath()
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Fill()
	Stroke()
}

var _ context2D = (*canvas.Canvas)(nil)

// surface forwards drawing calls to a canvas context. The canvas itself
// follows the window size, so SetSize only records the dimensions used for
// clearing and reflection.
type surface struct {
	cv   context2D
	w, h int
}

func (s *surface) Size() (int, int) { return s.w, s.h }

func (s *surface) SetSize(w, h int) { s.w, s.h = w, h }

func (s *surface) Clear() { s.cv.ClearRect(0, 0, float64(s.w), float64(s.h)) }

func (s *surface) SetGlobalAlpha(a float64) { s.cv.SetGlobalAlpha(a) }

func (s *surface) FillCircle(x, y, r float64, c field.Color) {
	s.cv.BeginPath()
	s.cv.Arc(x, y, r, 0, math.Pi*2, false)
	s.cv.SetFillStyle(cssColor(c))
	s.cv.Fill()
}

func (s *surface) StrokeLine(x0, y0, x1, y1, width float64, c field.Color) {
	s.cv.BeginPath()
	s.cv.MoveTo(x0, y0)
	s.cv.LineTo(x1, y1)
	s.cv.SetStrokeStyle(cssColor(c))
	s.cv.SetLineWidth(width)
	s.cv.Stroke()
}

// cssColor formats c as a CSS colour: #rrggbb when opaque, rgba() otherwise.
func cssColor(c field.Color) string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(math.Max(0, c.A), 'g', 4, 64))
}
