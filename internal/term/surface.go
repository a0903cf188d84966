package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

// surface maps the field's virtual pixels onto terminal cells of
// config.TerminalCellWidth x config.TerminalCellHeight pixels. Colours are
// blended onto a black cell background.
type surface struct {
	screen tcell.Screen
	w, h   int
	alpha  float64
}

func (s *surface) Size() (int, int) { return s.w, s.h }

func (s *surface) SetSize(w, h int) { s.w, s.h = w, h }

func (s *surface) Clear() { s.screen.Clear() }

func (s *surface) SetGlobalAlpha(a float64) { s.alpha = a }

func (s *surface) FillCircle(x, y, r float64, c field.Color) {
	cx, cy := cellOf(x, y)
	if !s.inside(cx, cy) {
		return
	}
	glyph := '·'
	switch {
	case r >= 3:
		glyph = '●'
	case r >= 2:
		glyph = '•'
	}
	s.screen.SetContent(cx, cy, glyph, nil, styleFor(c, c.A*s.alpha))
}

// StrokeLine walks the cells between both ends. Links never overwrite a
// cell that already holds a particle.
func (s *surface) StrokeLine(x0, y0, x1, y1, _ float64, c field.Color) {
	ax, ay := cellOf(x0, y0)
	bx, by := cellOf(x1, y1)
	style := styleFor(c, c.A*s.alpha*config.TerminalLinkGain)

	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		if s.inside(ax, ay) {
			if r, _, _, _ := s.screen.GetContent(ax, ay); r == ' ' || r == 0 || r == '.' {
				s.screen.SetContent(ax, ay, '.', nil, style)
			}
		}
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

func (s *surface) inside(cx, cy int) bool {
	cols, rows := s.screen.Size()
	return cx >= 0 && cy >= 0 && cx < cols && cy < rows
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / config.TerminalCellWidth)), int(math.Floor(y / config.TerminalCellHeight))
}

func styleFor(c field.Color, a float64) tcell.Style {
	a = math.Max(0, math.Min(1, a))
	fg := tcell.NewRGBColor(int32(float64(c.R)*a), int32(float64(c.G)*a), int32(float64(c.B)*a))
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
