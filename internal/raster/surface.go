// Package raster draws the particle field in software, for headless
// rendering and PNG export.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/iburimskiy/particle-field/internal/field"
)

const circleSegments = 24

// Surface is a field.Surface backed by an *image.NRGBA. Each shape is
// rasterized within its own pixel bounds, so a dot or a link costs in
// proportion to its size rather than the image's.
type Surface struct {
	img   *image.NRGBA
	rast  *vector.Rasterizer
	alpha float64
	path  []point
}

type point struct{ x, y float64 }

func NewSurface(w, h int) *Surface {
	s := &Surface{alpha: 1, rast: &vector.Rasterizer{}}
	s.SetSize(w, h)
	return s
}

func (s *Surface) Image() *image.NRGBA { return s.img }

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) SetSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if s.img != nil {
		if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
	}
	s.img = image.NewNRGBA(image.Rect(0, 0, w, h))
}

func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (s *Surface) SetGlobalAlpha(a float64) { s.alpha = a }

func (s *Surface) FillCircle(x, y, r float64, c field.Color) {
	if r <= 0 {
		return
	}
	s.path = s.path[:0]
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		s.path = append(s.path, point{x + r*math.Cos(a), y + r*math.Sin(a)})
	}
	s.fill(c)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c field.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return
	}
	// Quad around the segment, offset by half the width along the normal.
	nx, ny := -dy/l*width/2, dx/l*width/2
	s.path = append(s.path[:0],
		point{x0 + nx, y0 + ny},
		point{x1 + nx, y1 + ny},
		point{x1 - nx, y1 - ny},
		point{x0 - nx, y0 - ny},
	)
	s.fill(c)
}

// fill rasterizes the closed polygon in s.path, clipped to the image.
func (s *Surface) fill(c field.Color) {
	r := pathBounds(s.path).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.rast.Reset(r.Dx(), r.Dy())
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	for i, p := range s.path {
		if i == 0 {
			s.rast.MoveTo(float32(p.x-ox), float32(p.y-oy))
		} else {
			s.rast.LineTo(float32(p.x-ox), float32(p.y-oy))
		}
	}
	s.rast.ClosePath()
	s.rast.Draw(s.img, r, image.NewUniform(c.NRGBA(s.alpha)), image.Point{})
}

// pathBounds returns the smallest integer rectangle covering pts.
func pathBounds(pts []point) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY := pts[0].x, pts[0].y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// Composite flattens a field layer over the page background: the vignette
// and the layer are blended in with the given fade opacity.
func Composite(layer *image.NRGBA, bg color.Color, fade float64) *image.RGBA {
	b := layer.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(bg), image.Point{}, draw.Src)

	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(clamp01(fade) * 255))})
	draw.DrawMask(dst, b, field.Vignette(b.Dx(), b.Dy()), image.Point{}, mask, image.Point{}, draw.Over)
	draw.DrawMask(dst, b, layer, b.Min, mask, image.Point{}, draw.Over)
	return dst
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
