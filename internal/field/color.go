package field

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/iburimskiy/particle-field/internal/config"
)

// Color is an sRGB colour with a straight (non-premultiplied) alpha in [0, 1].
// Alpha stays a float so faint link strokes are not quantized before the
// surface combines them with its global alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

func fromRGBA(c color.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: float64(c.A) / 255}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA flattens c under a global alpha, the way a canvas combines
// globalAlpha with a fill or stroke style.
func (c Color) NRGBA(global float64) color.NRGBA {
	a := clamp01(c.A * global)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// warmColor returns hsl(hue, 100%, 70%).
func warmColor(hue float64) Color {
	r, g, b, err := colorconv.HSLToRGB(math.Mod(hue, 360), config.Saturation, config.Lightness)
	if err != nil {
		return fromRGBA(config.LinkColor)
	}
	return Color{R: r, G: g, B: b, A: 1}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
