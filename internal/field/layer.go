package field

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/particle-field/internal/config"
)

// FadeIn returns the layer opacity at elapsed time since mount, easing out
// from 0 to 1 over config.FadeInDuration.
func FadeIn(elapsed time.Duration) float64 {
	t := clamp01(float64(elapsed) / float64(config.FadeInDuration))
	return 1 - math.Pow(1-t, 3)
}

// Vignette renders the layer background: transparent at the centre,
// darkening to config.VignetteAlpha black at the corners.
func Vignette(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		dy := (float64(y) + 0.5 - cy) / cy
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - cx) / cx
			t := clamp01(math.Sqrt(dx*dx+dy*dy) / math.Sqrt2)
			img.SetNRGBA(x, y, color.NRGBA{A: uint8(math.Round(t * config.VignetteAlpha * 255))})
		}
	}
	return img
}
