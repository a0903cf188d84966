package field

import (
	"image/color"
	"testing"
)

func TestColorNRGBA(t *testing.T) {
	c := Color{R: 255, G: 102, B: 0, A: 0.1}
	tests := []struct {
		global float64
		want   color.NRGBA
	}{
		{1, color.NRGBA{R: 255, G: 102, B: 0, A: 26}},
		{0.5, color.NRGBA{R: 255, G: 102, B: 0, A: 13}},
		{0, color.NRGBA{R: 255, G: 102, B: 0, A: 0}},
		{20, color.NRGBA{R: 255, G: 102, B: 0, A: 255}},
	}
	for _, tt := range tests {
		if got := c.NRGBA(tt.global); got != tt.want {
			t.Errorf("NRGBA(%v) = %+v, want %+v", tt.global, got, tt.want)
		}
	}
}

func TestWarmColorIsOrange(t *testing.T) {
	c := warmColor(30)
	if c.R < 254 || c.G <= c.B {
		t.Errorf("warmColor(30) = %+v, want red-dominant orange", c)
	}
}
