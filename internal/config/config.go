package config

import (
	"fmt"
	"image/color"
	"time"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	TPS           = 60

	// Particle generation
	ParticleSpacing = 20 // one particle per this many pixels of viewport width
	MaxParticles    = 100
	MaxSpeed        = 0.25
	MinRadius       = 1.0
	MaxRadius       = 4.0
	MinOpacity      = 0.1
	MaxOpacity      = 0.6

	// Warm hue band, degrees
	HueMin     = 15.0
	HueSpan    = 60.0
	Saturation = 1.0
	Lightness  = 0.7

	// Proximity links
	LinkDistance = 100.0
	LinkMaxAlpha = 0.1
	LinkWidth    = 0.5

	// Layer compositing
	FadeInDuration = 2 * time.Second
	VignetteAlpha  = 0.3

	// Terminal backend: virtual pixels per cell
	TerminalCellWidth  = 8
	TerminalCellHeight = 16
	TerminalLinkGain   = 6.0

	DefaultFrames = 120
)

var (
	LinkColor      = color.RGBA{R: 0xFF, G: 0x66, B: 0x00, A: 0xFF}
	PageBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Backend selects the host that drives the field.
type Backend string

const (
	BackendWindow   Backend = "window"
	BackendTerminal Backend = "terminal"
	BackendSDL      Backend = "sdl"
	BackendHeadless Backend = "headless"
)

// Run is the command-line run configuration.
type Run struct {
	Backend Backend
	Width   int
	Height  int
	Frames  int
	Out     string
	Seed    uint64
	Grid    bool
	Debug   bool
}

func Default() Run {
	return Run{
		Backend: BackendWindow,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Frames:  DefaultFrames,
		Out:     "field.png",
	}
}

func (r Run) Validate() error {
	switch r.Backend {
	case BackendWindow, BackendTerminal, BackendSDL, BackendHeadless:
	default:
		return fmt.Errorf("unknown backend %q", r.Backend)
	}
	if r.Backend != BackendTerminal && (r.Width <= 0 || r.Height <= 0) {
		return fmt.Errorf("invalid viewport %dx%d", r.Width, r.Height)
	}
	if r.Backend == BackendHeadless {
		if r.Frames <= 0 {
			return fmt.Errorf("invalid frame count: %d", r.Frames)
		}
		if r.Out == "" {
			return fmt.Errorf("headless backend needs an output path")
		}
	}
	return nil
}
