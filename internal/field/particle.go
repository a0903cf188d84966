package field

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Particle is a single drifting point. Particles have no identity beyond
// their index in the field.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Color   Color
}

// Count returns the number of particles for a viewport width.
func Count(viewportWidth int) int {
	n := viewportWidth / config.ParticleSpacing
	if n > config.MaxParticles {
		n = config.MaxParticles
	}
	if n < 0 {
		n = 0
	}
	return n
}

func newParticle(rng *rand.Rand, w, h int) Particle {
	return Particle{
		X:       rng.Float64() * float64(w),
		Y:       rng.Float64() * float64(h),
		VX:      (rng.Float64() - 0.5) * 2 * config.MaxSpeed,
		VY:      (rng.Float64() - 0.5) * 2 * config.MaxSpeed,
		Radius:  config.MinRadius + rng.Float64()*(config.MaxRadius-config.MinRadius),
		Opacity: config.MinOpacity + rng.Float64()*(config.MaxOpacity-config.MinOpacity),
		Color:   warmColor(config.HueMin + rng.Float64()*config.HueSpan),
	}
}

// spawn generates the particle set for a w x h viewport.
func spawn(rng *rand.Rand, w, h int) []Particle {
	n := Count(w)
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = newParticle(rng, w, h)
	}
	return ps
}

// Step advances p by its velocity and reflects it off the edges of a
// w x h surface. Each axis is checked independently and the position is
// never clamped. Reflection always points the velocity back inside, so a
// particle left outside a shrunken surface drifts back in.
func (p *Particle) Step(w, h float64) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 {
		p.VX = math.Abs(p.VX)
	} else if p.X > w {
		p.VX = -math.Abs(p.VX)
	}
	if p.Y < 0 {
		p.VY = math.Abs(p.VY)
	} else if p.Y > h {
		p.VY = -math.Abs(p.VY)
	}
}
