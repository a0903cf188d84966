package field

import (
	"io"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Stats describes the last rendered frame.
type Stats struct {
	Frames    uint64
	Particles int
	Links     int
}

// Field is the ambient particle backdrop. It owns its particles for the
// lifetime of one mount. The zero value is not usable; call New.
type Field struct {
	rng    *rand.Rand
	index  neighbours
	logger *log.Logger

	host         Host
	surface      Surface
	particles    []Particle
	frame        FrameID
	scheduled    bool
	removeResize func()
	mounted      bool
	mountedAt    time.Time

	cands []int
	stats Stats
}

// Option configures a Field at construction.
type Option func(*Field)

// WithRand sets the random source used to generate particles.
func WithRand(r *rand.Rand) Option {
	return func(f *Field) { f.rng = r }
}

// WithLinkIndex selects the neighbour search used for proximity links.
func WithLinkIndex(ix LinkIndex) Option {
	return func(f *Field) { f.index = newNeighbours(ix) }
}

// WithLogger sets the logger for lifecycle messages. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(f *Field) { f.logger = l }
}

// New returns an unmounted field. Without WithRand it seeds a PCG source
// from the clock.
func New(opts ...Option) *Field {
	f := &Field{
		index:  allPairs{},
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		seed := uint64(time.Now().UnixNano())
		f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return f
}

// Mount attaches the field to h and starts animating. When h has no
// drawing surface the field stays inert. Mounting an already mounted
// field does nothing.
func (f *Field) Mount(h Host) {
	if f.mounted {
		return
	}
	s, ok := h.Surface()
	if !ok || s == nil {
		f.logger.Printf("no drawing surface, particle field disabled")
		return
	}

	w, ht := h.Viewport()
	s.SetSize(w, ht)

	f.host = h
	f.surface = s
	f.removeResize = h.OnResize(f.resize)
	f.particles = spawn(f.rng, w, ht)
	f.mounted = true
	f.mountedAt = time.Now()
	f.stats = Stats{Particles: len(f.particles)}
	f.logger.Printf("mounted %d particles on %dx%d", len(f.particles), w, ht)

	f.schedule()
}

// Unmount stops the animation and releases the host. It is safe to call
// more than once, and without a prior Mount.
func (f *Field) Unmount() {
	if f.removeResize != nil {
		f.removeResize()
		f.removeResize = nil
	}
	if f.scheduled && f.host != nil {
		f.host.CancelFrame(f.frame)
	}
	f.scheduled = false
	f.frame = 0
	f.host = nil
	f.surface = nil
	f.particles = nil
	f.mounted = false
}

func (f *Field) Mounted() bool {
	return f.mounted
}

// Elapsed returns the time since the field was mounted.
func (f *Field) Elapsed() time.Duration {
	if !f.mounted {
		return 0
	}
	return time.Since(f.mountedAt)
}

func (f *Field) Stats() Stats {
	return f.stats
}

// resize only changes the surface dimensions; particles keep their
// positions and count.
func (f *Field) resize(w, h int) {
	if f.surface != nil {
		f.surface.SetSize(w, h)
	}
}

func (f *Field) schedule() {
	f.frame = f.host.RequestFrame(f.render)
	f.scheduled = true
}

// render draws one frame and requests the next. The surface may call
// Unmount from inside a draw call; the frame then stops at that point and
// nothing is rescheduled.
func (f *Field) render() {
	f.scheduled = false
	if !f.mounted {
		return
	}

	s := f.surface
	ps := f.particles
	w, h := s.Size()
	s.Clear()

	f.index.build(ps)
	links := 0
	for i := range ps {
		p := &ps[i]
		p.Step(float64(w), float64(h))

		s.SetGlobalAlpha(p.Opacity)
		s.FillCircle(p.X, p.Y, p.Radius, p.Color)
		if !f.mounted {
			return
		}

		f.cands = f.index.candidates(ps, i, f.cands[:0])
		for _, j := range f.cands {
			q := &ps[j]
			a, ok := LinkAlpha(math.Hypot(p.X-q.X, p.Y-q.Y))
			if !ok {
				continue
			}
			s.StrokeLine(p.X, p.Y, q.X, q.Y, config.LinkWidth, fromRGBA(config.LinkColor).WithAlpha(a))
			if !f.mounted {
				return
			}
			links++
		}
	}
	s.SetGlobalAlpha(1)

	f.stats.Frames++
	f.stats.Particles = len(ps)
	f.stats.Links = links

	if f.mounted && !f.scheduled {
		f.schedule()
	}
}
