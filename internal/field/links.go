package field

import (
	"math"
	"sort"

	"github.com/iburimskiy/particle-field/internal/config"
)

// LinkAlpha returns the stroke alpha of a link between two particles at
// distance d, and false when they are too far apart to be linked.
func LinkAlpha(d float64) (float64, bool) {
	if d >= config.LinkDistance {
		return 0, false
	}
	return config.LinkMaxAlpha * (1 - d/config.LinkDistance), true
}

// LinkIndex selects how link candidates are found each frame.
type LinkIndex int

const (
	// BruteForce checks every ordered pair.
	BruteForce LinkIndex = iota
	// Grid bins particles into cells of about the link distance and only
	// checks neighbouring cells.
	Grid
)

func (ix LinkIndex) String() string {
	switch ix {
	case BruteForce:
		return "brute-force"
	case Grid:
		return "grid"
	default:
		return "unknown"
	}
}

type neighbours interface {
	// build indexes positions at the start of a frame.
	build(ps []Particle)
	// candidates appends every j != i that may lie within link distance
	// of particle i, in ascending order.
	candidates(ps []Particle, i int, dst []int) []int
}

func newNeighbours(ix LinkIndex) neighbours {
	if ix == Grid {
		return &grid{cells: map[cell][]int{}}
	}
	return allPairs{}
}

type allPairs struct{}

func (allPairs) build([]Particle) {}

func (allPairs) candidates(ps []Particle, i int, dst []int) []int {
	for j := range ps {
		if j != i {
			dst = append(dst, j)
		}
	}
	return dst
}

// gridSlack covers how far a particle can move within one frame after the
// grid was built, so that no pair under the link distance is missed.
const gridSlack = 2 * config.MaxSpeed * math.Sqrt2

type cell struct{ x, y int }

type grid struct {
	size  float64
	cells map[cell][]int
}

func (g *grid) cellOf(x, y float64) cell {
	return cell{int(math.Floor(x / g.size)), int(math.Floor(y / g.size))}
}

func (g *grid) build(ps []Particle) {
	g.size = config.LinkDistance + gridSlack
	for k, v := range g.cells {
		g.cells[k] = v[:0]
	}
	for i, p := range ps {
		c := g.cellOf(p.X, p.Y)
		g.cells[c] = append(g.cells[c], i)
	}
}

func (g *grid) candidates(ps []Particle, i int, dst []int) []int {
	start := len(dst)
	c := g.cellOf(ps[i].X, ps[i].Y)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for _, j := range g.cells[cell{c.x + dx, c.y + dy}] {
				if j != i {
					dst = append(dst, j)
				}
			}
		}
	}
	sort.Ints(dst[start:])
	return dst
}
