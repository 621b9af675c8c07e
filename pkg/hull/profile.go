package hull

import (
	"fmt"
	"math"
)

// Default discretization used by the CLI and the sweep runner.
const (
	DefaultStationCount  = 120
	DefaultProfilePoints = 40
)

// Point is one profile sample: transverse half-breadth and height above
// the baseline.
type Point struct {
	HalfBreadth float64
	Height      float64
}

// Profile is an ordered girth curve from the keel centerline to the
// deck centerline. Every profile of one hull has the same point count
// so lofting can connect corresponding indices between stations.
type Profile []Point

// Station is a longitudinal position with its section profile.
type Station struct {
	X       float64
	Profile Profile
}

// Generator evaluates hull sections. It is immutable and safe for
// concurrent use.
type Generator struct {
	params Parameters
	style  Style
}

// NewGenerator validates the parameters and style and returns a section
// generator. No geometry is ever built from invalid parameters.
func NewGenerator(p Parameters, s Style) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Generator{params: p, style: s}, nil
}

// Params returns the hull parameters the generator was built from.
func (g *Generator) Params() Parameters { return g.params }

// The profile parameter t in [0,1] is split into four arcs. The
// breakpoints are fixed for the whole hull so that a given point index
// stays in the same arc at every station.
const (
	bottomArcEnd = 0.30 // flat bottom: keel center to bilge start
	bilgeArcEnd  = 0.60 // bilge quarter circle
	sideArcEnd   = 0.90 // flat side: bilge end to deck edge
)

// Profile returns the section at x sampled with v points, ordered from
// the keel centerline to the deck centerline. It is continuous in x and
// total for any generator that passed validation; v must be at least 2
// (pkg/loft enforces a practical minimum).
func (g *Generator) Profile(x float64, v int) Profile {
	kz := g.KeelRise(x)
	hb := g.HalfBreadth(x)
	deck := g.params.Depth + g.Sheer(x)

	// Headroom clamp: keep the bilge arc below the deck even for
	// extreme tunnel heights.
	r := math.Min(g.BilgeRadius(x), deck-kz)

	prof := make(Profile, v)
	for i := 0; i < v; i++ {
		t := float64(i) / float64(v-1)
		prof[i] = sectionPoint(t, kz, hb, r, deck)
	}
	// Both seam points sit exactly on the centerline; lofting merges
	// them with their mirrored twins by index, not by tolerance.
	prof[0].HalfBreadth = 0
	prof[v-1].HalfBreadth = 0
	return prof
}

// sectionPoint maps the girth parameter t to a section point using the
// four key points keel (0,kz), bilge start (hb-r,kz), bilge end
// (hb,kz+r) and deck edge (hb,deck).
func sectionPoint(t, kz, hb, r, deck float64) Point {
	switch {
	case t < bottomArcEnd:
		u := t / bottomArcEnd
		return Point{HalfBreadth: u * (hb - r), Height: kz}
	case t < bilgeArcEnd:
		u := (t - bottomArcEnd) / (bilgeArcEnd - bottomArcEnd)
		ang := -math.Pi/2 + u*math.Pi/2
		return Point{
			HalfBreadth: (hb - r) + r*math.Cos(ang),
			Height:      (kz + r) + r*math.Sin(ang),
		}
	case t < sideArcEnd:
		u := (t - bilgeArcEnd) / (sideArcEnd - bilgeArcEnd)
		return Point{HalfBreadth: hb, Height: (kz + r) + u*(deck-kz-r)}
	default:
		u := (t - sideArcEnd) / (1 - sideArcEnd)
		return Point{HalfBreadth: hb * (1 - u), Height: deck}
	}
}

// Stations returns n evenly spaced stations covering [0, Length], each
// with a v-point profile. n is the number of stations, not intervals;
// the first is the transom plane and the last the stem plane.
func (g *Generator) Stations(n, v int) ([]Station, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 stations, got %d", ErrInvalidParameters, n)
	}
	if v < 4 {
		return nil, fmt.Errorf("%w: need at least 4 profile points, got %d", ErrInvalidParameters, v)
	}

	stations := make([]Station, n)
	for i := range stations {
		x := g.params.Length * float64(i) / float64(n-1)
		stations[i] = Station{X: x, Profile: g.Profile(x, v)}
	}
	return stations, nil
}
