package hull

import "math"

// The envelope functions reduce the hull form to three scalars per
// station: how wide the section is, how far the keel has risen off the
// baseline, and how far the deck has risen above the nominal depth.
// Each is a pure function of x so they can be tested in isolation.

// WidthFactor returns the section width multiplier at x, in (0, 1].
// It is 1.0 across the parallel midbody, tapers to SternTaperFloor at
// the transom and to BowTaperFloor at the stem. The function is
// non-decreasing up to the parallel midbody and non-increasing after it.
func (g *Generator) WidthFactor(x float64) float64 {
	p, s := g.params, g.style

	bowTaperStart := p.Length - p.BowRakeLength
	switch {
	case x < p.ParallelMidbodyStart:
		t := clamp01(x / p.ParallelMidbodyStart)
		return s.SternTaperFloor + (1-s.SternTaperFloor)*math.Pow(t, s.SternTaperExp)
	case x > bowTaperStart && p.BowRakeLength > 0:
		t := clamp01((p.Length - x) / p.BowRakeLength)
		return s.BowTaperFloor + (1-s.BowTaperFloor)*math.Pow(t, s.BowTaperExp)
	default:
		return 1.0
	}
}

// KeelRise returns the height of the keel above the baseline at x.
// Zero outside [0, SternRakeLength]; inside, it rises smoothly to
// SternTunnelHeight at the transom.
func (g *Generator) KeelRise(x float64) float64 {
	p := g.params
	if p.SternRakeLength <= 0 || x >= p.SternRakeLength {
		return 0
	}
	t := clamp01((p.SternRakeLength - x) / p.SternRakeLength)
	return p.SternTunnelHeight * math.Pow(t, g.style.KeelRiseExp)
}

// Sheer returns the deck rise above the nominal depth at x. The deck
// sweeps up toward both ends; amidships it is zero.
func (g *Generator) Sheer(x float64) float64 {
	p, s := g.params, g.style

	rise := 0.0
	if s.SternSheerRise > 0 && x < s.SternSheerLength {
		t := clamp01((s.SternSheerLength - x) / s.SternSheerLength)
		rise += s.SternSheerRise * t * t
	}
	bowStart := p.Length - s.BowSheerLength
	if s.BowSheerRise > 0 && x > bowStart {
		t := clamp01((x - bowStart) / s.BowSheerLength)
		rise += s.BowSheerRise * t * t
	}
	return rise
}

// HalfBreadth returns the effective half-breadth at x.
func (g *Generator) HalfBreadth(x float64) float64 {
	return g.params.Beam / 2 * g.WidthFactor(x)
}

// BilgeRadius returns the effective bilge radius at x. The nominal
// radius is clamped to a fraction of the local half-breadth so the arc
// never exceeds the available section width. This clamp is required,
// not cosmetic: without it, tapered sections near the stem would fold
// the bilge arc through the centerline.
func (g *Generator) BilgeRadius(x float64) float64 {
	return math.Min(g.params.BilgeRadius, g.style.BilgeClampFraction*g.HalfBreadth(x))
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
