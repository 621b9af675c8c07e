// Package hull turns a small set of naval-architecture parameters into
// cross-sectional hull profiles. A Generator evaluates longitudinal
// envelope functions (width factor, keel rise, deck sheer) and builds
// ordered half-breadth profiles at arbitrary stations; lofting those
// stations into a surface is the job of pkg/loft.
package hull

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is wrapped by all parameter validation failures.
var ErrInvalidParameters = errors.New("invalid hull parameters")

// Parameters is the immutable record of principal hull dimensions.
// All lengths are in meters. X runs from the stern (0) to the bow
// (Length), Y is transverse half-breadth, Z is vertical from the keel.
type Parameters struct {
	Length float64 `yaml:"length"`
	Beam   float64 `yaml:"beam"`
	Depth  float64 `yaml:"depth"`

	// BilgeRadius is the rounded transition between flat bottom and
	// side. It is clamped per station so it never exceeds the
	// available half-breadth.
	BilgeRadius float64 `yaml:"bilgeRadius"`

	// The parallel midbody is the region of constant full-beam
	// cross-section. The hull tapers toward the stern before
	// ParallelMidbodyStart and toward the bow after ParallelMidbodyEnd.
	ParallelMidbodyStart float64 `yaml:"parallelMidbodyStart"`
	ParallelMidbodyEnd   float64 `yaml:"parallelMidbodyEnd"`

	// BowRakeLength is the length of the bow taper zone, measured back
	// from the stem. SternRakeLength is the length over which the keel
	// rises toward the stern, reaching SternTunnelHeight at x=0.
	BowRakeLength     float64 `yaml:"bowRakeLength"`
	SternRakeLength   float64 `yaml:"sternRakeLength"`
	SternTunnelHeight float64 `yaml:"sternTunnelHeight"`
}

// Validate checks the dimensional and ordering invariants. All
// violations are reported in a single wrapped error; no geometry may be
// built from parameters that fail this check.
func (p Parameters) Validate() error {
	var problems []string

	if p.Length <= 0 {
		problems = append(problems, fmt.Sprintf("length %.4f must be positive", p.Length))
	}
	if p.Beam <= 0 {
		problems = append(problems, fmt.Sprintf("beam %.4f must be positive", p.Beam))
	}
	if p.Depth <= 0 {
		problems = append(problems, fmt.Sprintf("depth %.4f must be positive", p.Depth))
	}
	if p.BilgeRadius < 0 || p.BilgeRadius > p.Beam/2 {
		problems = append(problems, fmt.Sprintf("bilgeRadius %.4f must be in [0, beam/2]", p.BilgeRadius))
	}
	if p.ParallelMidbodyStart <= 0 {
		problems = append(problems, fmt.Sprintf("parallelMidbodyStart %.4f must be positive", p.ParallelMidbodyStart))
	}
	if p.ParallelMidbodyStart >= p.ParallelMidbodyEnd {
		problems = append(problems, fmt.Sprintf("parallelMidbodyStart %.4f must be less than parallelMidbodyEnd %.4f",
			p.ParallelMidbodyStart, p.ParallelMidbodyEnd))
	}
	if p.ParallelMidbodyEnd >= p.Length {
		problems = append(problems, fmt.Sprintf("parallelMidbodyEnd %.4f must be less than length %.4f",
			p.ParallelMidbodyEnd, p.Length))
	}
	if p.BowRakeLength < 0 {
		problems = append(problems, fmt.Sprintf("bowRakeLength %.4f must be non-negative", p.BowRakeLength))
	}
	if p.ParallelMidbodyEnd+p.BowRakeLength > p.Length {
		problems = append(problems, fmt.Sprintf("parallelMidbodyEnd %.4f + bowRakeLength %.4f exceeds length %.4f",
			p.ParallelMidbodyEnd, p.BowRakeLength, p.Length))
	}
	if p.SternRakeLength < 0 {
		problems = append(problems, fmt.Sprintf("sternRakeLength %.4f must be non-negative", p.SternRakeLength))
	}
	if p.SternTunnelHeight < 0 {
		problems = append(problems, fmt.Sprintf("sternTunnelHeight %.4f must be non-negative", p.SternTunnelHeight))
	}
	if p.SternTunnelHeight > 0 && p.SternRakeLength == 0 {
		problems = append(problems, "sternTunnelHeight requires a non-zero sternRakeLength")
	}
	if p.SternTunnelHeight >= p.Depth {
		problems = append(problems, fmt.Sprintf("sternTunnelHeight %.4f must be less than depth %.4f",
			p.SternTunnelHeight, p.Depth))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidParameters, joinProblems(problems))
}

func joinProblems(problems []string) string {
	s := problems[0]
	for _, p := range problems[1:] {
		s += "; " + p
	}
	return s
}

// Style holds the shape-style coefficients of the taper, rise and sheer
// formulas. These are empirically chosen "look right" constants, not
// derived quantities, so they are exposed for tuning rather than fixed.
type Style struct {
	// SternTaperFloor is the width factor at the transom; the stern
	// taper rises from it to 1.0 over [0, ParallelMidbodyStart] with
	// exponent SternTaperExp.
	SternTaperFloor float64 `yaml:"sternTaperFloor"`
	SternTaperExp   float64 `yaml:"sternTaperExp"`

	// BowTaperFloor is the width factor at the stem; the bow taper
	// falls from 1.0 to it over the last BowRakeLength meters with
	// exponent BowTaperExp.
	BowTaperFloor float64 `yaml:"bowTaperFloor"`
	BowTaperExp   float64 `yaml:"bowTaperExp"`

	// KeelRiseExp shapes the stern tunnel rise.
	KeelRiseExp float64 `yaml:"keelRiseExp"`

	// Deck sheer: the deck rises by SternSheerRise over the last
	// SternSheerLength meters toward the transom and by BowSheerRise
	// over the last BowSheerLength meters toward the stem.
	SternSheerRise   float64 `yaml:"sternSheerRise"`
	SternSheerLength float64 `yaml:"sternSheerLength"`
	BowSheerRise     float64 `yaml:"bowSheerRise"`
	BowSheerLength   float64 `yaml:"bowSheerLength"`

	// BilgeClampFraction limits the effective bilge radius to this
	// fraction of the local half-breadth.
	BilgeClampFraction float64 `yaml:"bilgeClampFraction"`
}

// DefaultStyle returns the coefficients used by the reference canal
// barge hull.
func DefaultStyle() Style {
	return Style{
		SternTaperFloor:    0.6,
		SternTaperExp:      0.5,
		BowTaperFloor:      0.1,
		BowTaperExp:        1.5,
		KeelRiseExp:        2.0,
		SternSheerRise:     0.5,
		SternSheerLength:   10.0,
		BowSheerRise:       1.0,
		BowSheerLength:     15.0,
		BilgeClampFraction: 0.9,
	}
}

// Validate checks that the style coefficients are usable.
func (s Style) Validate() error {
	var problems []string

	if s.SternTaperFloor <= 0 || s.SternTaperFloor > 1 {
		problems = append(problems, fmt.Sprintf("sternTaperFloor %.4f must be in (0, 1]", s.SternTaperFloor))
	}
	if s.BowTaperFloor <= 0 || s.BowTaperFloor > 1 {
		problems = append(problems, fmt.Sprintf("bowTaperFloor %.4f must be in (0, 1]", s.BowTaperFloor))
	}
	if s.SternTaperExp <= 0 || s.BowTaperExp <= 0 || s.KeelRiseExp <= 0 {
		problems = append(problems, "taper and rise exponents must be positive")
	}
	if s.SternSheerRise < 0 || s.BowSheerRise < 0 {
		problems = append(problems, "sheer rises must be non-negative")
	}
	if s.SternSheerRise > 0 && s.SternSheerLength <= 0 {
		problems = append(problems, "sternSheerRise requires a positive sternSheerLength")
	}
	if s.BowSheerRise > 0 && s.BowSheerLength <= 0 {
		problems = append(problems, "bowSheerRise requires a positive bowSheerLength")
	}
	if s.BilgeClampFraction <= 0 || s.BilgeClampFraction > 1 {
		problems = append(problems, fmt.Sprintf("bilgeClampFraction %.4f must be in (0, 1]", s.BilgeClampFraction))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidParameters, joinProblems(problems))
}
