package hydro

import (
	"encoding/json"
	"math"
	"os"

	"github.com/chazu/keelson/pkg/mesh"
)

// Report statuses consumed by the case-configuration step.
const (
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Defaults for verification mode: the empirical draft offset observed
// between the static solve and the settled simulation waterline, and
// the allowed mismatch before a run is flagged.
const (
	DefaultDraftOffset    = 0.10
	DefaultDraftTolerance = 0.05
)

// Report is the hydrostatics record handed to the case-configuration
// and verification steps. A REJECTED status means the surface cannot be
// trusted for volume integration: either the integrity checks failed or
// the two volume paths disagree beyond tolerance.
type Report struct {
	Draft             float64    `json:"draft"`
	SubmergedVolume   float64    `json:"submerged_volume"`
	CenterOfBuoyancy  [3]float64 `json:"center_of_buoyancy"`
	TotalVolume       float64    `json:"total_volume"`
	Extents           [3]float64 `json:"extents"`
	Watertight        bool       `json:"watertight"`
	WindingConsistent bool       `json:"winding_consistent"`
	CrossCheckError   float64    `json:"cross_check_error"`
	Status            string     `json:"status"`
}

// BuildReport validates the surface and evaluates both volume paths at
// the given draft. The slice and divergence-theorem volumes are
// compared as a pipeline correctness check, not merely as alternatives.
func BuildReport(m *mesh.Mesh, draft float64) Report {
	integ := m.Validate()

	gaussVol, cb := VolumeByGauss(m, draft)
	sliceVol := VolumeBySlices(m, draft, DefaultSliceCount)

	crossErr := 0.0
	if ref := math.Max(gaussVol, sliceVol); ref > 1e-9 {
		crossErr = math.Abs(gaussVol-sliceVol) / ref
	}

	status := StatusApproved
	if !integ.Ok() || crossErr > CrossCheckTolerance {
		status = StatusRejected
	}

	min, max := m.Bounds()

	return Report{
		Draft:             draft,
		SubmergedVolume:   gaussVol,
		CenterOfBuoyancy:  [3]float64{cb.X, cb.Y, cb.Z},
		TotalVolume:       TotalVolume(m),
		Extents:           [3]float64{max.X - min.X, max.Y - min.Y, max.Z - min.Z},
		Watertight:        integ.Watertight,
		WindingConsistent: integ.WindingConsistent,
		CrossCheckError:   crossErr,
		Status:            status,
	}
}

// Save writes the report as indented JSON.
func (r Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// DraftCheck compares a configured waterline against the computed
// equilibrium draft plus the empirical offset. Both values and the
// delta are always reported so the caller can decide severity; starting
// a time-stepping simulation far from equilibrium produces large
// transients or divergence.
type DraftCheck struct {
	Status          Status  `json:"status"`
	ComputedDraft   float64 `json:"computed_draft"`
	TargetDraft     float64 `json:"target_draft"`
	ConfiguredDraft float64 `json:"configured_draft"`
	Delta           float64 `json:"delta"`
	Tolerance       float64 `json:"tolerance"`
	Pass            bool    `json:"pass"`
}

// VerifyDraft solves the equilibrium draft for targetMass and checks
// the configured waterline against it. A non-OK solve status fails the
// check outright: a hull that cannot float the mass can never match.
func VerifyDraft(m *mesh.Mesh, targetMass, fluidDensity, configuredDraft, offset, tolerance float64) DraftCheck {
	res := SolveDraft(m, targetMass, fluidDensity)

	check := DraftCheck{
		Status:          res.Status,
		ComputedDraft:   res.Draft,
		TargetDraft:     res.Draft + offset,
		ConfiguredDraft: configuredDraft,
		Tolerance:       tolerance,
	}
	check.Delta = math.Abs(configuredDraft - check.TargetDraft)
	check.Pass = res.Status == StatusOK && check.Delta <= tolerance
	return check
}
