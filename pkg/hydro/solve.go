package hydro

import (
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/keelson/pkg/mesh"
)

// Status classifies the outcome of an equilibrium query. Out-of-range
// targets are valid analysis outcomes ("this hull cannot float this
// cargo"), not errors, so they are reported as statuses.
type Status string

const (
	StatusOK Status = "OK"

	// StatusBelowMinimum: the target displacement is below the first
	// sampled volume; the hull floats at (or above) its lowest point.
	StatusBelowMinimum Status = "BELOW_MIN"

	// StatusOverloaded: the target displacement exceeds the hull's
	// total enclosed volume; no equilibrium exists within the envelope.
	StatusOverloaded Status = "OVERLOADED"
)

// Result is one equilibrium query outcome, recomputed per query and
// never cached across drafts.
type Result struct {
	Status           Status  `json:"status"`
	Draft            float64 `json:"draft"`
	SubmergedVolume  float64 `json:"submerged_volume"`
	CenterOfBuoyancy v3.Vec  `json:"center_of_buoyancy"`
}

// SolveDraft finds the waterline at which targetMass floats in
// equilibrium, using DefaultSliceCount volume samples.
func SolveDraft(m *mesh.Mesh, targetMass, fluidDensity float64) Result {
	return SolveDraftN(m, targetMass, fluidDensity, DefaultSliceCount)
}

// SolveDraftN samples the submerged volume at n waterline levels over
// the hull's vertical extent and inverts volume(draft) by bracketing
// the target in the precomputed non-decreasing sequence and
// interpolating linearly within the bracket. Volume is monotonic in
// draft by construction, so the bracket is unique.
func SolveDraftN(m *mesh.Mesh, targetMass, fluidDensity float64, n int) Result {
	min, max := m.Bounds()
	if n < 2 {
		n = 2
	}

	targetVol := targetMass / fluidDensity
	zs := linspace(min.Z, max.Z, n)
	vols := cumulativeVolumes(m, zs)

	if targetVol <= vols[0] {
		return Result{Status: StatusBelowMinimum, Draft: min.Z}
	}
	if targetVol > vols[len(vols)-1] {
		return Result{Status: StatusOverloaded, Draft: max.Z, SubmergedVolume: vols[len(vols)-1]}
	}

	hi := sort.SearchFloat64s(vols, targetVol)
	lo := hi - 1
	draft := zs[hi]
	if vols[hi] > vols[lo] {
		frac := (targetVol - vols[lo]) / (vols[hi] - vols[lo])
		draft = zs[lo] + frac*(zs[hi]-zs[lo])
	}

	_, cb := VolumeByGauss(m, draft)
	return Result{
		Status:           StatusOK,
		Draft:            draft,
		SubmergedVolume:  targetVol,
		CenterOfBuoyancy: cb,
	}
}
