package hydro

import (
	"math"
	"testing"

	"github.com/chazu/keelson/pkg/hull"
	"github.com/chazu/keelson/pkg/loft"
	"github.com/chazu/keelson/pkg/mesh"
)

// bargeMesh lofts the reference 135 m canal barge.
func bargeMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	g, err := hull.NewGenerator(hull.Parameters{
		Length:               135.0,
		Beam:                 14.2,
		Depth:                4.0,
		BilgeRadius:          0.8,
		ParallelMidbodyStart: 20.0,
		ParallelMidbodyEnd:   115.0,
		BowRakeLength:        20.0,
		SternRakeLength:      25.0,
		SternTunnelHeight:    1.8,
	}, hull.DefaultStyle())
	if err != nil {
		t.Fatalf("NewGenerator() = %v", err)
	}
	stations, err := g.Stations(hull.DefaultStationCount, hull.DefaultProfilePoints)
	if err != nil {
		t.Fatalf("Stations() = %v", err)
	}
	m, err := loft.Loft(stations)
	if err != nil {
		t.Fatalf("Loft() = %v", err)
	}
	if err := m.Validate().Err(); err != nil {
		t.Fatalf("lofted barge not manifold: %v", err)
	}
	return m
}

func TestBargeTotalVolume(t *testing.T) {
	m := bargeMesh(t)

	vol := TotalVolume(m)
	if vol < 5000 || vol > 8000 {
		t.Errorf("TotalVolume() = %.1f m³, want within [5000, 8000] for a 135 x 14.2 x 4 m barge", vol)
	}
}

func TestBargeEquilibriumDraft(t *testing.T) {
	m := bargeMesh(t)

	// 2010 t of barge and cargo in fresh-brackish water.
	res := SolveDraft(m, 2_010_000, DefaultFluidDensity)
	if res.Status != StatusOK {
		t.Fatalf("Status = %s, want OK", res.Status)
	}
	if res.Draft < 1.0 || res.Draft > 3.0 {
		t.Errorf("Draft = %.3f m, want within [1.0, 3.0]", res.Draft)
	}
	if math.Abs(res.CenterOfBuoyancy.Y) > 0.01 {
		t.Errorf("CB.Y = %.4f, want on the centerplane", res.CenterOfBuoyancy.Y)
	}
	if res.CenterOfBuoyancy.X < 0 || res.CenterOfBuoyancy.X > 135 {
		t.Errorf("CB.X = %.3f outside the hull", res.CenterOfBuoyancy.X)
	}
	if res.CenterOfBuoyancy.Z < 0 || res.CenterOfBuoyancy.Z > res.Draft {
		t.Errorf("CB.Z = %.3f outside [0, draft %.3f]", res.CenterOfBuoyancy.Z, res.Draft)
	}
}

func TestBargeVolumePathsAgree(t *testing.T) {
	m := bargeMesh(t)

	for _, draft := range []float64{0.5, 1.5, 2.5, 3.5} {
		gauss, _ := VolumeByGauss(m, draft)
		slices := VolumeBySlices(m, draft, DefaultSliceCount)
		ref := math.Max(gauss, slices)
		if ref < 1 {
			t.Fatalf("draft %.1f: implausibly small volumes %.3f / %.3f", draft, gauss, slices)
		}
		if rel := math.Abs(gauss-slices) / ref; rel > CrossCheckTolerance {
			t.Errorf("draft %.1f: volume paths disagree by %.4f (gauss %.1f, slices %.1f)",
				draft, rel, gauss, slices)
		}
	}
}

func TestBargeInverseConsistency(t *testing.T) {
	m := bargeMesh(t)

	for _, mass := range []float64{500_000, 2_010_000, 4_000_000} {
		res := SolveDraft(m, mass, DefaultFluidDensity)
		if res.Status != StatusOK {
			t.Fatalf("mass %.0f: Status = %s, want OK", mass, res.Status)
		}
		vol := VolumeBySlices(m, res.Draft, DefaultSliceCount)
		if rel := math.Abs(vol*DefaultFluidDensity-mass) / mass; rel > 1e-3 {
			t.Errorf("mass %.0f: displacement at solved draft off by %.5f relative", mass, rel)
		}
	}
}

func TestBargeReportApproved(t *testing.T) {
	m := bargeMesh(t)

	res := SolveDraft(m, 2_010_000, DefaultFluidDensity)
	if res.Status != StatusOK {
		t.Fatalf("Status = %s, want OK", res.Status)
	}
	r := BuildReport(m, res.Draft)
	if r.Status != StatusApproved {
		t.Errorf("report Status = %s (cross error %.4f), want APPROVED", r.Status, r.CrossCheckError)
	}
}

func TestBargeVolumeMonotonicInDraft(t *testing.T) {
	m := bargeMesh(t)

	prev := -1.0
	for draft := 0.2; draft <= 3.8; draft += 0.2 {
		vol := VolumeBySlices(m, draft, 100)
		if vol < prev {
			t.Fatalf("submerged volume decreasing at draft %.1f", draft)
		}
		prev = vol
	}
}
