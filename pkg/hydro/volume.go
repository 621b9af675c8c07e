// Package hydro computes displaced volume and center of buoyancy for a
// validated hull surface at a given waterline, and inverts that
// relation to find the draft at which a target mass floats.
//
// Two independent volume paths are kept deliberately separate: slice
// integration of waterplane areas and a surface integral via the
// divergence theorem. On a well-formed closed mesh they agree within a
// percent; disagreement means the lofting or capping stage produced a
// closed-but-wrong surface, which no single method would catch alone.
package hydro

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/keelson/pkg/mesh"
)

const (
	// DefaultSliceCount is the number of waterplane levels sampled by
	// the slice-integration path and the draft solver.
	DefaultSliceCount = 200

	// DefaultFluidDensity is seawater, kg/m^3.
	DefaultFluidDensity = 1025.0

	// CrossCheckTolerance is the allowed relative disagreement between
	// the two volume paths.
	CrossCheckTolerance = 0.01
)

// VolumeBySlices integrates waterplane areas from the hull's lowest
// point up to draft with the midpoint rule over n levels. The result
// is non-decreasing in draft since areas are non-negative.
func VolumeBySlices(m *mesh.Mesh, draft float64, n int) float64 {
	min, _ := m.Bounds()
	if draft <= min.Z {
		return 0
	}
	if n < 2 {
		n = 2
	}
	vols := cumulativeVolumes(m, linspace(min.Z, draft, n))
	return vols[len(vols)-1]
}

// cumulativeVolumes returns the running midpoint-rule integral of
// waterplane area over the given ascending z levels. Midpoints never
// coincide with the keel or deck planes, where the section degenerates
// to a zero-area boundary case.
func cumulativeVolumes(m *mesh.Mesh, zs []float64) []float64 {
	vols := make([]float64, len(zs))
	for i := 1; i < len(zs); i++ {
		area := WaterplaneArea(m, 0.5*(zs[i-1]+zs[i]))
		vols[i] = vols[i-1] + area*(zs[i]-zs[i-1])
	}
	return vols
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

// VolumeByGauss computes the submerged volume and center of buoyancy at
// the given draft by the divergence theorem: the flux of (0,0,z)
// through the submerged shell plus the waterplane cap equals the
// enclosed volume, and the fluxes of (x²/2,0,0), (y²/2,0,0) and
// (0,0,z²/2) give the volume moments. Surface triangles are clipped at
// the waterline; the cap term is draft times the waterplane area.
func VolumeByGauss(m *mesh.Mesh, draft float64) (volume float64, centerOfBuoyancy v3.Vec) {
	var vol, mx, my, mz float64

	var clipped [4]v3.Vec
	for i := range m.Faces {
		tri := m.Triangle(i)
		n := clipBelow(tri, draft, &clipped)
		for k := 2; k < n; k++ {
			v, x, y, z := triangleFlux(clipped[0], clipped[k-1], clipped[k])
			vol += v
			mx += x
			my += y
			mz += z
		}
	}

	capArea := WaterplaneArea(m, draft)
	vol += draft * capArea
	mz += draft * draft / 2 * capArea
	// The cap normal is vertical, so it carries no x or y moment flux.

	if vol <= 1e-12 {
		return 0, v3.Vec{}
	}
	return vol, v3.Vec{X: mx / vol, Y: my / vol, Z: mz / vol}
}

// TotalVolume returns the volume enclosed by the whole mesh.
func TotalVolume(m *mesh.Mesh) float64 {
	var vol float64
	for i := range m.Faces {
		tri := m.Triangle(i)
		v, _, _, _ := triangleFlux(tri[0], tri[1], tri[2])
		vol += v
	}
	return vol
}

// triangleFlux returns the volume and moment flux contributions of one
// outward-wound triangle. The volume integrand is linear, so the
// centroid value is exact; the moment integrands are quadratic, so the
// edge-midpoint rule is exact for them.
func triangleFlux(a, b, c v3.Vec) (vol, mx, my, mz float64) {
	n := b.Sub(a).Cross(c.Sub(a)) // outward normal times twice the area

	cz := (a.Z + b.Z + c.Z) / 3
	vol = n.Z / 2 * cz

	m0 := a.Add(b).DivScalar(2)
	m1 := b.Add(c).DivScalar(2)
	m2 := c.Add(a).DivScalar(2)
	mx = n.X / 2 / 3 * (m0.X*m0.X + m1.X*m1.X + m2.X*m2.X) / 2
	my = n.Y / 2 / 3 * (m0.Y*m0.Y + m1.Y*m1.Y + m2.Y*m2.Y) / 2
	mz = n.Z / 2 / 3 * (m0.Z*m0.Z + m1.Z*m1.Z + m2.Z*m2.Z) / 2
	return vol, mx, my, mz
}

// clipBelow clips a triangle against the half-space z <= limit and
// writes the resulting polygon (at most 4 vertices, winding preserved)
// into out, returning the vertex count.
func clipBelow(tri [3]v3.Vec, limit float64, out *[4]v3.Vec) int {
	n := 0
	for i := 0; i < 3; i++ {
		cur, next := tri[i], tri[(i+1)%3]
		curIn, nextIn := cur.Z <= limit, next.Z <= limit

		if curIn {
			out[n] = cur
			n++
		}
		if curIn != nextIn {
			t := (limit - cur.Z) / (next.Z - cur.Z)
			out[n] = cur.Add(next.Sub(cur).MulScalar(t))
			n++
		}
	}
	return n
}
