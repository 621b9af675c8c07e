package hydro

import (
	"math"

	"github.com/chazu/keelson/pkg/mesh"
)

// WaterplaneArea returns the area enclosed by the waterline-plane
// section of the hull at height z.
//
// Every triangle crossing the plane contributes one directed segment,
// oriented so the enclosed region lies to its left (the in-plane
// tangent is the outward surface normal rotated a quarter turn). The
// directed segments of a closed mesh form closed loops, so summing the
// signed triangle areas they span from the origin (a fan triangulation
// of the section polygon) yields the enclosed area without having to
// chain the loops explicitly.
func WaterplaneArea(m *mesh.Mesh, z float64) float64 {
	area := 0.0
	for i := range m.Faces {
		ax, ay, bx, by, ok := sectionSegment(m, i, z)
		if !ok {
			continue
		}
		area += 0.5 * (ax*by - bx*ay)
	}
	return math.Abs(area)
}

// sectionSegment intersects triangle i with the plane at height z and
// returns the directed 2D segment (a -> b, region to the left), or
// ok=false when the triangle does not cross the plane.
func sectionSegment(m *mesh.Mesh, i int, z float64) (ax, ay, bx, by float64, ok bool) {
	tri := m.Triangle(i)
	d := [3]float64{tri[0].Z - z, tri[1].Z - z, tri[2].Z - z}

	var px, py [2]float64
	n := 0
	for e := 0; e < 3 && n < 2; e++ {
		a, b := e, (e+1)%3
		// Strictly one endpoint below the plane: an edge touching the
		// plane at a vertex yields the vertex itself via t.
		if (d[a] < 0) == (d[b] < 0) {
			continue
		}
		t := d[a] / (d[a] - d[b])
		px[n] = tri[a].X + t*(tri[b].X-tri[a].X)
		py[n] = tri[a].Y + t*(tri[b].Y-tri[a].Y)
		n++
	}
	if n < 2 {
		return 0, 0, 0, 0, false
	}

	// Orient along the outward normal rotated +90 degrees in plan view.
	nrm := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
	tx, ty := -nrm.Y, nrm.X
	if (px[1]-px[0])*tx+(py[1]-py[0])*ty < 0 {
		return px[1], py[1], px[0], py[0], true
	}
	return px[0], py[0], px[1], py[1], true
}
