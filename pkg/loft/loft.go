// Package loft skins an ordered list of hull stations into a closed,
// watertight triangle mesh. The starboard half-shell is built by
// connecting consecutive stations quad by quad, mirrored across the
// centerplane, and capped at the transom and stem planes. Centerline
// vertices are shared by index between the two halves, so the keel and
// deck seams are closed by construction rather than by tolerance-based
// vertex welding.
package loft

import (
	"errors"
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/keelson/pkg/hull"
	"github.com/chazu/keelson/pkg/mesh"
)

// ErrInvalidStations is wrapped by all station-set rejections.
var ErrInvalidStations = errors.New("loft: invalid station set")

// Loft builds the closed hull surface from the given stations. The
// stations must be ordered by strictly increasing x, share one profile
// point count of at least 4, and every profile must start and end
// exactly on the centerline. The result has outward-facing normals and
// is a single closed genus-0 surface; callers should still confirm
// that with mesh.Validate before integrating volumes.
func Loft(stations []hull.Station) (*mesh.Mesh, error) {
	if err := checkStations(stations); err != nil {
		return nil, err
	}

	s := len(stations)
	v := len(stations[0].Profile)

	// Starboard vertices first (s*v), then the mirrored port interior
	// (s*(v-2)): the two centerline points of every station are shared,
	// not duplicated.
	verts := make([]v3.Vec, 0, s*v+s*(v-2))
	for _, st := range stations {
		for _, p := range st.Profile {
			verts = append(verts, v3.Vec{X: st.X, Y: p.HalfBreadth, Z: p.Height})
		}
	}
	portBase := len(verts)
	for _, st := range stations {
		for _, p := range st.Profile[1 : v-1] {
			verts = append(verts, v3.Vec{X: st.X, Y: -p.HalfBreadth, Z: p.Height})
		}
	}

	sb := func(i, j int) int { return i*v + j }
	pt := func(i, j int) int {
		if j == 0 || j == v-1 {
			return sb(i, j) // shared centerline vertex
		}
		return portBase + i*(v-2) + (j - 1)
	}

	faces := make([][3]int, 0, 4*(s-1)*(v-1)+4*(v-2))

	// Starboard shell, then its mirror with reversed winding.
	for i := 0; i < s-1; i++ {
		for j := 0; j < v-1; j++ {
			faces = append(faces,
				[3]int{sb(i, j), sb(i+1, j+1), sb(i+1, j)},
				[3]int{sb(i, j), sb(i, j+1), sb(i+1, j+1)},
				[3]int{pt(i, j), pt(i+1, j), pt(i+1, j+1)},
				[3]int{pt(i, j), pt(i+1, j+1), pt(i, j+1)},
			)
		}
	}

	// End caps. The station boundary is a single closed polygon on a
	// vertical plane; a ladder triangulation between the starboard and
	// port chains closes it without leaks. The rungs touching the
	// shared centerline vertices collapse to one triangle each.
	for j := 0; j < v-1; j++ {
		// Transom cap at x = stations[0].X, outward -x.
		s0, s1 := sb(0, j), sb(0, j+1)
		p0, p1 := pt(0, j), pt(0, j+1)
		if j != 0 {
			faces = append(faces, [3]int{s1, s0, p0})
		}
		if j != v-2 {
			faces = append(faces, [3]int{s1, p0, p1})
		}

		// Stem cap at x = stations[s-1].X, outward +x.
		s0, s1 = sb(s-1, j), sb(s-1, j+1)
		p0, p1 = pt(s-1, j), pt(s-1, j+1)
		if j != v-2 {
			faces = append(faces, [3]int{s1, p1, p0})
		}
		if j != 0 {
			faces = append(faces, [3]int{s1, p0, s0})
		}
	}

	return mesh.New(verts, faces), nil
}

func checkStations(stations []hull.Station) error {
	if len(stations) < 2 {
		return fmt.Errorf("%w: need at least 2 stations, got %d", ErrInvalidStations, len(stations))
	}

	v := len(stations[0].Profile)
	if v < 4 {
		return fmt.Errorf("%w: need at least 4 profile points, got %d", ErrInvalidStations, v)
	}

	for i, st := range stations {
		if len(st.Profile) != v {
			return fmt.Errorf("%w: station %d has %d profile points, want %d",
				ErrInvalidStations, i, len(st.Profile), v)
		}
		if i > 0 && st.X <= stations[i-1].X {
			return fmt.Errorf("%w: station %d at x=%.4f does not advance past x=%.4f",
				ErrInvalidStations, i, st.X, stations[i-1].X)
		}
		if st.Profile[0].HalfBreadth != 0 || st.Profile[v-1].HalfBreadth != 0 {
			return fmt.Errorf("%w: station %d profile does not close to the centerline",
				ErrInvalidStations, i)
		}
	}
	return nil
}
