package mesh

import (
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// tetrahedron returns a closed, outward-wound test mesh.
func tetrahedron() *Mesh {
	return New(
		[]v3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		[][3]int{
			{0, 2, 1},
			{0, 1, 3},
			{0, 3, 2},
			{1, 2, 3},
		},
	)
}

func TestMeshCounts(t *testing.T) {
	m := tetrahedron()
	if got := m.VertexCount(); got != 4 {
		t.Errorf("VertexCount() = %d, want 4", got)
	}
	if got := m.TriangleCount(); got != 4 {
		t.Errorf("TriangleCount() = %d, want 4", got)
	}
	if m.IsEmpty() {
		t.Error("IsEmpty() = true for tetrahedron, want false")
	}
}

func TestMeshIsEmpty(t *testing.T) {
	if !New(nil, nil).IsEmpty() {
		t.Error("IsEmpty() = false for empty mesh, want true")
	}
	if !New([]v3.Vec{{X: 1}}, nil).IsEmpty() {
		t.Error("IsEmpty() = false for mesh without faces, want true")
	}
}

func TestMeshTriangle(t *testing.T) {
	m := tetrahedron()
	// Faces surface as the sdfx triangle type so downstream code can
	// use its methods directly.
	var tri sdf.Triangle3 = m.Triangle(1) // face {0, 1, 3}
	want := [3]v3.Vec{{}, {X: 1}, {Z: 1}}
	for i := range want {
		if tri[i] != want[i] {
			t.Errorf("Triangle(1)[%d] = %v, want %v", i, tri[i], want[i])
		}
	}
}

func TestMeshBounds(t *testing.T) {
	m := tetrahedron()
	min, max := m.Bounds()
	if (min != v3.Vec{}) {
		t.Errorf("Bounds() min = %v, want origin", min)
	}
	if (max != v3.Vec{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Bounds() max = %v, want (1,1,1)", max)
	}

	min, max = New(nil, nil).Bounds()
	if (min != v3.Vec{}) || (max != v3.Vec{}) {
		t.Errorf("Bounds() of empty mesh = %v, %v, want zeros", min, max)
	}
}
