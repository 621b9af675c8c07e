// Package mesh defines the triangulated hull surface, its integrity
// checks and its STL export. A Mesh owns its vertex and face buffers
// exclusively; it is produced once by lofting and never mutated after.
package mesh

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Mesh is an indexed triangle mesh. Vertices are shared between faces;
// the face winding is counter-clockwise seen from outside. Callers must
// treat both buffers as read-only.
type Mesh struct {
	Vertices []v3.Vec
	Faces    [][3]int
}

// New wraps vertex and face buffers in a Mesh. The mesh takes ownership
// of both slices.
func New(vertices []v3.Vec, faces [][3]int) *Mesh {
	return &Mesh{Vertices: vertices, Faces: faces}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Faces) == 0
}

// Triangle returns face i as a sdf.Triangle3.
func (m *Mesh) Triangle(i int) sdf.Triangle3 {
	f := m.Faces[i]
	return sdf.Triangle3{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// Bounds returns the axis-aligned bounding box.
func (m *Mesh) Bounds() (min, max v3.Vec) {
	if len(m.Vertices) == 0 {
		return v3.Vec{}, v3.Vec{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}
