package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSTL(t *testing.T) {
	m := tetrahedron()

	var sb strings.Builder
	if err := m.WriteSTL(&sb, "tetra"); err != nil {
		t.Fatalf("WriteSTL() = %v", err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "solid tetra\n") {
		t.Errorf("output does not start with solid header:\n%s", out)
	}
	if !strings.HasSuffix(out, "endsolid tetra\n") {
		t.Errorf("output does not end with endsolid footer:\n%s", out)
	}
	if got := strings.Count(out, "facet normal"); got != m.TriangleCount() {
		t.Errorf("facet count = %d, want %d", got, m.TriangleCount())
	}
	if got := strings.Count(out, "vertex"); got != 3*m.TriangleCount() {
		t.Errorf("vertex line count = %d, want %d", got, 3*m.TriangleCount())
	}

	// Bottom face {0,2,1} faces straight down.
	if !strings.Contains(out, "facet normal 0.0000 0.0000 -1.0000") {
		t.Errorf("missing downward bottom facet normal:\n%s", out)
	}
	if !strings.Contains(out, "    vertex 1.0000 0.0000 0.0000\n") {
		t.Errorf("missing fixed-precision vertex line:\n%s", out)
	}
}

func TestWriteSTLDegenerateFacet(t *testing.T) {
	m := tetrahedron()
	m.Faces = append(m.Faces, [3]int{0, 0, 1})

	var sb strings.Builder
	if err := m.WriteSTL(&sb, "degen"); err != nil {
		t.Fatalf("WriteSTL() = %v", err)
	}
	if !strings.Contains(sb.String(), "facet normal 0.0000 0.0000 0.0000") {
		t.Error("degenerate facet did not get a zero normal")
	}
}

func TestSaveSTL(t *testing.T) {
	m := tetrahedron()
	path := filepath.Join(t.TempDir(), "tetra.stl")

	if err := m.SaveSTL(path, "tetra"); err != nil {
		t.Fatalf("SaveSTL() = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}
	if !strings.Contains(string(data), "solid tetra") {
		t.Error("saved file missing solid header")
	}
}
