package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteSTL writes the mesh as a single ASCII STL solid block. The
// format (facet normal + three vertex triples) is the triangle-soup
// surface consumed by the external meshing and CFD tooling.
func (m *Mesh) WriteSTL(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "solid %s\n", name); err != nil {
		return err
	}
	for i := range m.Faces {
		tri := m.Triangle(i)

		// Zero normal for degenerate facets; most STL consumers
		// recompute normals from the winding anyway.
		n := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
		if l := n.Length(); l > 1e-12 {
			n = n.DivScalar(l)
		}

		fmt.Fprintf(bw, "facet normal %.4f %.4f %.4f\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "  outer loop\n")
		for j := 0; j < 3; j++ {
			fmt.Fprintf(bw, "    vertex %.4f %.4f %.4f\n", tri[j].X, tri[j].Y, tri[j].Z)
		}
		fmt.Fprintf(bw, "  endloop\n")
		fmt.Fprintf(bw, "endfacet\n")
	}
	if _, err := fmt.Fprintf(bw, "endsolid %s\n", name); err != nil {
		return err
	}

	return bw.Flush()
}

// SaveSTL writes the mesh to path as ASCII STL.
func (m *Mesh) SaveSTL(path, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mesh: create %s: %w", path, err)
	}
	defer f.Close()

	if err := m.WriteSTL(f, name); err != nil {
		return fmt.Errorf("mesh: write %s: %w", path, err)
	}
	return f.Close()
}
