package mesh

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateClosedMesh(t *testing.T) {
	m := tetrahedron()
	report := m.Validate()

	if !report.Watertight {
		t.Error("Watertight = false for closed tetrahedron")
	}
	if !report.WindingConsistent {
		t.Error("WindingConsistent = false for consistently wound tetrahedron")
	}
	if !report.Ok() {
		t.Error("Ok() = false, want true")
	}
	if err := report.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
	if len(report.Issues) != 0 {
		t.Errorf("Issues = %v, want none", report.Issues)
	}
}

func TestValidateMissingFace(t *testing.T) {
	m := tetrahedron()
	m.Faces = m.Faces[:3] // drop face {1, 2, 3}

	report := m.Validate()
	if report.Watertight {
		t.Error("Watertight = true with a missing face")
	}
	// The three edges of the dropped face are now boundaries.
	if len(report.Issues) != 3 {
		t.Errorf("len(Issues) = %d, want 3 boundary edges", len(report.Issues))
	}
	err := report.Err()
	if !errors.Is(err, ErrNotManifold) {
		t.Fatalf("Err() = %v, want ErrNotManifold", err)
	}
	if !strings.Contains(err.Error(), "boundary edge") {
		t.Errorf("Err() = %q, want boundary edge detail", err)
	}
}

func TestValidateFlippedFace(t *testing.T) {
	m := tetrahedron()
	f := &m.Faces[0]
	f[1], f[2] = f[2], f[1]

	report := m.Validate()
	if report.WindingConsistent {
		t.Error("WindingConsistent = true with a flipped face")
	}
	if report.Err() == nil {
		t.Error("Err() = nil with a flipped face")
	}
	for _, issue := range report.Issues {
		if !strings.Contains(issue.Message, "same direction") {
			t.Errorf("issue %q, want same-direction detail", issue.Message)
		}
	}
}

func TestValidateOverSharedEdge(t *testing.T) {
	m := tetrahedron()
	// A fin hanging off edge 0-1 makes it bound three faces.
	m.Faces = append(m.Faces, [3]int{1, 0, 2})

	report := m.Validate()
	if report.Ok() {
		t.Error("Ok() = true with an over-shared edge")
	}
}

func TestIntegrityReportErrCapsDetail(t *testing.T) {
	r := IntegrityReport{Watertight: false}
	for i := 0; i < 9; i++ {
		r.Issues = append(r.Issues, IntegrityIssue{EdgeA: i, EdgeB: i + 1, Message: "boundary"})
	}
	err := r.Err()
	if err == nil {
		t.Fatal("Err() = nil for failed report")
	}
	if !strings.Contains(err.Error(), "and 4 more") {
		t.Errorf("Err() = %q, want truncation marker", err)
	}
}
