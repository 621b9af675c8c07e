package mesh

import (
	"errors"
	"fmt"
)

// ErrNotManifold is wrapped by IntegrityReport.Err when a mesh fails
// its closure or orientation checks.
var ErrNotManifold = errors.New("mesh is not a closed 2-manifold")

// IntegrityIssue describes one closure or orientation defect, located
// by the vertex indices of the offending edge.
type IntegrityIssue struct {
	EdgeA, EdgeB int
	Message      string
}

// IntegrityReport is the result of Validate. A mesh is only trusted for
// volume integration when both flags hold.
type IntegrityReport struct {
	Watertight        bool // every undirected edge bounds exactly two faces
	WindingConsistent bool // every directed edge appears exactly once
	Issues            []IntegrityIssue
}

// Ok reports whether the mesh passed both checks.
func (r IntegrityReport) Ok() bool {
	return r.Watertight && r.WindingConsistent
}

// Err returns nil for a valid mesh, otherwise an error wrapping
// ErrNotManifold with the first few issues. A failed check must fail
// the stage that produced the mesh; repairing holes downstream can
// silently close the wrong boundary and corrupt the volume integral.
func (r IntegrityReport) Err() error {
	if r.Ok() {
		return nil
	}
	detail := ""
	for i, issue := range r.Issues {
		if i == 5 {
			detail += fmt.Sprintf("; and %d more", len(r.Issues)-i)
			break
		}
		if i > 0 {
			detail += "; "
		}
		detail += issue.Message
	}
	return fmt.Errorf("%w: %s", ErrNotManifold, detail)
}

type edgeKey struct {
	lo, hi int
}

// Validate checks that the mesh is a closed, consistently oriented
// 2-manifold. Both checks run off a single directed-edge census: an
// undirected edge must be seen exactly twice, once per direction.
// Defects are reported, never repaired.
func (m *Mesh) Validate() IntegrityReport {
	// forward counts a->b with a<b, backward counts b->a.
	forward := make(map[edgeKey]int)
	backward := make(map[edgeKey]int)

	for _, f := range m.Faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a == b {
				// Degenerate edge, counted as a winding defect below
				// via the unmatched companion edges.
				continue
			}
			if a < b {
				forward[edgeKey{a, b}]++
			} else {
				backward[edgeKey{b, a}]++
			}
		}
	}

	report := IntegrityReport{Watertight: true, WindingConsistent: true}
	flag := func(e edgeKey, msg string) {
		report.Issues = append(report.Issues, IntegrityIssue{
			EdgeA:   e.lo,
			EdgeB:   e.hi,
			Message: msg,
		})
	}

	seen := make(map[edgeKey]struct{}, len(forward))
	for e, n := range forward {
		seen[e] = struct{}{}
		nb := backward[e]
		switch {
		case n == 1 && nb == 1:
			// manifold interior edge
		case n+nb == 1:
			report.Watertight = false
			flag(e, fmt.Sprintf("boundary edge %d-%d bounds only one face", e.lo, e.hi))
		case n+nb != 2:
			report.Watertight = false
			flag(e, fmt.Sprintf("edge %d-%d bounds %d faces", e.lo, e.hi, n+nb))
		default:
			// two faces but same direction twice: a flipped face
			report.WindingConsistent = false
			flag(e, fmt.Sprintf("edge %d-%d traversed twice in the same direction", e.lo, e.hi))
		}
	}
	for e, nb := range backward {
		if _, ok := seen[e]; ok {
			continue
		}
		switch {
		case nb == 1:
			report.Watertight = false
			flag(e, fmt.Sprintf("boundary edge %d-%d bounds only one face", e.lo, e.hi))
		case nb == 2:
			report.WindingConsistent = false
			flag(e, fmt.Sprintf("edge %d-%d traversed twice in the same direction", e.lo, e.hi))
		default:
			report.Watertight = false
			flag(e, fmt.Sprintf("edge %d-%d bounds %d faces", e.lo, e.hi, nb))
		}
	}

	return report
}
