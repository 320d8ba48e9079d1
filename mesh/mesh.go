package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// New validates the incidence tables and returns the assembled Mesh.
//
// Inputs follow the tabular convention: vertices holds positions, degrees
// the per-face vertex counts, faces the face-vertex incidence (row f reads
// its first degrees[f] entries), edgeVerts the unique undirected edges and
// edgeFaces the incident faces per edge with BoundaryFace (-1) for a missing
// side.
//
// Every structural invariant is checked here, and violations are returned as
// one of the package sentinels (wrapped with the offending index). A Mesh
// that survives New is safe to assemble sparse systems from without further
// bounds checks.
func New(vertices []r3.Vec, degrees []int, faces [][]int, edgeVerts, edgeFaces [][2]int) (*Mesh, error) {
	if len(degrees) != len(faces) {
		return nil, fmt.Errorf("mesh: %d degrees for %d faces: %w", len(degrees), len(faces), ErrDegreeMismatch)
	}
	if len(edgeVerts) != len(edgeFaces) {
		return nil, fmt.Errorf("mesh: %d edge-vertex rows, %d edge-face rows: %w", len(edgeVerts), len(edgeFaces), ErrEdgeTables)
	}

	nv, nf := len(vertices), len(faces)
	for f, d := range degrees {
		if d < 3 {
			return nil, fmt.Errorf("mesh: face %d has degree %d: %w", f, d, ErrFaceDegree)
		}
		if len(faces[f]) < d {
			return nil, fmt.Errorf("mesh: face %d row has %d entries for degree %d: %w", f, len(faces[f]), d, ErrDegreeMismatch)
		}
		for k := 0; k < d; k++ {
			if v := faces[f][k]; v < 0 || v >= nv {
				return nil, fmt.Errorf("mesh: face %d vertex slot %d is %d: %w", f, k, v, ErrVertexRange)
			}
		}
	}

	seen := make(map[[2]int]struct{}, len(edgeVerts))
	for e, ev := range edgeVerts {
		if ev[0] < 0 || ev[0] >= nv || ev[1] < 0 || ev[1] >= nv {
			return nil, fmt.Errorf("mesh: edge %d endpoints %v: %w", e, ev, ErrVertexRange)
		}
		if ev[0] == ev[1] {
			return nil, fmt.Errorf("mesh: edge %d joins vertex %d to itself: %w", e, ev[0], ErrEdgeEndpoints)
		}
		key := ev
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("mesh: edge %d repeats (%d,%d): %w", e, ev[0], ev[1], ErrDuplicateEdge)
		}
		seen[key] = struct{}{}

		ef := edgeFaces[e]
		for side := 0; side < 2; side++ {
			if ef[side] != BoundaryFace && (ef[side] < 0 || ef[side] >= nf) {
				return nil, fmt.Errorf("mesh: edge %d side %d references face %d: %w", e, side, ef[side], ErrFaceRange)
			}
		}
		if ef[0] == BoundaryFace && ef[1] == BoundaryFace {
			return nil, fmt.Errorf("mesh: edge %d: %w", e, ErrEdgeNoFace)
		}
	}

	return &Mesh{V: vertices, D: degrees, F: faces, EV: edgeVerts, EF: edgeFaces}, nil
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.V) }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.F) }

// NumEdges returns the edge count.
func (m *Mesh) NumEdges() int { return len(m.EV) }

// EdgeVector returns V[EV[e][1]] - V[EV[e][0]], the direction of edge e in
// the original geometry.
func (m *Mesh) EdgeVector(e int) r3.Vec {
	return r3.Sub(m.V[m.EV[e][1]], m.V[m.EV[e][0]])
}

// IsBoundaryEdge reports whether edge e is missing one of its face sides.
func (m *Mesh) IsBoundaryEdge(e int) bool {
	return m.EF[e][0] == BoundaryFace || m.EF[e][1] == BoundaryFace
}

// InteriorEdges counts edges with both face sides present.
func (m *Mesh) InteriorEdges() int {
	n := 0
	for e := range m.EF {
		if !m.IsBoundaryEdge(e) {
			n++
		}
	}
	return n
}

// FaceSides counts the existing face sides over all edges: two per
// interior edge, one per boundary edge. This equals the constraint row
// count of the affine deformation system.
func (m *Mesh) FaceSides() int {
	n := 0
	for e := range m.EF {
		for side := 0; side < 2; side++ {
			if m.EF[e][side] != BoundaryFace {
				n++
			}
		}
	}
	return n
}
