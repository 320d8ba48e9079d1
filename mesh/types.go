package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh construction. All violations are detected by New
// before any solver sees the mesh; they are unrecoverable for the instance.
var (
	// ErrVertexRange indicates a face or edge references a vertex index
	// outside [0, NumVertices).
	ErrVertexRange = errors.New("mesh: vertex index out of range")

	// ErrFaceRange indicates an edge-face entry references a face index
	// outside [0, NumFaces) (and is not the -1 boundary marker).
	ErrFaceRange = errors.New("mesh: face index out of range")

	// ErrDegreeMismatch indicates the degree vector and the face-vertex
	// table disagree (different lengths, or a row shorter than its degree).
	ErrDegreeMismatch = errors.New("mesh: face degree does not match face-vertex row")

	// ErrFaceDegree indicates a face with degree < 3.
	ErrFaceDegree = errors.New("mesh: face degree must be at least 3")

	// ErrEdgeEndpoints indicates an edge whose two endpoints coincide.
	ErrEdgeEndpoints = errors.New("mesh: edge endpoints must be distinct")

	// ErrDuplicateEdge indicates the same undirected edge appears twice.
	ErrDuplicateEdge = errors.New("mesh: duplicate undirected edge")

	// ErrEdgeNoFace indicates an edge with zero incident faces.
	ErrEdgeNoFace = errors.New("mesh: edge has no incident face")

	// ErrEdgeTables indicates edge-vertex and edge-face tables of
	// different lengths.
	ErrEdgeTables = errors.New("mesh: edge-vertex and edge-face tables differ in length")
)

// BoundaryFace marks a missing face side in the edge-face table.
const BoundaryFace = -1

// Mesh is an immutable polyhedral mesh.
//
// V holds vertex positions. D[f] is the degree of face f and F[f] lists its
// boundary vertices in cyclic order; rows of F may be longer than D[f]
// (fixed-width tables with trailing padding are accepted), the extra slots
// are ignored. EV[e] lists the two endpoint vertices of the undirected edge
// e, EF[e] its incident faces with BoundaryFace marking a missing side.
type Mesh struct {
	V  []r3.Vec
	D  []int
	F  [][]int
	EV [][2]int
	EF [][2]int
}
