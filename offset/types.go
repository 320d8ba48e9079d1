package offset

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/polyhedralab/hedron/sparse"
)

// Sentinel errors for the offset problem.
var (
	// ErrUnsupportedType indicates an offset variant that is declared but
	// not implemented (edge and face offsets).
	ErrUnsupportedType = errors.New("offset: unsupported offset type")

	// ErrNonFinite indicates a NaN or ±Inf residual or Jacobian value
	// produced by an update; the iteration must be treated as failed.
	ErrNonFinite = errors.New("offset: non-finite value in update")

	// ErrDimensionMismatch indicates an iterate vector of the wrong length.
	ErrDimensionMismatch = errors.New("offset: iterate length mismatch")
)

// Type selects which mesh component keeps the requested distance d from
// its original. Only VertexOffset is implemented; the other variants fail
// at construction.
type Type int

const (
	// VertexOffset keeps every vertex at distance d from its original.
	VertexOffset Type = iota
	// EdgeOffset keeps every edge at distance d. Declared, unimplemented.
	EdgeOffset
	// FaceOffset keeps every face at distance d. Declared, unimplemented.
	FaceOffset
)

// String returns the conventional name of the offset type.
func (t Type) String() string {
	switch t {
	case VertexOffset:
		return "vertex"
	case EdgeOffset:
		return "edge"
	case FaceOffset:
		return "face"
	default:
		return "unknown"
	}
}

// Problem is the offset optimization state: the constant constraint system
// built once at New, the fixed-pattern energy Jacobian, and the residual
// vectors rewritten in place by the update methods. One Problem serves one
// solve session and must not be shared across concurrent sessions.
type Problem struct {
	oType Type
	d     float64

	vOrig []r3.Vec
	ev    [][2]int
	xSize int

	constMat *sparse.Coord // 3·edges × xSize, constant after New
	cVec     []float64     // constraint residual, 3 per edge

	jeRows, jeCols []int     // energy Jacobian pattern, fixed at New
	jeVals         []float64 // energy Jacobian values, rewritten per iteration
	eVec           []float64 // energy residual, one per vertex

	fullSolution []r3.Vec // vertex block frozen by PostOptimization
}

// OffsetType returns the variant this problem was built for.
func (p *Problem) OffsetType() Type { return p.oType }

// Distance returns the requested offset distance d.
func (p *Problem) Distance() float64 { return p.d }

// Dim returns the unknown-vector size: 3 per vertex plus 1 per edge.
func (p *Problem) Dim() int { return p.xSize }

// NumResiduals returns the energy residual count (one per vertex for the
// vertex offset).
func (p *Problem) NumResiduals() int { return len(p.eVec) }

// NumConstraints returns the constraint residual count (three per edge).
func (p *Problem) NumConstraints() int { return len(p.cVec) }

// Energy returns the energy residual vector as last written by
// UpdateEnergy. The slice is backing storage; treat it as read-only.
func (p *Problem) Energy() []float64 { return p.eVec }

// Constraints returns the constraint residual vector as last written by
// UpdateConstraints. The slice is backing storage; treat it as read-only.
func (p *Problem) Constraints() []float64 { return p.cVec }

// EnergyJacobian returns the energy Jacobian in triplet form. The pattern
// slices are fixed at New; the values are rewritten by UpdateJacobian.
func (p *Problem) EnergyJacobian() (rows, cols []int, vals []float64) {
	return p.jeRows, p.jeCols, p.jeVals
}

// ConstraintJacobian returns the constant constraint Jacobian in triplet
// form.
func (p *Problem) ConstraintJacobian() (rows, cols []int, vals []float64) {
	return p.constMat.Triplets()
}

// Solution returns the vertex positions frozen by PostOptimization, or nil
// if the optimization has not finished.
func (p *Problem) Solution() []r3.Vec { return p.fullSolution }
