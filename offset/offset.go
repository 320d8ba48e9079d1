package offset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/polyhedralab/hedron/mesh"
	"github.com/polyhedralab/hedron/sparse"
)

// New builds the offset problem for m at distance d.
//
// The constant constraint Jacobian — three rows per edge, enforcing
// (v′_j − v′_i) − s_e·(v_j − v_i) = 0 — and the energy Jacobian sparsity
// pattern are fixed here; the per-iteration update methods only rewrite
// values. Edge and face offsets fail with ErrUnsupportedType rather than
// leaving the energy structures empty.
func New(m *mesh.Mesh, oType Type, d float64) (*Problem, error) {
	switch oType {
	case VertexOffset:
		// implemented below
	case EdgeOffset, FaceOffset:
		return nil, fmt.Errorf("offset: %s offset: %w", oType, ErrUnsupportedType)
	default:
		return nil, fmt.Errorf("offset: type %d: %w", int(oType), ErrUnsupportedType)
	}

	nv, ne := m.NumVertices(), m.NumEdges()
	xSize := 3*nv + ne

	constMat, err := sparse.New(3*ne, xSize)
	if err != nil {
		return nil, err
	}
	for e := range m.EV {
		v0, v1 := m.EV[e][0], m.EV[e][1]
		orig := m.EdgeVector(e)
		comp := [3]float64{orig.X, orig.Y, orig.Z}
		for j := 0; j < 3; j++ {
			if err = constMat.Append(3*e+j, 3*v0+j, -1); err != nil {
				return nil, err
			}
			if err = constMat.Append(3*e+j, 3*v1+j, 1); err != nil {
				return nil, err
			}
			if err = constMat.Append(3*e+j, 3*nv+e, -comp[j]); err != nil {
				return nil, err
			}
		}
	}

	// Vertex offset: one residual per vertex, three Jacobian entries each
	// (one per coordinate of that vertex).
	jeRows := make([]int, 3*nv)
	jeCols := make([]int, 3*nv)
	for i := 0; i < nv; i++ {
		for j := 0; j < 3; j++ {
			jeRows[3*i+j] = i
			jeCols[3*i+j] = 3*i + j
		}
	}

	return &Problem{
		oType:    oType,
		d:        d,
		vOrig:    append([]r3.Vec(nil), m.V...),
		ev:       append([][2]int(nil), m.EV...),
		xSize:    xSize,
		constMat: constMat,
		cVec:     make([]float64, 3*ne),
		jeRows:   jeRows,
		jeCols:   jeCols,
		jeVals:   make([]float64, 3*nv),
		eVec:     make([]float64, nv),
	}, nil
}

// InitialSolution seeds the vertex unknowns with the original positions
// and every edge scale with zero.
func (p *Problem) InitialSolution() []float64 {
	x0 := make([]float64, p.xSize)
	for i, v := range p.vOrig {
		x0[3*i] = v.X
		x0[3*i+1] = v.Y
		x0[3*i+2] = v.Z
	}
	return x0
}

// PreIteration is a hook with no work for this model.
func (p *Problem) PreIteration(prevx []float64) error { return nil }

// UpdateEnergy rewrites the energy residual for the iterate x:
// residual_i = ‖v_i − v′_i‖² − d². A non-finite residual is a numeric
// error for the current iteration.
func (p *Problem) UpdateEnergy(x []float64) error {
	if len(x) != p.xSize {
		return fmt.Errorf("offset: iterate length %d, want %d: %w", len(x), p.xSize, ErrDimensionMismatch)
	}
	dd := p.d * p.d
	for i, v := range p.vOrig {
		diff := r3.Sub(v, r3.Vec{X: x[3*i], Y: x[3*i+1], Z: x[3*i+2]})
		p.eVec[i] = r3.Dot(diff, diff) - dd
		if math.IsNaN(p.eVec[i]) || math.IsInf(p.eVec[i], 0) {
			return fmt.Errorf("offset: energy residual %d: %w", i, ErrNonFinite)
		}
	}
	return nil
}

// UpdateJacobian rewrites the energy Jacobian values for the iterate x.
// The sparsity pattern is fixed at New; the constraint Jacobian is
// constant and never touched here.
//
// TODO: confirm the gradient convention: d/dv′ ‖v − v′‖² = 2(v′ − v), but
// the offset formulation prescribes 2v here; resolve before relying on
// quadratic convergence rates.
func (p *Problem) UpdateJacobian(x []float64) error {
	if len(x) != p.xSize {
		return fmt.Errorf("offset: iterate length %d, want %d: %w", len(x), p.xSize, ErrDimensionMismatch)
	}
	for i, v := range p.vOrig {
		comp := [3]float64{v.X, v.Y, v.Z}
		for j := 0; j < 3; j++ {
			p.jeVals[3*i+j] = 2 * comp[j]
			if math.IsNaN(p.jeVals[3*i+j]) || math.IsInf(p.jeVals[3*i+j], 0) {
				return fmt.Errorf("offset: energy Jacobian entry (%d,%d): %w", i, 3*i+j, ErrNonFinite)
			}
		}
	}
	return nil
}

// UpdateConstraints rewrites the constraint residual as constMat·x.
func (p *Problem) UpdateConstraints(x []float64) error {
	y, err := p.constMat.MulVec(x)
	if err != nil {
		return fmt.Errorf("offset: %w", err)
	}
	copy(p.cVec, y)
	return nil
}

// PostIteration never requests an early stop for this model.
func (p *Problem) PostIteration(x []float64) bool { return false }

// PostOptimization freezes the vertex-position block of x as the accepted
// solution and signals success unconditionally.
func (p *Problem) PostOptimization(x []float64) bool {
	p.fullSolution = make([]r3.Vec, len(p.vOrig))
	for i := range p.fullSolution {
		p.fullSolution[i] = r3.Vec{X: x[3*i], Y: x[3*i+1], Z: x[3*i+2]}
	}
	return true
}
