package affine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/polyhedralab/hedron/mesh"
	"github.com/polyhedralab/hedron/quadprog"
	"github.com/polyhedralab/hedron/sparse"
)

// Precompute assembles and factorizes the affine deformation system for m.
//
// handles lists the vertices whose positions will be prescribed at deform
// time; they become fixed unknowns of the quadratic program. bendFactor
// scales the bending rows: 0 decouples adjacent maps entirely, larger
// values pull maps of edge-sharing faces together.
//
// The unknown layout per axis is [3 map components per face | 1 position
// per vertex], width 3F+V. Constraint targets stay on the right-hand side
// of the factorization so Deform can solve without reassembly.
//
// TODO: edge weights are uniform; geometric (length/area) weighting is a
// planned refinement of the bending term.
func Precompute(m *mesh.Mesh, handles []int, kind EnergyKind, bendFactor float64) (*Problem, error) {
	if math.IsNaN(bendFactor) || math.IsInf(bendFactor, 0) || bendFactor < 0 {
		return nil, fmt.Errorf("affine: bend factor %v: %w", bendFactor, ErrBendFactor)
	}

	nv, nf := m.NumVertices(), m.NumFaces()
	seen := make(map[int]struct{}, len(handles))
	for _, h := range handles {
		if h < 0 || h >= nv {
			return nil, fmt.Errorf("affine: handle %d outside [0,%d): %w", h, nv, ErrHandleIndex)
		}
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("affine: handle %d repeated: %w", h, ErrHandleIndex)
		}
		seen[h] = struct{}{}
	}

	nvar := 3*nf + nv

	// Constraint matrix: one row per existing face side of every edge,
	// encoding  A_f·e + v_i − v_j = 0  so that the face map reproduces the
	// deformed edge vector. The identity configuration zeroes every row.
	c, err := sparse.New(m.FaceSides(), nvar)
	if err != nil {
		return nil, err
	}
	row := 0
	for e := range m.EV {
		ev := m.EdgeVector(e)
		comp := [3]float64{ev.X, ev.Y, ev.Z}
		for side := 0; side < 2; side++ {
			f := m.EF[e][side]
			if f == mesh.BoundaryFace {
				continue
			}
			for k := 0; k < 3; k++ {
				if err = c.Append(row, 3*f+k, comp[k]); err != nil {
					return nil, err
				}
			}
			if err = c.Append(row, 3*nf+m.EV[e][0], 1); err != nil {
				return nil, err
			}
			if err = c.Append(row, 3*nf+m.EV[e][1], -1); err != nil {
				return nil, err
			}
			row++
		}
	}

	// Energy matrix: identity rows anchoring every map component, then one
	// bending row per interior edge per coordinate.
	eRows := 3*nf + m.InteriorEdges()
	en, err := sparse.New(eRows, nvar)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3*nf; i++ {
		if err = en.Append(i, i, 1); err != nil {
			return nil, err
		}
	}
	row = 3 * nf
	for e := range m.EF {
		if m.IsBoundaryEdge(e) {
			continue
		}
		f0, f1 := m.EF[e][0], m.EF[e][1]
		for k := 0; k < 3; k++ {
			if err = en.Append(row, 3*f0+k, -bendFactor); err != nil {
				return nil, err
			}
			if err = en.Append(row, 3*f1+k, bendFactor); err != nil {
				return nil, err
			}
		}
		row++
	}

	// Identity anchoring: the target of map row k under axis c is δ_kc, so
	// the neutral solution is the identity map, not the zero map. Bending
	// rows target zero.
	target := mat.NewDense(eRows, 3, nil)
	for f := 0; f < nf; f++ {
		for k := 0; k < 3; k++ {
			target.Set(3*f+k, k, 1)
		}
	}

	fixed := make([]int, len(handles))
	for i, h := range handles {
		fixed[i] = 3*nf + h
	}

	fact, err := quadprog.Precompute(en, target, fixed, c, true)
	if err != nil {
		return nil, err
	}

	return &Problem{
		E:          en,
		C:          c,
		FSize:      nf,
		VSize:      nv,
		Kind:       kind,
		BendFactor: bendFactor,
		handles:    append([]int(nil), handles...),
		fact:       fact,
	}, nil
}
