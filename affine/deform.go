package affine

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Deform solves the precomputed system for the supplied handle targets and
// returns the per-face affine maps (3F×3, one stacked 3×3 block per face)
// and the deformed vertex positions (V×3, handle rows included).
//
// handleTargets must have one row per declared handle and one column per
// coordinate axis. initial is accepted for interface stability but has no
// effect: exactly one global linear solve is performed, with no refinement
// pass seeded from it.
func (p *Problem) Deform(handleTargets, initial *mat.Dense) (maps, positions *mat.Dense, err error) {
	var fixedVals *mat.Dense
	if len(p.handles) > 0 {
		if handleTargets == nil {
			return nil, nil, fmt.Errorf("affine: nil handle targets for %d handles: %w", len(p.handles), ErrHandleMismatch)
		}
		r, c := handleTargets.Dims()
		if r != len(p.handles) {
			return nil, nil, fmt.Errorf("affine: %d handle target rows for %d handles: %w", r, len(p.handles), ErrHandleMismatch)
		}
		if c != 3 {
			return nil, nil, fmt.Errorf("affine: handle targets have %d columns, want 3: %w", c, ErrHandleMismatch)
		}
		fixedVals = handleTargets
	} else if handleTargets != nil {
		if r, _ := handleTargets.Dims(); r != 0 {
			return nil, nil, fmt.Errorf("affine: %d handle target rows but no handles declared: %w", r, ErrHandleMismatch)
		}
	}
	_ = initial // one-shot solve; see doc comment

	raw, err := p.fact.Solve(nil, fixedVals, nil)
	if err != nil {
		return nil, nil, err
	}

	maps = raw.Slice(0, 3*p.FSize, 0, 3).(*mat.Dense)
	positions = raw.Slice(3*p.FSize, 3*p.FSize+p.VSize, 0, 3).(*mat.Dense)

	return maps, positions, nil
}
