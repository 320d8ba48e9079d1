package quadprog

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/polyhedralab/hedron/sparse"
)

// Precompute factorizes the system
//
//	minimize ‖obj·x − objTarget‖²  subject to  constr·x = b,  x[fixed] = v
//
// for later Solve calls. objTarget may be nil (zero target); when present
// it carries one column per solve axis, so systems solved per coordinate
// can anchor each axis to a different target. constr may be nil
// (unconstrained). variableTargets controls whether Solve may supply
// per-call constraint targets b; with false, b is baked in as zero.
//
// The fixed unknowns are eliminated from the KKT system; their prescribed
// values enter every Solve call's right-hand side. At least one unknown
// must remain free.
func Precompute(obj *sparse.Coord, objTarget *mat.Dense, fixed []int, constr *sparse.Coord, variableTargets bool) (*Factorization, error) {
	n := obj.Cols()
	if objTarget != nil {
		if r, _ := objTarget.Dims(); r != obj.Rows() {
			return nil, fmt.Errorf("quadprog: objective target has %d rows, want %d: %w", r, obj.Rows(), ErrDimensionMismatch)
		}
	}
	if constr != nil && constr.Cols() != n {
		return nil, fmt.Errorf("quadprog: constraint width %d, want %d: %w", constr.Cols(), n, ErrDimensionMismatch)
	}

	isFixed := make(map[int]struct{}, len(fixed))
	for _, i := range fixed {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("quadprog: fixed index %d outside [0,%d): %w", i, n, ErrFixedIndex)
		}
		if _, dup := isFixed[i]; dup {
			return nil, fmt.Errorf("quadprog: fixed index %d repeated: %w", i, ErrFixedIndex)
		}
		isFixed[i] = struct{}{}
	}
	if len(fixed) >= n {
		return nil, fmt.Errorf("quadprog: all %d unknowns fixed: %w", n, ErrFixedIndex)
	}

	free := make([]int, 0, n-len(fixed))
	for i := 0; i < n; i++ {
		if _, ok := isFixed[i]; !ok {
			free = append(free, i)
		}
	}
	nf, nk := len(free), len(fixed)

	// Normal matrix Q = EᵀE and constant linear part Eᵀt.
	e := obj.Dense()
	var q mat.Dense
	q.Mul(e.T(), e)

	var objT *mat.Dense
	if objTarget != nil {
		var full mat.Dense
		full.Mul(e.T(), objTarget)
		_, kT := objTarget.Dims()
		objT = mat.NewDense(nf, kT, nil)
		for i, fi := range free {
			for j := 0; j < kT; j++ {
				objT.Set(i, j, full.At(fi, j))
			}
		}
	}

	nc := 0
	var cDense *mat.Dense
	if constr != nil {
		nc = constr.Rows()
		cDense = constr.Dense()
	}

	// KKT system over the free unknowns:
	//   [ Qff  Cfᵀ ] [xf]   [ Eᵀt − Qfk·xk − B ]
	//   [ Cf   0   ] [λ ] = [ b − Ck·xk        ]
	kkt := mat.NewDense(nf+nc, nf+nc, nil)
	for i, fi := range free {
		for j, fj := range free {
			kkt.Set(i, j, q.At(fi, fj))
		}
	}

	var qfk, ck *mat.Dense
	if nk > 0 {
		qfk = mat.NewDense(nf, nk, nil)
		for i, fi := range free {
			for j, kj := range fixed {
				qfk.Set(i, j, q.At(fi, kj))
			}
		}
	}
	if nc > 0 {
		for c := 0; c < nc; c++ {
			for j, fj := range free {
				kkt.Set(nf+c, j, cDense.At(c, fj))
				kkt.Set(j, nf+c, cDense.At(c, fj))
			}
		}
		if nk > 0 {
			ck = mat.NewDense(nc, nk, nil)
			for c := 0; c < nc; c++ {
				for j, kj := range fixed {
					ck.Set(c, j, cDense.At(c, kj))
				}
			}
		}
	}

	// Constraint rows assembled from face cycles are linearly dependent, so
	// the KKT matrix is singular by construction; factorize with an SVD and
	// keep the pseudo-inverse pieces for minimum-norm solves.
	var svd mat.SVD
	if !svd.Factorize(kkt, mat.SVDThin) {
		return nil, fmt.Errorf("quadprog: SVD of %d×%d KKT system failed: %w", nf+nc, nf+nc, ErrSingular)
	}
	vals := svd.Values(nil)
	smax := vals[0]
	if smax <= 0 {
		return nil, fmt.Errorf("quadprog: KKT system is identically zero: %w", ErrSingular)
	}
	sinv := make([]float64, len(vals))
	usable := 0
	for i, s := range vals {
		if s > RankTolerance*smax {
			sinv[i] = 1 / s
			usable++
		}
	}
	if usable == 0 {
		return nil, fmt.Errorf("quadprog: no usable singular values: %w", ErrSingular)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	fixedCopy := append([]int(nil), fixed...)

	return &Factorization{
		n:       n,
		nc:      nc,
		fixed:   fixedCopy,
		free:    free,
		varTgts: variableTargets,
		u:       &u,
		v:       &v,
		sinv:    sinv,
		qfk:     qfk,
		ck:      ck,
		objT:    objT,
	}, nil
}

// Solve computes all unknowns for the supplied right-hand sides.
//
// lin is the per-unknown linear term of the objective (nil means zero).
// fixedVals prescribes one row per fixed index and one column per solve;
// constrTargets prescribes the constraint right-hand side with matching
// column count (nil means zero, and is required when the factorization was
// built with variableTargets=false). The returned matrix covers all n
// unknowns: free rows carry the solution, fixed rows echo fixedVals.
func (f *Factorization) Solve(lin []float64, fixedVals, constrTargets *mat.Dense) (*mat.Dense, error) {
	nf, nk := len(f.free), len(f.fixed)

	k := 0
	if nk > 0 {
		if fixedVals == nil {
			return nil, fmt.Errorf("quadprog: %d fixed unknowns but no fixed values: %w", nk, ErrDimensionMismatch)
		}
		r, c := fixedVals.Dims()
		if r != nk {
			return nil, fmt.Errorf("quadprog: fixed values have %d rows, want %d: %w", r, nk, ErrDimensionMismatch)
		}
		k = c
	} else if fixedVals != nil {
		return nil, fmt.Errorf("quadprog: fixed values supplied but no unknown is fixed: %w", ErrDimensionMismatch)
	}

	if constrTargets != nil {
		if !f.varTgts {
			return nil, ErrTargetsNotAllowed
		}
		r, c := constrTargets.Dims()
		if r != f.nc || (k > 0 && c != k) {
			return nil, fmt.Errorf("quadprog: constraint targets are %d×%d, want %d×%d: %w", r, c, f.nc, k, ErrDimensionMismatch)
		}
		k = c
	}
	if f.objT != nil {
		_, kT := f.objT.Dims()
		if k > 0 && kT != k {
			return nil, fmt.Errorf("quadprog: %d right-hand-side columns against a %d-column objective target: %w", k, kT, ErrDimensionMismatch)
		}
		k = kT
	}
	if k == 0 {
		k = 1
	}
	if lin != nil && len(lin) != f.n {
		return nil, fmt.Errorf("quadprog: linear term length %d, want %d: %w", len(lin), f.n, ErrDimensionMismatch)
	}

	rhs := mat.NewDense(nf+f.nc, k, nil)
	var qfkX, ckX *mat.Dense
	if nk > 0 {
		qfkX = &mat.Dense{}
		qfkX.Mul(f.qfk, fixedVals)
		if f.ck != nil {
			ckX = &mat.Dense{}
			ckX.Mul(f.ck, fixedVals)
		}
	}
	for i := 0; i < nf; i++ {
		base := 0.0
		if lin != nil {
			base = -lin[f.free[i]]
		}
		for j := 0; j < k; j++ {
			val := base
			if f.objT != nil {
				val += f.objT.At(i, j)
			}
			if qfkX != nil {
				val -= qfkX.At(i, j)
			}
			rhs.Set(i, j, val)
		}
	}
	for c := 0; c < f.nc; c++ {
		for j := 0; j < k; j++ {
			val := 0.0
			if constrTargets != nil {
				val = constrTargets.At(c, j)
			}
			if ckX != nil {
				val -= ckX.At(c, j)
			}
			rhs.Set(nf+c, j, val)
		}
	}

	// Minimum-norm solve through the stored pseudo-inverse pieces.
	var ut, sol mat.Dense
	ut.Mul(f.u.T(), rhs)
	for i, s := range f.sinv {
		for j := 0; j < k; j++ {
			ut.Set(i, j, ut.At(i, j)*s)
		}
	}
	sol.Mul(f.v, &ut)

	out := mat.NewDense(f.n, k, nil)
	for i, fi := range f.free {
		for j := 0; j < k; j++ {
			out.Set(fi, j, sol.At(i, j))
		}
	}
	for i, ki := range f.fixed {
		for j := 0; j < k; j++ {
			out.Set(ki, j, fixedVals.At(i, j))
		}
	}

	return out, nil
}
