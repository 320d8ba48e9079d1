package nlsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solve runs damped Gauss-Newton on p until the step norm reaches
// opts.Tolerance, p.PostIteration requests a stop, or opts.MaxIterations
// runs out. A nil opts means DefaultOptions. Errors from the update hooks
// abort the solve wrapped with the iteration number; PostOptimization is
// only reached on a clean loop exit.
func Solve(p Problem, opts *Options) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	n := p.Dim()
	mE := p.NumResiduals()
	mC := p.NumConstraints()
	stacked := mE + mC
	extra := 0
	if opts.Damping > 0 {
		extra = n
	}
	if stacked+extra < n {
		return Result{}, fmt.Errorf("nlsolve: %d stacked rows for %d unknowns without damping: %w", stacked, n, ErrSingular)
	}

	x := p.InitialSolution()
	if len(x) != n {
		return Result{}, fmt.Errorf("nlsolve: initial solution length %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	jac := mat.NewDense(stacked+extra, n, nil)
	rhs := mat.NewDense(stacked+extra, 1, nil)
	step := make([]float64, n)
	sqrtDamp := math.Sqrt(opts.Damping)
	w := opts.ConstraintWeight

	res := Result{X: x}
	stopped := false
	for it := 1; it <= opts.MaxIterations; it++ {
		res.Iterations = it

		if err := p.PreIteration(x); err != nil {
			return res, fmt.Errorf("nlsolve: iteration %d: %w", it, err)
		}
		if err := p.UpdateEnergy(x); err != nil {
			return res, fmt.Errorf("nlsolve: iteration %d: %w", it, err)
		}
		if err := p.UpdateJacobian(x); err != nil {
			return res, fmt.Errorf("nlsolve: iteration %d: %w", it, err)
		}
		if err := p.UpdateConstraints(x); err != nil {
			return res, fmt.Errorf("nlsolve: iteration %d: %w", it, err)
		}

		e := p.Energy()
		c := p.Constraints()
		if len(e) != mE || len(c) != mC {
			return res, fmt.Errorf("nlsolve: iteration %d: residual lengths (%d,%d), want (%d,%d): %w",
				it, len(e), len(c), mE, mC, ErrDimensionMismatch)
		}

		jac.Zero()
		rhs.Zero()
		if err := scatter(jac, p.EnergyJacobian, 0, mE, n, 1); err != nil {
			return res, fmt.Errorf("nlsolve: iteration %d: energy jacobian: %w", it, err)
		}
		if err := scatter(jac, p.ConstraintJacobian, mE, mC, n, w); err != nil {
			return res, fmt.Errorf("nlsolve: iteration %d: constraint jacobian: %w", it, err)
		}
		for i := 0; i < extra; i++ {
			jac.Set(stacked+i, i, sqrtDamp)
		}
		for i, v := range e {
			rhs.Set(i, 0, -v)
		}
		for i, v := range c {
			rhs.Set(mE+i, 0, -w*v)
		}
		res.Residual = mat.Norm(rhs.Slice(0, stacked, 0, 1), 2)

		var qr mat.QR
		qr.Factorize(jac)
		var sol mat.Dense
		if err := qr.SolveTo(&sol, false, rhs); err != nil {
			return res, fmt.Errorf("nlsolve: iteration %d: %w", it, ErrSingular)
		}
		for i := range step {
			step[i] = sol.At(i, 0)
		}
		stepNorm := floats.Norm(step, 2)
		floats.Add(x, step)

		opts.Logger.Debug().
			Int("iteration", it).
			Float64("residual", res.Residual).
			Float64("step", stepNorm).
			Msg("gauss-newton step")

		if p.PostIteration(x) {
			stopped = true
			break
		}
		if stepNorm <= opts.Tolerance {
			stopped = true
			break
		}
	}

	accepted := p.PostOptimization(x)
	res.Converged = stopped && accepted
	return res, nil
}

// scatter accumulates one triplet block into the stacked Jacobian, rows
// shifted by off and values scaled by w.
func scatter(dst *mat.Dense, src func() (rows, cols []int, vals []float64), off, nr, nc int, w float64) error {
	rows, cols, vals := src()
	if len(rows) != len(vals) || len(cols) != len(vals) {
		return fmt.Errorf("triplet slices of lengths %d/%d/%d: %w", len(rows), len(cols), len(vals), ErrDimensionMismatch)
	}
	for i, v := range vals {
		r, c := rows[i], cols[i]
		if r < 0 || r >= nr || c < 0 || c >= nc {
			return fmt.Errorf("entry (%d,%d) outside %d×%d: %w", r, c, nr, nc, ErrDimensionMismatch)
		}
		dst.Set(off+r, c, dst.At(off+r, c)+w*v)
	}
	return nil
}
