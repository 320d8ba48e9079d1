package nlsolve

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for the driver.
var (
	// ErrNilProblem indicates Solve was called with a nil problem.
	ErrNilProblem = errors.New("nlsolve: nil problem")

	// ErrBadOptions indicates an Options field outside its valid range.
	ErrBadOptions = errors.New("nlsolve: invalid options")

	// ErrDimensionMismatch indicates a callback produced vectors or triplet
	// indices inconsistent with the sizes the problem declared.
	ErrDimensionMismatch = errors.New("nlsolve: callback dimension mismatch")

	// ErrSingular indicates the damped step system could not be solved.
	ErrSingular = errors.New("nlsolve: step system is singular")
)

// Problem is the callback contract a formulation implements to be driven by
// Solve. The driver calls the update hooks in a fixed order each iteration
// and reads the residuals and Jacobians back through the accessors; the
// triplet patterns returned by EnergyJacobian and ConstraintJacobian must
// keep their length across iterations (values may change, the pattern may
// not).
type Problem interface {
	// Dim returns the unknown-vector length.
	Dim() int
	// NumResiduals returns the energy residual count.
	NumResiduals() int
	// NumConstraints returns the constraint residual count.
	NumConstraints() int

	// InitialSolution returns the starting iterate, length Dim.
	InitialSolution() []float64

	// PreIteration runs before the updates of each iteration; prevx is the
	// current iterate.
	PreIteration(prevx []float64) error
	// UpdateEnergy recomputes the energy residual at x.
	UpdateEnergy(x []float64) error
	// UpdateJacobian recomputes the energy Jacobian values at x.
	UpdateJacobian(x []float64) error
	// UpdateConstraints recomputes the constraint residual at x.
	UpdateConstraints(x []float64) error

	// Energy returns the energy residual as last updated.
	Energy() []float64
	// Constraints returns the constraint residual as last updated.
	Constraints() []float64
	// EnergyJacobian returns the energy Jacobian triplets as last updated.
	EnergyJacobian() (rows, cols []int, vals []float64)
	// ConstraintJacobian returns the constraint Jacobian triplets.
	ConstraintJacobian() (rows, cols []int, vals []float64)

	// PostIteration runs after the step; returning true stops the solve.
	PostIteration(x []float64) bool
	// PostOptimization receives the final iterate once; returning false
	// marks the result as not converged.
	PostOptimization(x []float64) bool
}

// Options tunes Solve. Zero values are not meaningful; start from
// DefaultOptions and override fields.
type Options struct {
	// MaxIterations bounds the Gauss-Newton loop. Must be positive.
	MaxIterations int

	// Tolerance stops the loop once the step norm falls at or under it.
	// Must be nonnegative.
	Tolerance float64

	// ConstraintWeight scales the constraint rows in the stacked residual.
	// Must be nonnegative; larger values enforce constraints harder.
	ConstraintWeight float64

	// Damping is the Levenberg parameter λ: √λ·I rows are appended to the
	// stacked Jacobian. Must be nonnegative; zero disables damping and
	// requires the stacked system to have at least Dim rows.
	Damping float64

	// Logger receives one Debug event per iteration. Nop by default.
	Logger zerolog.Logger
}

// DefaultOptions returns the tuning used throughout the package tests:
// a hard constraint weight, light damping, and no logging.
func DefaultOptions() *Options {
	return &Options{
		MaxIterations:    100,
		Tolerance:        1e-10,
		ConstraintWeight: 100,
		Damping:          1e-6,
		Logger:           zerolog.Nop(),
	}
}

func (o *Options) validate() error {
	if o.MaxIterations <= 0 {
		return ErrBadOptions
	}
	if o.Tolerance < 0 || o.ConstraintWeight < 0 || o.Damping < 0 {
		return ErrBadOptions
	}
	return nil
}

// Result reports the outcome of a Solve call.
type Result struct {
	// X is the final iterate, length Dim.
	X []float64
	// Iterations is the number of Gauss-Newton iterations performed.
	Iterations int
	// Converged reports whether the step norm reached Tolerance (or the
	// problem requested a stop) and PostOptimization accepted the result.
	Converged bool
	// Residual is the stacked residual norm ‖[energy; weight·constraints]‖
	// at the last evaluated iterate.
	Residual float64
}
