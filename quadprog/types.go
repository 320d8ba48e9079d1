package quadprog

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for precompute/solve operations.
var (
	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("quadprog: dimension mismatch")

	// ErrFixedIndex indicates a fixed-unknown index out of range or listed
	// twice.
	ErrFixedIndex = errors.New("quadprog: invalid fixed index")

	// ErrSingular indicates the KKT system has no usable rank under the
	// configured tolerance.
	ErrSingular = errors.New("quadprog: singular system")

	// ErrTargetsNotAllowed indicates constraint targets were supplied to a
	// factorization precomputed with variableTargets=false.
	ErrTargetsNotAllowed = errors.New("quadprog: constraint targets not allowed by factorization")
)

// RankTolerance is the relative singular-value cutoff: singular values
// below RankTolerance times the largest one are treated as zero.
const RankTolerance = 1e-12

// Factorization carries everything needed to solve the precomputed system
// for new fixed values and constraint targets. Build it with Precompute;
// it is immutable afterwards and safe to reuse across many Solve calls.
type Factorization struct {
	n  int // total unknowns
	nc int // constraint rows

	fixed   []int // fixed unknown indices, input order (rows of fixedVals)
	free    []int // free unknown indices, ascending
	varTgts bool

	// pseudo-inverse pieces of the KKT matrix: X = v·diag(sinv)·uᵀ·rhs
	u    *mat.Dense
	v    *mat.Dense
	sinv []float64

	// constant right-hand-side pieces
	qfk  *mat.Dense // free×fixed block of the normal matrix
	ck   *mat.Dense // constraint columns on fixed unknowns
	objT *mat.Dense // (Eᵀ·T) restricted to free rows, one column per axis
}

// NumUnknowns returns the total unknown count n of the precomputed system.
func (f *Factorization) NumUnknowns() int { return f.n }

// NumConstraints returns the constraint row count.
func (f *Factorization) NumConstraints() int { return f.nc }
