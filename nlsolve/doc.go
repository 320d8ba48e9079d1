// Package nlsolve drives a constrained nonlinear least-squares problem
// expressed through the iteration callback contract (see offset.Problem for
// the canonical implementation).
//
// What:
//
//   - Problem is the callback interface: sizes, InitialSolution, the four
//     per-iteration update hooks, triplet accessors for both Jacobians, and
//     the PostIteration/PostOptimization decisions.
//   - Solve runs damped Gauss-Newton on the stacked residual
//     [energy; weight·constraints]: each iteration rebuilds the dense
//     Jacobian from the problem's triplets, augments it with √λ·I damping
//     rows, and takes the least-squares step via QR.
//
// Why:
//
//   - The problem owns its residuals and sparsity; the driver owns the
//     step. Keeping the two behind a narrow interface lets one driver serve
//     every offset variant (and any future formulation) unchanged.
//   - Damping keeps the step solvable when the stacked Jacobian is rank
//     deficient, which redundant constraint rows routinely cause.
//
// Iteration order is fixed: PreIteration → UpdateEnergy → UpdateJacobian →
// UpdateConstraints → step solve → PostIteration, repeated until the step
// norm falls under Tolerance, PostIteration requests a stop, or
// MaxIterations runs out; PostOptimization is then called exactly once.
// An error from any update hook aborts the solve, wrapped with the
// iteration number.
//
// Logging is injectable: Options.Logger is a zerolog.Logger (Nop by
// default) receiving one Debug event per iteration.
//
// Errors:
//
//   - ErrNilProblem         — Solve called with a nil problem.
//   - ErrBadOptions         — nonpositive MaxIterations, negative Tolerance,
//     ConstraintWeight, or Damping.
//   - ErrDimensionMismatch  — a callback returned vectors or triplet indices
//     inconsistent with the declared sizes.
//   - ErrSingular           — the damped step system could not be solved.
package nlsolve
