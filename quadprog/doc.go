// Package quadprog solves equality-constrained least-squares problems with
// fixed-value unknowns:
//
//	minimize   ‖E·x − t‖²
//	subject to C·x = b,   x[i] = v[i] for every fixed index i
//
// precomputed once and solved repeatedly for new fixed values v and
// constraint targets b.
//
// What:
//
//   - Precompute eliminates the fixed unknowns, assembles the KKT system of
//     the remaining free unknowns, and factorizes it once.
//   - Solve accepts multiple right-hand-side columns at a time and returns
//     one dense result covering all unknowns (fixed rows echo their
//     prescribed values).
//   - The variableTargets flag selects whether constraint targets may vary
//     per Solve call (targets enforced on the right-hand side) or are baked
//     in as zero at precompute time.
//
// Why:
//
//   - Interactive deformation solves the same system for many handle
//     configurations; the factorization must be reusable across solves.
//   - Constraint matrices assembled from mesh topology carry redundant
//     rows (the per-face edge cycles are linearly dependent), so the KKT
//     matrix is singular by construction. The factorization is SVD-based
//     and returns the minimum-norm solution, which is exact whenever the
//     system is consistent.
//
// Complexity:
//
//   - Precompute: O((nf+nc)³) for the SVD of the KKT system,
//     nf = free unknowns, nc = constraint rows.
//   - Solve: O((nf+nc)²·k) for k right-hand-side columns.
//
// Errors:
//
//   - ErrDimensionMismatch  — operand shapes disagree.
//   - ErrFixedIndex         — a fixed index is out of range or repeated.
//   - ErrSingular           — the KKT system has no usable rank.
//   - ErrTargetsNotAllowed  — constraint targets passed to a factorization
//     built with variableTargets=false.
package quadprog
