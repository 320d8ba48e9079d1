// Package sparse provides coordinate-format ("triplet") sparse matrices for
// incremental system assembly.
//
// What:
//
//   - Coord collects (row, col, value) entries one at a time; duplicate
//     positions accumulate, the standard coordinate-format convention.
//   - MulVec applies the matrix to a dense vector without materializing
//     anything — enough for residual updates in iterative solvers.
//   - Dense converts to a gonum mat.Dense when a factorization is needed.
//
// Why:
//
//   - Energy and constraint matrices are built row by row from mesh
//     topology; coordinate format makes the assembly a flat append loop.
//   - The systems here are small enough that factorizations run dense; the
//     sparse form exists for assembly and bookkeeping, not for asymptotics.
//
// Complexity:
//
//   - Append: O(1) amortized. MulVec: O(nnz). Dense: O(rows·cols + nnz).
//
// Errors:
//
//   - ErrBadShape          — non-positive dimensions at construction.
//   - ErrOutOfRange        — an Append index outside the declared shape.
//   - ErrNonFinite         — NaN or ±Inf value at Append.
//   - ErrDimensionMismatch — MulVec input of the wrong length.
package sparse
