// Package affine deforms polyhedral meshes with a single affine map per
// face, driven by a set of handle vertices with prescribed target positions.
//
// What:
//
//   - Precompute assembles the energy and constraint matrices of the
//     per-face affine-map model and factorizes the resulting
//     equality-constrained quadratic program once.
//   - Deform solves the precomputed system for new handle targets and
//     returns the per-face maps and the deformed vertex positions.
//
// The model:
//
//   - Unknowns per coordinate axis: one 3-vector per face (a row of its
//     affine map) plus one scalar per vertex (its deformed position). The
//     three axes are independent solves sharing one factorization.
//   - Constraints: for every edge and each of its face sides, the face's
//     map applied to the original edge vector must equal the deformed
//     edge vector. This ties the maps to one global position field and
//     forbids gaps or overlaps at shared edges.
//   - Energy: each map is anchored at the identity (rigidity baseline),
//     and for every interior edge the difference between the two adjacent
//     maps is penalized, scaled by the bend factor (bending smoothness).
//     Boundary edges contribute no bending row.
//
// Complexity:
//
//   - Precompute: O(E + F) assembly plus the quadprog factorization,
//     O((3F+V+rows(C))³).
//   - Deform: one multi right-hand-side solve, no refinement pass.
//
// Errors:
//
//   - ErrBendFactor     — negative or non-finite bend factor.
//   - ErrHandleIndex    — a handle index out of range or repeated.
//   - ErrHandleMismatch — handle target shape disagrees with the declared
//     handles at deform time.
package affine
