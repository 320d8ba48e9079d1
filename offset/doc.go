// Package offset formulates the approximate parallel-offset problem (the
// "discrete Gauss map") of a polyhedral mesh as a constrained nonlinear
// least-squares problem, ready for an iterative driver such as nlsolve.
//
// What:
//
//   - Problem holds the unknown vector layout [3 coordinates per vertex |
//     one scale per edge], the constant constraint Jacobian, and the
//     fixed-sparsity energy Jacobian of the chosen offset type.
//   - The constraints keep every offset edge parallel to its original:
//     (v′_j − v′_i) − s_e·(v_j − v_i) = 0, three rows per edge.
//   - For the vertex offset type the energy drives every vertex to
//     distance d from its original: residual_i = ‖v_i − v′_i‖² − d².
//
// Why:
//
//   - An exact offset of a general polyhedral mesh does not exist; keeping
//     edges parallel while penalizing the per-vertex distance error yields
//     the standard approximate offset.
//   - Edge and face offset variants are declared but not implemented; New
//     fails fast on them instead of producing empty Jacobians.
//
// Iteration contract (consumed generically by a driver):
//
//	InitialSolution → [ PreIteration → UpdateEnergy → UpdateJacobian →
//	UpdateConstraints → (step solve, external) → PostIteration ]* →
//	PostOptimization
//
// The constraint Jacobian is constant and never recomputed after New; the
// energy Jacobian's sparsity pattern is fixed at New and only its values
// are rewritten each iteration.
//
// Errors:
//
//   - ErrUnsupportedType    — edge or face offset requested.
//   - ErrNonFinite          — a residual or Jacobian value went non-finite
//     during an update (reported as a failed iteration, never ignored).
//   - ErrDimensionMismatch  — an iterate of the wrong length.
package offset
