// Package hedron is a toolkit for deforming and offsetting polyhedral
// meshes — meshes whose faces may have any degree, not just triangles.
//
// 🚀 What is hedron?
//
//	A small, deterministic library that brings together:
//		• mesh/     — polyhedral mesh representation with strict topology validation
//		• sparse/   — coordinate (triplet) sparse matrices for incremental assembly
//		• quadprog/ — equality-constrained quadratic solves with fixed unknowns
//		• affine/   — per-face affine-map deformation driven by handle vertices
//		• offset/   — approximate parallel offsets ("discrete Gauss map") as a
//		              nonlinear least-squares problem
//		• nlsolve/  — a damped Gauss-Newton driver generic over the iteration
//		              callback contract that offset implements
//
// ✨ Why choose hedron?
//
//   - Explicit problem state – build once, solve many times, no globals
//   - Rock-solid error surface – sentinel errors, errors.Is everywhere
//   - Deterministic – single-threaded one-shot assembly, stable row ordering
//   - Built on gonum – dense factorizations and vector geometry from
//     gonum.org/v1/gonum
//
// Quick ASCII example:
//
//	    A───B        pin A and D (handles), drag B:
//	    │   │   →    every face carries one affine map, maps must agree
//	    C───D        on shared edges, bending keeps neighbors similar.
//
// Start with mesh.New (or mesh.Cube for a toy input), then either
// affine.Precompute → affine.Deform, or offset.New → nlsolve.Solve.
//
//	go get github.com/polyhedralab/hedron
package hedron
