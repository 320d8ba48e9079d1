// Package mesh represents polyhedral meshes — meshes whose faces may have
// arbitrary degree — together with the edge-level incidence tables that the
// deformation and offsetting solvers assemble their systems from.
//
// What:
//
//   - Mesh bundles vertex positions, per-face degrees, face-vertex incidence,
//     edge-vertex incidence and edge-face incidence into one immutable value.
//   - New validates every incidence invariant up front, so downstream
//     assembly never has to defend against malformed topology.
//   - Cube provides the standard 8-vertex / 6-quad fixture used in examples
//     and tests.
//
// Why:
//
//   - Sparse-system assembly is a one-shot pass over topology; a single
//     out-of-range index silently produces a malformed system. Validating at
//     construction keeps the numeric code branch-free.
//   - Boundary handling: an edge-face slot of -1 marks a missing boundary
//     side. Every edge must keep at least one face.
//
// Complexity:
//
//   - New: O(F·maxDegree + E), Memory: O(E) for the duplicate-edge check.
//   - All accessors: O(1).
//
// Errors:
//
//   - ErrVertexRange     — a face or edge references a vertex out of range.
//   - ErrFaceRange       — an edge references a face out of range.
//   - ErrDegreeMismatch  — face degrees and face-vertex rows disagree.
//   - ErrFaceDegree      — a face has degree < 3.
//   - ErrEdgeEndpoints   — an edge joins a vertex to itself.
//   - ErrDuplicateEdge   — the same undirected edge is listed twice.
//   - ErrEdgeNoFace      — an edge has no incident face at all.
//   - ErrEdgeTables      — edge-vertex and edge-face tables differ in length.
package mesh
