package affine

import (
	"errors"

	"github.com/polyhedralab/hedron/quadprog"
	"github.com/polyhedralab/hedron/sparse"
)

// Sentinel errors for the affine deformation solver.
var (
	// ErrBendFactor indicates a negative or non-finite bend factor.
	ErrBendFactor = errors.New("affine: bend factor must be finite and non-negative")

	// ErrHandleIndex indicates a handle vertex index out of range or
	// listed twice.
	ErrHandleIndex = errors.New("affine: invalid handle index")

	// ErrHandleMismatch indicates the handle target matrix shape does not
	// match the handle set declared at precompute time.
	ErrHandleMismatch = errors.New("affine: handle targets do not match declared handles")
)

// EnergyKind classifies how the per-face maps are penalized downstream.
// Matrix assembly is identical for both kinds; the tag travels with the
// problem so consumers can interpret the maps accordingly.
type EnergyKind int

const (
	// ARAP is the as-rigid-as-possible energy.
	ARAP EnergyKind = iota
	// ASAP is the as-similar-as-possible ("conformal") energy.
	ASAP
)

// String returns the conventional name of the energy kind.
func (k EnergyKind) String() string {
	switch k {
	case ARAP:
		return "ARAP"
	case ASAP:
		return "ASAP"
	default:
		return "unknown"
	}
}

// Problem is the precomputed affine deformation system: built once by
// Precompute, then reused read-only across many Deform calls with varying
// handle targets.
//
// E is the energy matrix (one identity row per face-map component, one
// bending row per interior edge per coordinate) and C the constraint
// matrix (one row per edge side). FSize and VSize record the face and
// vertex counts that fix the unknown layout: columns [0,3F) are face-map
// components, columns [3F,3F+V) are vertex positions.
type Problem struct {
	E *sparse.Coord
	C *sparse.Coord

	FSize, VSize int
	Kind         EnergyKind
	BendFactor   float64

	handles []int
	fact    *quadprog.Factorization
}

// NumHandles returns the number of handle vertices declared at precompute.
func (p *Problem) NumHandles() int { return len(p.handles) }
