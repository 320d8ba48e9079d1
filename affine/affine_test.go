package affine_test

import (
	"testing"

	"github.com/polyhedralab/hedron/affine"
	"github.com/polyhedralab/hedron/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// identityUnknowns builds the unknown vector of one coordinate axis for the
// undeformed configuration: identity maps and original positions.
func identityUnknowns(m *mesh.Mesh, axis int) []float64 {
	nf := m.NumFaces()
	x := make([]float64, 3*nf+m.NumVertices())
	for f := 0; f < nf; f++ {
		x[3*f+axis] = 1
	}
	for v, pos := range m.V {
		x[3*nf+v] = [3]float64{pos.X, pos.Y, pos.Z}[axis]
	}
	return x
}

// TestPrecompute_Validation verifies the bend-factor and handle-index arms.
func TestPrecompute_Validation(t *testing.T) {
	m := mesh.Cube()

	_, err := affine.Precompute(m, []int{0}, affine.ARAP, -1)
	assert.ErrorIs(t, err, affine.ErrBendFactor)

	_, err = affine.Precompute(m, []int{8}, affine.ARAP, 1)
	assert.ErrorIs(t, err, affine.ErrHandleIndex, "handle out of range")

	_, err = affine.Precompute(m, []int{2, 2}, affine.ARAP, 1)
	assert.ErrorIs(t, err, affine.ErrHandleIndex, "duplicate handle")
}

// TestPrecompute_MatrixShapes checks the row-count invariants: energy rows
// are 3F plus one per interior edge, constraint rows one per face side.
func TestPrecompute_MatrixShapes(t *testing.T) {
	cube := mesh.Cube() // closed: 12 interior edges
	p, err := affine.Precompute(cube, []int{0}, affine.ARAP, 1)
	require.NoError(t, err)
	assert.Equal(t, 3*6+12, p.E.Rows(), "energy rows on the closed cube")
	assert.Equal(t, 2*12, p.C.Rows(), "two constraint rows per interior edge")
	assert.Equal(t, 3*6+8, p.E.Cols())
	assert.Equal(t, 3*6+8, p.C.Cols())

	quad := mesh.Quad() // open: all edges on the boundary
	p, err = affine.Precompute(quad, []int{0}, affine.ASAP, 1)
	require.NoError(t, err)
	assert.Equal(t, 3*1, p.E.Rows(), "no bending rows on an all-boundary mesh")
	assert.Equal(t, 4, p.C.Rows(), "one constraint row per boundary edge side")
}

// TestPrecompute_IdentityZeroesConstraints verifies that the undeformed
// configuration satisfies every constraint row exactly, per axis.
func TestPrecompute_IdentityZeroesConstraints(t *testing.T) {
	for _, m := range []*mesh.Mesh{mesh.Cube(), mesh.Quad()} {
		p, err := affine.Precompute(m, []int{0}, affine.ARAP, 0.5)
		require.NoError(t, err)

		for axis := 0; axis < 3; axis++ {
			y, err := p.C.MulVec(identityUnknowns(m, axis))
			require.NoError(t, err)
			for row, v := range y {
				assert.InDelta(t, 0, v, 1e-14, "axis %d constraint row %d", axis, row)
			}
		}
	}
}

// TestDeform_HandleMismatch verifies the precondition check fires before
// any solve is attempted.
func TestDeform_HandleMismatch(t *testing.T) {
	p, err := affine.Precompute(mesh.Cube(), []int{0, 6}, affine.ARAP, 1)
	require.NoError(t, err)

	_, _, err = p.Deform(nil, nil)
	assert.ErrorIs(t, err, affine.ErrHandleMismatch, "nil targets")

	_, _, err = p.Deform(mat.NewDense(1, 3, nil), nil)
	assert.ErrorIs(t, err, affine.ErrHandleMismatch, "one row for two handles")

	_, _, err = p.Deform(mat.NewDense(2, 2, nil), nil)
	assert.ErrorIs(t, err, affine.ErrHandleMismatch, "two columns for three axes")
}

// TestDeform_RoundTrip pins two opposite cube corners at their original
// positions: the solve must reproduce the original mesh and identity maps.
func TestDeform_RoundTrip(t *testing.T) {
	m := mesh.Cube()
	handles := []int{0, 6}
	p, err := affine.Precompute(m, handles, affine.ARAP, 1)
	require.NoError(t, err)

	targets := mat.NewDense(2, 3, nil)
	for i, h := range handles {
		targets.Set(i, 0, m.V[h].X)
		targets.Set(i, 1, m.V[h].Y)
		targets.Set(i, 2, m.V[h].Z)
	}

	maps, positions, err := p.Deform(targets, nil)
	require.NoError(t, err)

	for v, pos := range m.V {
		assert.InDelta(t, pos.X, positions.At(v, 0), 1e-8, "vertex %d x", v)
		assert.InDelta(t, pos.Y, positions.At(v, 1), 1e-8, "vertex %d y", v)
		assert.InDelta(t, pos.Z, positions.At(v, 2), 1e-8, "vertex %d z", v)
	}
	for f := 0; f < m.NumFaces(); f++ {
		for k := 0; k < 3; k++ {
			for c := 0; c < 3; c++ {
				want := 0.0
				if k == c {
					want = 1.0
				}
				assert.InDelta(t, want, maps.At(3*f+k, c), 1e-8, "face %d map entry (%d,%d)", f, k, c)
			}
		}
	}
}

// TestDeform_Translation translates both handles by the same offset: the
// whole mesh must translate rigidly and the maps stay identity.
func TestDeform_Translation(t *testing.T) {
	m := mesh.Cube()
	handles := []int{0, 6}
	p, err := affine.Precompute(m, handles, affine.ARAP, 1)
	require.NoError(t, err)

	shift := [3]float64{2, -1, 0.5}
	targets := mat.NewDense(2, 3, nil)
	for i, h := range handles {
		targets.Set(i, 0, m.V[h].X+shift[0])
		targets.Set(i, 1, m.V[h].Y+shift[1])
		targets.Set(i, 2, m.V[h].Z+shift[2])
	}

	_, positions, err := p.Deform(targets, nil)
	require.NoError(t, err)

	for v, pos := range m.V {
		assert.InDelta(t, pos.X+shift[0], positions.At(v, 0), 1e-8, "vertex %d x", v)
		assert.InDelta(t, pos.Y+shift[1], positions.At(v, 1), 1e-8, "vertex %d y", v)
		assert.InDelta(t, pos.Z+shift[2], positions.At(v, 2), 1e-8, "vertex %d z", v)
	}
}
