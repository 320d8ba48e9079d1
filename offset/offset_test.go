package offset_test

import (
	"math"
	"testing"

	"github.com/polyhedralab/hedron/mesh"
	"github.com/polyhedralab/hedron/offset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_UnsupportedVariants verifies that edge and face offsets fail at
// construction instead of yielding empty energy structures.
func TestNew_UnsupportedVariants(t *testing.T) {
	m := mesh.Cube()

	_, err := offset.New(m, offset.EdgeOffset, 1)
	assert.ErrorIs(t, err, offset.ErrUnsupportedType)

	_, err = offset.New(m, offset.FaceOffset, 1)
	assert.ErrorIs(t, err, offset.ErrUnsupportedType)

	_, err = offset.New(m, offset.Type(42), 1)
	assert.ErrorIs(t, err, offset.ErrUnsupportedType)
}

// TestNew_Shapes checks the unknown layout and Jacobian pattern sizes for
// the cube: 3·8+12 unknowns, 8 residuals, 36 constraint rows.
func TestNew_Shapes(t *testing.T) {
	m := mesh.Cube()
	p, err := offset.New(m, offset.VertexOffset, 1)
	require.NoError(t, err)

	assert.Equal(t, 3*8+12, p.Dim())
	assert.Equal(t, 8, p.NumResiduals())
	assert.Equal(t, 3*12, p.NumConstraints())

	rows, cols, vals := p.EnergyJacobian()
	assert.Len(t, rows, 3*8, "three energy Jacobian entries per vertex")
	assert.Len(t, cols, 3*8)
	assert.Len(t, vals, 3*8)

	_, _, cvals := p.ConstraintJacobian()
	assert.Len(t, cvals, 9*12, "nine constraint Jacobian entries per edge")
}

// TestInitialEnergy_Cube is the reference scenario: cube, vertex offset,
// d = 1. On the initial solution every residual is 0 − 1² = −1.
func TestInitialEnergy_Cube(t *testing.T) {
	p, err := offset.New(mesh.Cube(), offset.VertexOffset, 1)
	require.NoError(t, err)

	x0 := p.InitialSolution()
	require.NoError(t, p.UpdateEnergy(x0))
	for i, r := range p.Energy() {
		assert.Equal(t, -1.0, r, "vertex %d residual", i)
	}
}

// TestInitialConstraints_Cube checks the second reference scenario: with
// all edge scales zero, every constraint row equals the original edge
// displacement.
func TestInitialConstraints_Cube(t *testing.T) {
	m := mesh.Cube()
	p, err := offset.New(m, offset.VertexOffset, 1)
	require.NoError(t, err)

	require.NoError(t, p.UpdateConstraints(p.InitialSolution()))
	c := p.Constraints()
	for e := 0; e < m.NumEdges(); e++ {
		ev := m.EdgeVector(e)
		assert.Equal(t, ev.X, c[3*e], "edge %d x", e)
		assert.Equal(t, ev.Y, c[3*e+1], "edge %d y", e)
		assert.Equal(t, ev.Z, c[3*e+2], "edge %d z", e)
	}
}

// TestUpdateJacobian_Values verifies the fixed-pattern value rewrite: the
// entry for vertex i, coordinate j is twice the original coordinate.
func TestUpdateJacobian_Values(t *testing.T) {
	m := mesh.Cube()
	p, err := offset.New(m, offset.VertexOffset, 1)
	require.NoError(t, err)

	require.NoError(t, p.UpdateJacobian(p.InitialSolution()))
	rows, cols, vals := p.EnergyJacobian()
	for i, v := range m.V {
		comp := [3]float64{v.X, v.Y, v.Z}
		for j := 0; j < 3; j++ {
			assert.Equal(t, i, rows[3*i+j])
			assert.Equal(t, 3*i+j, cols[3*i+j])
			assert.Equal(t, 2*comp[j], vals[3*i+j])
		}
	}
}

// TestUpdates_NumericErrors verifies that non-finite iterates surface as
// numeric errors rather than silent residuals.
func TestUpdates_NumericErrors(t *testing.T) {
	p, err := offset.New(mesh.Cube(), offset.VertexOffset, 1)
	require.NoError(t, err)

	x := p.InitialSolution()
	x[0] = math.NaN()
	assert.ErrorIs(t, p.UpdateEnergy(x), offset.ErrNonFinite)

	x = p.InitialSolution()
	x[4] = math.Inf(1)
	assert.ErrorIs(t, p.UpdateEnergy(x), offset.ErrNonFinite)

	assert.ErrorIs(t, p.UpdateEnergy(x[:5]), offset.ErrDimensionMismatch)
	assert.ErrorIs(t, p.UpdateJacobian(x[:5]), offset.ErrDimensionMismatch)
}

// TestIterationHooks verifies the protocol defaults: PreIteration is a
// no-op, PostIteration never stops early, PostOptimization freezes the
// vertex block and reports success.
func TestIterationHooks(t *testing.T) {
	p, err := offset.New(mesh.Cube(), offset.VertexOffset, 0.5)
	require.NoError(t, err)

	x := p.InitialSolution()
	assert.NoError(t, p.PreIteration(x))
	assert.False(t, p.PostIteration(x), "this model never requests an early stop")
	assert.Nil(t, p.Solution(), "no accepted solution before PostOptimization")

	x[0], x[1], x[2] = 7, 8, 9
	assert.True(t, p.PostOptimization(x))
	sol := p.Solution()
	require.Len(t, sol, 8)
	assert.Equal(t, 7.0, sol[0].X)
	assert.Equal(t, 8.0, sol[0].Y)
	assert.Equal(t, 9.0, sol[0].Z)
}
