package sparse_test

import (
	"math"
	"testing"

	"github.com/polyhedralab/hedron/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_BadShape verifies that non-positive dimensions are rejected.
func TestNew_BadShape(t *testing.T) {
	_, err := sparse.New(0, 3)
	assert.ErrorIs(t, err, sparse.ErrBadShape)
	_, err = sparse.New(3, -1)
	assert.ErrorIs(t, err, sparse.ErrBadShape)
}

// TestAppend_Validation verifies range and finiteness checks at insertion.
func TestAppend_Validation(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Append(2, 0, 1), sparse.ErrOutOfRange, "row out of range")
	assert.ErrorIs(t, m.Append(0, -1, 1), sparse.ErrOutOfRange, "negative column")
	assert.ErrorIs(t, m.Append(0, 0, math.NaN()), sparse.ErrNonFinite, "NaN value")
	assert.ErrorIs(t, m.Append(0, 0, math.Inf(1)), sparse.ErrNonFinite, "+Inf value")
	assert.NoError(t, m.Append(1, 1, 2.5))
	assert.Equal(t, 1, m.NNZ())
}

// TestMulVec_AccumulatesDuplicates checks coordinate-format semantics:
// duplicate positions sum, and MulVec applies the accumulated matrix.
func TestMulVec_AccumulatesDuplicates(t *testing.T) {
	m, err := sparse.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Append(0, 0, 1))
	require.NoError(t, m.Append(0, 0, 2)) // duplicate: accumulates to 3
	require.NoError(t, m.Append(0, 2, -1))
	require.NoError(t, m.Append(1, 1, 4))

	y, err := m.MulVec([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, y)

	_, err = m.MulVec([]float64{1, 1})
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// TestDense_MatchesTriplets verifies Dense accumulation against the raw
// triplet view.
func TestDense_MatchesTriplets(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Append(0, 1, 5))
	require.NoError(t, m.Append(0, 1, -2))
	require.NoError(t, m.Append(1, 0, 7))

	d := m.Dense()
	assert.Equal(t, 3.0, d.At(0, 1))
	assert.Equal(t, 7.0, d.At(1, 0))
	assert.Equal(t, 0.0, d.At(0, 0))

	rows, cols, vals := m.Triplets()
	assert.Len(t, rows, 3)
	assert.Len(t, cols, 3)
	assert.Len(t, vals, 3)
}
