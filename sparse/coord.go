package sparse

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for coordinate-matrix operations.
var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates an entry index outside the declared shape.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNonFinite indicates a NaN or ±Inf value where finite values are
	// required.
	ErrNonFinite = errors.New("sparse: NaN or Inf encountered")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)

// Coord is a sparse matrix in coordinate (triplet) form. Entries at the
// same position accumulate. The zero value is unusable; construct with New.
type Coord struct {
	rows, cols int
	r, c       []int
	v          []float64
}

// New returns an empty rows×cols coordinate matrix.
func New(rows, cols int) (*Coord, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("sparse: %dx%d: %w", rows, cols, ErrBadShape)
	}
	return &Coord{rows: rows, cols: cols}, nil
}

// Rows returns the row dimension.
func (m *Coord) Rows() int { return m.rows }

// Cols returns the column dimension.
func (m *Coord) Cols() int { return m.cols }

// NNZ returns the number of stored entries (duplicates counted separately).
func (m *Coord) NNZ() int { return len(m.v) }

// Append records one (row, col, value) entry. Values must be finite;
// indices must lie inside the declared shape.
func (m *Coord) Append(row, col int, val float64) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("sparse: entry (%d,%d) in %dx%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("sparse: entry (%d,%d): %w", row, col, ErrNonFinite)
	}
	m.r = append(m.r, row)
	m.c = append(m.c, col)
	m.v = append(m.v, val)

	return nil
}

// MulVec returns y = M·x for a dense x of length Cols.
func (m *Coord) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("sparse: MulVec input length %d, want %d: %w", len(x), m.cols, ErrDimensionMismatch)
	}
	y := make([]float64, m.rows)
	for i, val := range m.v {
		y[m.r[i]] += val * x[m.c[i]]
	}

	return y, nil
}

// Dense materializes the matrix as a gonum dense matrix, accumulating
// duplicate entries.
func (m *Coord) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for i, val := range m.v {
		d.Set(m.r[i], m.c[i], d.At(m.r[i], m.c[i])+val)
	}

	return d
}

// Triplets exposes the stored entries as parallel slices. The slices are
// the matrix's backing storage: callers must treat them as read-only.
func (m *Coord) Triplets() (rows, cols []int, vals []float64) {
	return m.r, m.c, m.v
}
