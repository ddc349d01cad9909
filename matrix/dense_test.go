package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnakit/emquant/matrix"
)

// TestNewDense_Shapes verifies shape validation for NewDense, including the
// legal zero-column case.
func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(3, 5)
	require.NoError(t, err, "3x5 must be a legal shape")
	assert.Equal(t, 3, m.Rows(), "row count")
	assert.Equal(t, 5, m.Cols(), "column count")

	// Zero columns: a transcript set with no observed reads.
	m, err = matrix.NewDense(2, 0)
	require.NoError(t, err, "zero columns must be legal")
	assert.Equal(t, 0, m.Cols(), "column count")

	_, err = matrix.NewDense(0, 4)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "negative columns must error")
}

// TestFromRows_CopiesAndValidates verifies FromRows rejects bad input and
// defensively copies good input.
func TestFromRows_CopiesAndValidates(t *testing.T) {
	src := [][]float64{{1, 0}, {0.5, 2}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err, "well-formed rows must build")

	// Mutating the source must not affect the matrix.
	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "FromRows must copy, not alias")

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "empty input must error")

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrBadShape, "ragged rows must error")

	_, err = matrix.FromRows([][]float64{{1, -1}})
	assert.ErrorIs(t, err, matrix.ErrNegativeEntry, "negative entry must error")

	_, err = matrix.FromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "NaN entry must error")

	_, err = matrix.FromRows([][]float64{{math.Inf(1), 0}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "+Inf entry must error")
}

// TestDense_AtSet verifies bounds checks and the write-side numeric policy.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 2.5), "legal write")
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v, "read back written value")

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "row out of range")
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "column out of range")

	assert.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfRange, "write out of range")
	assert.ErrorIs(t, m.Set(0, 0, -0.1), matrix.ErrNegativeEntry, "negative write rejected")
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf, "NaN write rejected")
}

// TestDense_Clone verifies deep copy semantics.
func TestDense_Clone(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 7))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone writes must not leak into the original")
}

// TestDense_RowAndSums verifies Row views and the deterministic reductions.
func TestDense_RowAndSums(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{1, 0, 1, 1, 1},
		{1, 1, 0, 0, 1},
		{1, 1, 1, 0, 0},
	})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0, 0, 1}, row, "row view content")

	_, err = m.Row(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "row view bounds")

	s, err := m.RowSum(0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, s, "row 0 sum")

	s, err = m.ColSum(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s, "column 0 sum")

	s, err = m.ColSum(3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s, "column 3 sum")

	_, err = m.RowSum(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "row sum bounds")
	_, err = m.ColSum(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "column sum bounds")
}

// TestDense_String smoke-tests the debug formatting.
func TestDense_String(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 0}, {0.5, 2}})
	require.NoError(t, err)
	assert.Equal(t, "[1 0]\n[0.5 2]\n", m.String(), "stringer layout")
}
