// Package matrix: Dense is a concrete, row-major assignment matrix, storing
// elements in a flat slice for performance and cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major T×R matrix of float64 values.
// r is rows (transcripts), c is columns (reads), and data holds r*c elements
// in row-major order. Entries are kept non-negative and finite by every
// public write path.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): rows ≥ 1, cols ≥ 0 — a zero-column matrix models a
// transcript set with no observed reads and is legal.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows < 1 || cols < 0 {
		return nil, ErrBadShape
	}

	// Allocate flat slice and return initialized Dense
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of row slices, copying all data.
// Stage 1 (Validate): at least one row; all rows equal length; every entry
// finite and ≥ 0.
// Stage 2 (Execute): copy row by row into flat storage.
// Complexity: O(r*c) time and memory.
//
// Errors: ErrBadShape (empty or ragged input), ErrNegativeEntry, ErrNaNInf.
func FromRows(rows [][]float64) (*Dense, error) {
	// At least one transcript row is required.
	if len(rows) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])

	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	var (
		i, j int
		v    float64
	)
	for i = range rows {
		// Ragged input cannot form a rectangular matrix.
		if len(rows[i]) != cols {
			return nil, ErrBadShape
		}
		for j, v = range rows[i] {
			// Policy check before any write: finite, non-negative.
			if isNonFinite(v) {
				return nil, ErrNaNInf
			}
			if v < 0 {
				return nil, ErrNegativeEntry
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows (transcripts). Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns (reads). Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col), enforcing the numeric policy.
// Stage 1 (Validate): bounds check via indexOf; v finite and ≥ 0.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
//
// Errors: ErrOutOfRange, ErrNaNInf, ErrNegativeEntry.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if isNonFinite(v) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	if v < 0 {
		return denseErrorf("Set", row, col, ErrNegativeEntry)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Row returns the backing slice of row i without copying.
// The returned slice aliases internal storage and MUST be treated as
// read-only by callers; it exists so hot loops can run flat-slice
// reductions over a row without an O(c) copy per call.
// Complexity: O(1).
//
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c], nil
}

// RowSum returns the sum of row i with a fixed left-to-right accumulation
// order for determinism.
// Complexity: O(c).
//
// Errors: ErrOutOfRange.
func (m *Dense) RowSum(i int) (float64, error) {
	if i < 0 || i >= m.r {
		return 0, denseErrorf("RowSum", i, 0, ErrOutOfRange)
	}

	var (
		sum  float64
		base = i * m.c
		j    int
	)
	for j = 0; j < m.c; j++ {
		sum += m.data[base+j]
	}

	return sum, nil
}

// ColSum returns the sum of column j with a fixed top-to-bottom accumulation
// order for determinism.
// Complexity: O(r).
//
// Errors: ErrOutOfRange.
func (m *Dense) ColSum(j int) (float64, error) {
	if j < 0 || j >= m.c {
		return 0, denseErrorf("ColSum", 0, j, ErrOutOfRange)
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < m.r; i++ {
		sum += m.data[i*m.c+j]
	}

	return sum, nil
}

// String implements fmt.Stringer for easy debugging: one bracketed row per
// line, entries formatted with %g.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
