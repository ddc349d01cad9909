package em_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rnakit/emquant/matrix"
)

// notebookMatrix builds the 3-transcript × 5-read worked example used across
// tests: three isoforms sharing read 0, with partial overlaps elsewhere.
//
//	row 0 covers reads {0, 2, 3, 4}
//	row 1 covers reads {0, 1, 4}
//	row 2 covers reads {0, 1, 2}
func notebookMatrix(tb testing.TB) *matrix.Dense {
	tb.Helper()
	a, err := matrix.FromRows([][]float64{
		{1, 0, 1, 1, 1},
		{1, 1, 0, 0, 1},
		{1, 1, 1, 0, 0},
	})
	require.NoError(tb, err, "notebook matrix must build")

	return a
}

// mustFromRows is a shorthand fixture builder for small test matrices.
func mustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	a, err := matrix.FromRows(rows)
	require.NoError(tb, err, "fixture matrix must build")

	return a
}
