package em_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnakit/emquant/em"
	"github.com/rnakit/emquant/matrix"
	"gonum.org/v1/gonum/floats"
)

// TestMaximize_Basic verifies row-sum normalization on a small posterior.
func TestMaximize_Basic(t *testing.T) {
	post := mustFromRows(t, [][]float64{{0.5, 0}, {0.5, 1}})
	a := mustFromRows(t, [][]float64{{1, 0}, {1, 1}})

	pi, err := em.Maximize(post, a)
	require.NoError(t, err)

	require.Len(t, pi, 2, "one abundance per transcript")
	assert.InDelta(t, 0.25, pi[0], 1e-12, "transcript 0 share")
	assert.InDelta(t, 0.75, pi[1], 1e-12, "transcript 1 share")
	assert.InDelta(t, 1.0, floats.Sum(pi), 1e-12, "simplex property")
}

// TestMaximize_UniformFallback verifies the degenerate-total path: an
// all-zero posterior yields the uniform distribution, never a division by
// zero.
func TestMaximize_UniformFallback(t *testing.T) {
	post, err := matrix.NewDense(4, 3)
	require.NoError(t, err)
	a, err := matrix.NewDense(4, 3)
	require.NoError(t, err)

	pi, err := em.Maximize(post, a)
	require.NoError(t, err, "degenerate total is not an error")

	for i, v := range pi {
		assert.InDelta(t, 0.25, v, 1e-12, "uniform entry %d", i)
	}
	assert.InDelta(t, 1.0, floats.Sum(pi), 1e-12, "fallback is a simplex too")
}

// TestMaximize_NoReads verifies the R==0 edge falls back to uniform.
func TestMaximize_NoReads(t *testing.T) {
	post, err := matrix.NewDense(3, 0)
	require.NoError(t, err)
	a, err := matrix.NewDense(3, 0)
	require.NoError(t, err)

	pi, err := em.Maximize(post, a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, pi[0], 1e-12)
	assert.InDelta(t, 1.0/3, pi[1], 1e-12)
	assert.InDelta(t, 1.0/3, pi[2], 1e-12)
}

// TestMaximize_Validation covers nil and shape-mismatch preconditions.
func TestMaximize_Validation(t *testing.T) {
	post := mustFromRows(t, [][]float64{{1, 0}, {0, 1}})
	a := mustFromRows(t, [][]float64{{1, 0}, {0, 1}})
	wide := mustFromRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}})

	_, err := em.Maximize(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil posterior")

	_, err = em.Maximize(post, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil assignment")

	_, err = em.Maximize(post, wide)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "shape mismatch")
}
