// Package em: the maximization step.
package em

import (
	"gonum.org/v1/gonum/floats"

	"github.com/rnakit/emquant/matrix"
)

// Maximize re-estimates transcript abundances from posterior
// responsibilities.
//
// Algorithm:
//   - Stage 1 (Validate): both matrices non-nil; posterior and assignment
//     share the same T×R shape.
//   - Stage 2 (Count): expected count per transcript c[t] = Σ_r P[t,r]
//     (row sums), then total = Σ_t c[t].
//   - Stage 3 (Normalize): π'[t] = c[t] / total when total > 0. When
//     total == 0 — every read had zero responsibility everywhere, possible
//     only for an all-zero posterior (all-zero assignment or R == 0) — fall
//     back to the uniform distribution 1/T so the output is always a valid
//     probability vector.
//
// The assignment matrix does not enter the row-sum computation; it is
// accepted for interface symmetry with Expect and used to cross-check the
// posterior's shape.
//
// Guarantee: the returned vector is non-negative and sums to 1 within
// floating-point tolerance, on every path including the fallback.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch — wrapped with
// the Maximize tag.
//
// Complexity: O(T·R) time, O(T) memory.
func Maximize(posterior, assignment *matrix.Dense) ([]float64, error) {
	// Stage 1: fail-fast validation.
	if err := matrix.ValidateNotNil(posterior); err != nil {
		return nil, emErrorf(opMaximize, err)
	}
	if err := matrix.ValidateNotNil(assignment); err != nil {
		return nil, emErrorf(opMaximize, err)
	}
	if err := matrix.ValidateSameShape(posterior, assignment); err != nil {
		return nil, emErrorf(opMaximize, err)
	}

	var (
		tN     = posterior.Rows()
		counts = make([]float64, tN) // expected read count per transcript
		row    []float64
		err    error
		t      int
	)

	// Stage 2: row sums in fixed t order.
	for t = 0; t < tN; t++ {
		if row, err = posterior.Row(t); err != nil {
			return nil, emErrorf(opMaximize, err)
		}
		counts[t] = floats.Sum(row)
	}
	total := floats.Sum(counts)

	// Stage 3: normalize, or fall back to uniform on a degenerate total.
	if total > 0 {
		for t = 0; t < tN; t++ {
			counts[t] /= total
		}
	} else {
		uniform(counts)
	}

	return counts, nil
}

// uniform fills dst with 1/len(dst), the uniform distribution over dst.
func uniform(dst []float64) {
	u := 1.0 / float64(len(dst))
	for i := range dst {
		dst[i] = u
	}
}
