// Package em: the expectation step.
package em

import (
	"gonum.org/v1/gonum/floats"

	"github.com/rnakit/emquant/matrix"
)

// Expect computes the posterior responsibility of each transcript for each
// read, given the current abundance estimate and the assignment matrix.
//
// Algorithm:
//   - Stage 1 (Validate): assignment non-nil; len(abundance) == T; abundance
//     entries finite and non-negative. Fails fast before any arithmetic.
//   - Stage 2 (Weight): w[t,r] = abundance[t] · A[t,r]; per-read totals
//     total[r] = Σ_t w[t,r], accumulated in fixed t order.
//   - Stage 3 (Normalize): P[t,r] = w[t,r] / total[r] when total[r] > 0;
//     the whole column is zero otherwise. Safe division by explicit branch —
//     a read compatible with no transcript at the current abundances
//     contributes no responsibility to any transcript, rather than raising
//     a numerical error.
//
// Guarantee: each column of the returned matrix either sums to 1 within
// floating-point tolerance or is identically zero. Pure function: inputs are
// never mutated, the posterior is freshly allocated.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// matrix.ErrNaNInf, matrix.ErrNegativeEntry — wrapped with the Expect tag.
//
// Complexity: O(T·R) time, O(T·R) memory for the posterior.
func Expect(abundance []float64, assignment *matrix.Dense) (*matrix.Dense, error) {
	// Stage 1: fail-fast validation.
	if err := matrix.ValidateNotNil(assignment); err != nil {
		return nil, emErrorf(opExpect, err)
	}
	if err := validateAbundance(abundance, assignment.Rows()); err != nil {
		return nil, emErrorf(opExpect, err)
	}

	var (
		tN, rN   = assignment.Rows(), assignment.Cols()
		weighted = make([][]float64, tN) // w[t] = abundance[t] * A.Row(t)
		totals   = make([]float64, rN)   // total weighted compatibility per read
		row      []float64
		err      error
		t, r     int
	)

	// Stage 2: weight rows by abundance, accumulating column totals in
	// fixed t order for determinism.
	for t = 0; t < tN; t++ {
		if row, err = assignment.Row(t); err != nil {
			return nil, emErrorf(opExpect, err)
		}
		weighted[t] = floats.ScaleTo(make([]float64, rN), abundance[t], row)
		floats.Add(totals, weighted[t])
	}

	// Stage 3: per-column safe division. A zero total leaves the column as
	// the zeros it already holds.
	for r = 0; r < rN; r++ {
		if totals[r] > 0 {
			for t = 0; t < tN; t++ {
				weighted[t][r] /= totals[r]
			}
		}
	}

	post, err := matrix.FromRows(weighted)
	if err != nil {
		return nil, emErrorf(opExpect, err)
	}

	return post, nil
}
