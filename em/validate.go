// Package em: validation utilities shared by the E-step, M-step, and Run.
//
// Design principles (matching the rest of the module):
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors, forwarded
//     from the matrix package where the condition is matrix-shaped.
//   - O(T) / O(T·R) worst case; no hidden allocations.
package em

import (
	"math"

	"github.com/rnakit/emquant/matrix"
)

// validateAbundance verifies that v is a usable abundance vector against a
// transcript count of n: correct length, every entry finite and ≥ 0.
// It deliberately does NOT require v to sum to 1; Run documents that a
// caller-supplied Initial is used as-is.
//
// Errors: matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
// matrix.ErrNegativeEntry.
//
// Complexity: O(n).
func validateAbundance(v []float64, n int) error {
	if err := matrix.ValidateVecLen(v, n); err != nil {
		return err
	}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return matrix.ErrNaNInf
		}
		if x < 0 {
			return matrix.ErrNegativeEntry
		}
	}

	return nil
}

// validateOptions checks internal consistency of Options without referencing
// the assignment matrix (Initial is validated later, once T is known).
//
// Errors: ErrBadTolerance, ErrBadMaxIterations.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// A non-positive tolerance can never be satisfied by a non-negative
	// delta; NaN poisons the comparison silently. Reject both.
	if !(opts.Tolerance > 0) || math.IsInf(opts.Tolerance, 0) {
		return ErrBadTolerance
	}
	if opts.MaxIterations < 1 {
		return ErrBadMaxIterations
	}

	return nil
}
