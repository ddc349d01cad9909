// Package matrix: centralized validators.
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep downstream kernels minimal by delegating nil/shape/policy checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateAssignment runs O(r*c) over the flat storage.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Policy).

package matrix

import "math"

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateAssignment verifies that m is a well-formed assignment matrix:
// non-nil, at least one row, and every entry finite and non-negative.
// Construction paths already enforce the policy; this validator exists so
// facades that accept a *Dense from arbitrary callers can fail fast before
// any arithmetic.
// Complexity: O(r*c) time, O(1) space.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNaNInf, ErrNegativeEntry.
func ValidateAssignment(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r < 1 || m.c < 0 || len(m.data) != m.r*m.c {
		return ErrBadShape
	}

	for _, v := range m.data {
		if isNonFinite(v) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegativeEntry
		}
	}

	return nil
}

// ValidateVecLen verifies len(v) == n, the contract for any vector paired
// with a matrix dimension (abundance vectors against row counts).
// Complexity: O(1).
//
// Errors: ErrDimensionMismatch.
func ValidateVecLen(v []float64, n int) error {
	if len(v) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSameShape verifies that a and b share rows and cols.
// Assumes both are non-nil (compose with ValidateNotNil).
// Complexity: O(1).
//
// Errors: ErrDimensionMismatch.
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}
