// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid: fewer than
	// one row (at least one transcript is required), a negative column
	// count, or ragged row input to FromRows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row/RowSum/ColSum) return this, never
	// panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between a
	// matrix and a companion vector or between two matrices expected to
	// share a shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativeEntry signals that a negative value was supplied where the
	// assignment-matrix policy requires entries ≥ 0.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (FromRows, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is
	// required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
