// Package em: options, result type, and sentinel errors.
package em

import (
	"errors"
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opExpect   = "Expect"
	opMaximize = "Maximize"
	opRun      = "Run"
)

// emErrorf wraps err with an operation tag, preserving the original sentinel
// via %w so callers can still match with errors.Is. Call only with err != nil.
func emErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// DEFAULTS - single source of truth for DefaultOptions.
const (
	// DefaultTolerance is the maximum per-entry absolute change between
	// successive abundance vectors below which the loop is considered
	// converged.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations is the hard cap on EM iterations.
	DefaultMaxIterations = 10000
)

var (
	// ErrBadTolerance indicates a non-positive or non-finite convergence
	// tolerance.
	ErrBadTolerance = errors.New("em: tolerance must be positive and finite")

	// ErrBadMaxIterations indicates an iteration cap below 1.
	ErrBadMaxIterations = errors.New("em: max iterations must be >= 1")

	// ErrNotConverged signals that the iteration budget was exhausted before
	// the tolerance was met. It is a warning, not a failure: Run still
	// returns the best available estimate and the exhausted iteration count
	// alongside this sentinel.
	ErrNotConverged = errors.New("em: did not converge within max iterations")
)

// Options configures Run.
//
// Fields:
//   - Tolerance     — convergence threshold: the loop stops once
//     max_t |π'[t] − π[t]| < Tolerance. Must be positive and finite.
//   - MaxIterations — hard cap on iterations. Must be ≥ 1.
//   - Initial       — optional starting abundance estimate of length T.
//     nil means uniform 1/T. A supplied vector is used as-is: Run does not
//     renormalize it (caller responsibility), only checks that entries are
//     finite and non-negative.
//   - OnIteration   — optional observation hook invoked after each completed
//     E+M iteration with the 1-based iteration number and the per-entry
//     max absolute change. Purely observational: it cannot alter loop state.
//
// Example:
//
//	opts := em.DefaultOptions()
//	opts.Tolerance = 1e-6
//	opts.OnIteration = func(iter int, delta float64) {
//	  fmt.Printf("iter %d: delta=%.3g\n", iter, delta)
//	}
//	res, err := em.Run(a, opts)
type Options struct {
	Tolerance     float64
	MaxIterations int
	Initial       []float64
	OnIteration   func(iter int, delta float64)
}

// DefaultOptions returns the documented defaults: Tolerance=1e-4,
// MaxIterations=10000, uniform initialization, no hook.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Result holds the outcome of Run.
type Result struct {
	// Abundance is the final abundance estimate, indexed by the assignment
	// matrix's row order. Entries are non-negative and sum to 1 within
	// floating-point tolerance.
	Abundance []float64

	// Iterations is the number of completed EM iterations (1-based count of
	// the last iteration executed).
	Iterations int

	// Converged reports whether the tolerance was met within the iteration
	// budget. When false, Abundance is still the best available estimate.
	Converged bool
}
