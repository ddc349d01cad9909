// Package em: the iteration controller.
package em

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/rnakit/emquant/matrix"
)

// Run alternates Expect and Maximize until the abundance estimate stabilizes
// or the iteration budget runs out.
//
// Algorithm:
//   - Stage 1 (Validate): assignment is a well-formed assignment matrix;
//     Options are internally consistent; a supplied Initial has length T
//     with finite, non-negative entries. Initial is used as-is — Run never
//     renormalizes it.
//   - Stage 2 (Init): π ← Initial (defensively copied) or uniform 1/T.
//   - Stage 3 (Loop), for iter = 1..MaxIterations:
//     P ← Expect(π, A); π' ← Maximize(P, A);
//     delta ← max_t |π'[t] − π[t]|; invoke OnIteration(iter, delta) if set;
//     π ← π'; converged when delta < Tolerance.
//
// On convergence Run returns (Result{π, iter, true}, nil). On exhaustion it
// returns (Result{π, MaxIterations, false}, ErrNotConverged): the estimate
// is every bit as usable as a converged one — the sentinel is a warning the
// caller may match with errors.Is or ignore.
//
// Determinism: fixed inputs produce identical outputs; there is no
// randomness and no concurrency. The per-iteration dependency chain makes
// the loop inherently sequential.
//
// Errors: matrix sentinels from validation (nil matrix, bad shape, negative
// or non-finite entries, dimension mismatch), ErrBadTolerance,
// ErrBadMaxIterations, ErrNotConverged — all wrapped with the Run tag except
// ErrNotConverged, which is returned bare beside a valid Result.
//
// Complexity: O(iters·T·R) time, O(T·R) transient memory per iteration.
func Run(assignment *matrix.Dense, opts Options) (Result, error) {
	// Stage 1: fail-fast validation before any computation begins.
	if err := matrix.ValidateAssignment(assignment); err != nil {
		return Result{}, emErrorf(opRun, err)
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, emErrorf(opRun, err)
	}

	// Stage 2: initialize the estimate.
	tN := assignment.Rows()
	pi := make([]float64, tN)
	if opts.Initial != nil {
		if err := validateAbundance(opts.Initial, tN); err != nil {
			return Result{}, emErrorf(opRun, err)
		}
		copy(pi, opts.Initial) // never mutate the caller's slice
	} else {
		uniform(pi)
	}

	// Stage 3: the EM loop. diff is reused scratch for per-entry deltas.
	var (
		diff  = make([]float64, tN)
		post  *matrix.Dense
		next  []float64
		delta float64
		iter  int
		err   error
	)
	for iter = 1; iter <= opts.MaxIterations; iter++ {
		if post, err = Expect(pi, assignment); err != nil {
			return Result{}, emErrorf(opRun, err)
		}
		if next, err = Maximize(post, assignment); err != nil {
			return Result{}, emErrorf(opRun, err)
		}

		floats.SubTo(diff, next, pi)
		delta = floats.Norm(diff, math.Inf(1))
		if opts.OnIteration != nil {
			opts.OnIteration(iter, delta)
		}

		pi = next
		if delta < opts.Tolerance {
			return Result{Abundance: pi, Iterations: iter, Converged: true}, nil
		}
	}

	// Budget exhausted: warning, not failure — the estimate stays usable.
	return Result{Abundance: pi, Iterations: opts.MaxIterations, Converged: false}, ErrNotConverged
}
