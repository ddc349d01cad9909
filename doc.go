// Package emquant estimates relative transcript (isoform) abundances from
// ambiguous read-to-transcript assignments using Expectation-Maximization —
// the quantification core of kallisto-style RNA-seq pipelines.
//
// 🚀 What is emquant?
//
//	A small, deterministic, pure-Go library with two packages:
//		• matrix/ — dense T×R assignment-matrix value type with a strict
//		  numeric policy (non-negative, finite entries) and centralized
//		  validators
//		• em/     — the EM core: Expect (per-read posterior
//		  responsibilities), Maximize (re-estimated abundances), and Run
//		  (convergence-controlled iteration with tolerance and cap)
//
// ✨ Why choose emquant?
//
//   - Rock-solid degenerate-case handling — reads compatible with nothing,
//     all-zero matrices, and read-less transcript sets all produce valid
//     probability vectors instead of NaNs or panics
//   - Fail-fast validation — malformed input is rejected with sentinel
//     errors before any arithmetic begins
//   - Non-convergence is a warning, never a failure — the best estimate is
//     always returned, flagged via Result.Converged and em.ErrNotConverged
//   - Deterministic — fixed loop orders, no randomness, no goroutines
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{
//	  {1, 0, 1, 1, 1},
//	  {1, 1, 0, 0, 1},
//	  {1, 1, 1, 0, 0},
//	})
//	res, _ := em.Run(a, em.DefaultOptions())
//	// res.Abundance sums to 1, indexed by the matrix's row order.
//
// See examples/ for a runnable walkthrough and each package's doc.go for
// contracts and complexity notes.
//
//	go get github.com/rnakit/emquant
package emquant
