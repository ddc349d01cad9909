// Package em estimates relative transcript (isoform) abundances from
// ambiguous read-to-transcript assignments via Expectation-Maximization.
//
// 🚀 What does it solve?
//
//	Reads from a sequencing experiment are often compatible with several
//	transcripts at once. Given a T×R assignment matrix (rows: transcripts,
//	columns: reads), em finds the abundance vector π over the probability
//	simplex that maximizes the likelihood of the observed assignments
//	under a multinomial mixture model — the quantification scheme
//	popularized by kallisto-style RNA-seq pipelines.
//
// ✨ Key features:
//   - Expect: per-read posterior responsibilities with safe division
//     (reads compatible with nothing contribute nothing, no NaNs)
//   - Maximize: re-estimated abundances, always a valid probability
//     vector — uniform fallback when no read carries any responsibility
//   - Run: convergence-controlled loop with per-entry tolerance,
//     iteration cap, and an optional per-iteration observation hook
//   - deterministic: fixed loop orders, no randomness, no goroutines
//
// ⚙️ Usage:
//
//	a, _ := matrix.FromRows([][]float64{
//	  {1, 0, 1, 1, 1},
//	  {1, 1, 0, 0, 1},
//	  {1, 1, 1, 0, 0},
//	})
//	res, err := em.Run(a, em.DefaultOptions())
//	if err != nil && !errors.Is(err, em.ErrNotConverged) {
//	  // malformed input
//	}
//	fmt.Println(res.Abundance, res.Iterations, res.Converged)
//
// Abundances are indexed by the assignment matrix's row order and are never
// reordered internally.
//
// Error model:
//
//	Malformed input (nil matrix, dimension mismatch, negative or non-finite
//	abundance entries) fails fast with sentinel errors before any
//	arithmetic. Degenerate numeric cases (all-zero columns, all-zero
//	posteriors) are handled, not raised. Exhausting the iteration budget
//	returns ErrNotConverged alongside a fully usable Result — a warning,
//	never a failure.
//
// Performance:
//
//   - Expect:   O(T·R) time, O(T·R) memory for the posterior
//   - Maximize: O(T·R) time, O(T) memory
//   - Run:      O(iters·T·R) time
//
// See examples in example_test.go and the runnable walkthrough under
// examples/.
package em
