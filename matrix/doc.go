// Package matrix provides the dense assignment-matrix value type consumed by
// the em package, plus the centralized validators that keep its numeric
// policy in one place.
//
// 🚀 What is an assignment matrix?
//
//	A T×R matrix in which rows are transcripts (isoforms) and columns are
//	reads. Entry a[t,r] records the compatibility of read r with
//	transcript t — typically binary (0/1), but any non-negative finite
//	weight is accepted, so weighted compatibility schemes are not
//	precluded.
//
// ✨ Key properties:
//   - row-major flat []float64 storage for cache friendliness
//   - every write enforces the numeric policy: entries must be
//     non-negative and finite (no NaN, no ±Inf)
//   - T ≥ 1 (at least one transcript); R ≥ 0 (a read-less matrix is legal)
//   - shape is immutable after construction
//
// ⚙️ Usage:
//
//	a, err := matrix.FromRows([][]float64{
//	  {1, 0, 1, 1, 1},
//	  {1, 1, 0, 0, 1},
//	  {1, 1, 1, 0, 0},
//	})
//	if err != nil {
//	  // handle ErrBadShape / ErrNegativeEntry / ErrNaNInf
//	}
//
// All error conditions surface as package-level sentinels checked with
// errors.Is; no function panics on user input.
package matrix
