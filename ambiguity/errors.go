// Package ambiguity: sentinel error set.
//
// Every algorithm in this package returns one of these sentinels (never a
// bespoke error type); callers branch with errors.Is. Context is attached by
// wrapping at the call site with fmt.Errorf("%w: ...", ErrX) — sentinels
// themselves are never wrapped at their definition site.
//
// ERROR PRIORITY (order in which Build checks):
// dimension mismatch -> shape -> per column: empty support -> per element
// in support order: NaN/Inf, then negative bound or L+G > 1 -> column sums
// (ΣL > 1, Σ(L+G) < 1).
package ambiguity

import "errors"

var (
	// ErrBadShape is returned when T (targets) or N (columns) is <= 0.
	ErrBadShape = errors.New("ambiguity: invalid shape")

	// ErrOutOfRange indicates a column or target index outside declared bounds.
	ErrOutOfRange = errors.New("ambiguity: index out of range")

	// ErrDimensionMismatch indicates lower/upper matrices of unequal shape,
	// or (for sparse input) unequal sparsity patterns between lower and upper.
	ErrDimensionMismatch = errors.New("ambiguity: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf bound where a finite value is required.
	ErrNaNInf = errors.New("ambiguity: NaN or Inf encountered")

	// ErrInvalidProbabilityBounds signals a violation of the interval
	// ambiguity set invariants: negative L or G, L+G > 1, ΣL > 1, or
	// Σ(L+G) < 1, for some column.
	ErrInvalidProbabilityBounds = errors.New("ambiguity: invalid probability bounds")

	// ErrEmptySupport indicates a column whose support is empty (no target
	// can ever receive probability mass), which cannot satisfy Σ(L+G) ≥ 1.
	ErrEmptySupport = errors.New("ambiguity: empty support")
)
