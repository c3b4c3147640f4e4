package bellman

import "errors"

var (
	// ErrEmptyActionSet is returned by the per-state reduction when a
	// state's feasible action set is empty.
	ErrEmptyActionSet = errors.New("bellman: empty feasible action set")

	// ErrDimensionMismatch is returned when a value vector's length does
	// not match the target count an ambiguity set expects.
	ErrDimensionMismatch = errors.New("bellman: dimension mismatch")

	// ErrInvalidMode is returned for an out-of-range SatisfactionMode or
	// StrategyMode value.
	ErrInvalidMode = errors.New("bellman: invalid mode")
)
