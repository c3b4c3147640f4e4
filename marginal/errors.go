package marginal

import "errors"

var (
	// ErrDimensionMismatch indicates prod(source_dims)*prod(action_vars)
	// does not equal the backing ambiguity.Sets column count, or a
	// FactoredRMDP was built with a marginal count/target size that does
	// not match its declared state_shape.
	ErrDimensionMismatch = errors.New("marginal: dimension mismatch")

	// ErrInvalidIndex indicates a selected state_indices/action_indices
	// entry exceeds the global state/action shape, or a Get() call's
	// multi-index is out of range for its declared dims.
	ErrInvalidIndex = errors.New("marginal: index out of range")
)
