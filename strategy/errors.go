package strategy

import "errors"

var (
	// ErrOutOfRange indicates a state or time index outside the cache's
	// declared bounds.
	ErrOutOfRange = errors.New("strategy: index out of range")

	// ErrNoHistory indicates At was called on a TimeVarying cache before
	// any iteration had been recorded.
	ErrNoHistory = errors.New("strategy: no recorded iterations")
)
