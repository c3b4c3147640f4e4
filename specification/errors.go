package specification

import "errors"

var (
	// ErrEmptySet is returned when a target or avoid set is empty where
	// the property requires at least one member.
	ErrEmptySet = errors.New("specification: empty target/avoid set")

	// ErrInvalidDiscount is returned when a reward property's discount ν
	// is outside the range the horizon kind requires: (0,1) for infinite
	// horizon, (0,1] for finite horizon.
	ErrInvalidDiscount = errors.New("specification: invalid discount factor")

	// ErrOutOfRange is returned when a state or DFA-state index in a set
	// falls outside its declared state-space bound.
	ErrOutOfRange = errors.New("specification: index out of range")

	// ErrInvalidMode is returned for an out-of-range SatisfactionMode or
	// StrategyMode.
	ErrInvalidMode = errors.New("specification: invalid mode")
)
