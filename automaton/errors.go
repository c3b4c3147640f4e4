package automaton

import "errors"

var (
	// ErrBadShape is returned when a transition table is ragged or has zero
	// states/symbols.
	ErrBadShape = errors.New("automaton: bad transition table shape")

	// ErrOutOfRange is returned when a state or symbol index falls outside
	// its declared bound.
	ErrOutOfRange = errors.New("automaton: index out of range")

	// ErrDimensionMismatch is returned when a Labelling or ProductProcess is
	// built against components whose sizes disagree.
	ErrDimensionMismatch = errors.New("automaton: dimension mismatch")
)
