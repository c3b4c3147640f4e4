package solver

import "errors"

var (
	// ErrInvalidParameter is returned for an out-of-range option (threads
	// < 1, max_iterations <= 0, epsilon <= 0) or an inconsistent problem
	// (a control-synthesis problem with strategy kind None).
	ErrInvalidParameter = errors.New("solver: invalid parameter")

	// ErrIterationLimitExceeded is returned when Convergence termination
	// fails to reach its residual threshold within max_iterations.
	ErrIterationLimitExceeded = errors.New("solver: iteration limit exceeded before convergence")

	// ErrCancelled is returned when the caller's cancellation hook fires
	// between iterations.
	ErrCancelled = errors.New("solver: cancelled")

	// ErrUnsupportedAlgorithm is returned by New for an Algorithm tag with
	// no backing kernel: VertexEnumeration always, or LPMcCormickRelaxation
	// selected via WithAlgorithm with a nil LPPlugin (spec.md §6: only
	// OMaximization MUST be implemented natively).
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")
)
