package solver

import "github.com/ambisys/frmdp/strategy"

// Result is the outcome of a Driver.Run call: the reported value function
// (after Property.FinalReport), the iteration count, the terminal
// residual, and — if a strategy cache other than KindNone/KindGiven was
// configured — the recorded strategy.
type Result struct {
	// Value is the reported value function, indexed by the same flat
	// index the Problem iterates over (plain state index, or
	// q*stateSize+s for a product problem).
	Value []float64
	// Iterations is the number of completed Bellman sweeps.
	Iterations int
	// Residual is ‖V_K − V_{K-1}‖_∞ from the final completed sweep. For
	// FixedIterations termination this is informational only; it is not
	// compared against any threshold.
	Residual float64
	// Strategy is the strategy cache the driver used: the recording cache
	// for KindStationary/KindTimeVarying, the supplied cache for KindGiven,
	// and the non-recording strategy.NewNone() cache for KindNone.
	Strategy strategy.Cache
}

// Stationary returns the recorded stationary strategy array, and ok=false
// if the driver was not configured with strategy.KindStationary.
func (r *Result) Stationary() (actions []int, ok bool) {
	c, ok := r.Strategy.(*strategy.StationaryCache)
	if !ok {
		return nil, false
	}
	return c.Actions(), true
}

// TimeVarying returns the recorded per-iteration strategy history, and
// ok=false if the driver was not configured with strategy.KindTimeVarying.
func (r *Result) TimeVarying() (history [][]int, ok bool) {
	c, ok := r.Strategy.(*strategy.TimeVaryingCache)
	if !ok {
		return nil, false
	}
	return c.History(), true
}
