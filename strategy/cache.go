package strategy

// Kind identifies which of the four spec.md §4.8 strategy-cache variants a
// Cache implements.
type Kind int

const (
	// KindNone records nothing; only the reduced value is kept.
	// Allocation-free.
	KindNone Kind = iota
	// KindStationary overwrites one array indexed by state every
	// iteration; at termination it holds the optimal stationary strategy.
	KindStationary
	// KindTimeVarying appends one per-step array every iteration, in
	// order of decreasing time-to-horizon.
	KindTimeVarying
	// KindGiven holds a fixed, externally supplied strategy used to
	// select (not optimize) a single action per state.
	KindGiven
)

// Cache is the common contract of every strategy-cache variant.
type Cache interface {
	Kind() Kind
}

// Recorder is implemented by variants that accept Record calls from the
// Bellman per-state reduction (spec.md §4.5's "when a strategy is being
// synthesized, the argmax/argmin is recorded in addition to the reduced
// value"). KindNone and KindGiven do not implement Recorder.
type Recorder interface {
	Cache
	// Record stores action as the chosen action for state in the current
	// iteration.
	Record(state, action int)
}

// Given is implemented only by the KindGiven variant: it supplies a fixed
// action per state instead of being optimized over.
type Given interface {
	Cache
	// Action returns the fixed action for state.
	Action(state int) int
}

// noneCache is the KindNone variant: no-op, allocation-free.
type noneCache struct{}

// NewNone returns a Cache that records nothing.
func NewNone() Cache { return noneCache{} }

func (noneCache) Kind() Kind { return KindNone }
