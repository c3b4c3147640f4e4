package strategy

// GivenCache is the KindGiven variant: a fixed, externally supplied
// strategy, used by the Bellman per-state reduction to select a single
// action per state instead of reducing over the full feasible action set
// (spec.md §4.8: "the non-optimizing variant (given a strategy) uses it to
// select a single action per state").
type GivenCache struct {
	actions []int
}

// NewGiven wraps a precomputed strategy array (indexed by state) as a
// KindGiven cache.
func NewGiven(actions []int) *GivenCache {
	cp := make([]int, len(actions))
	copy(cp, actions)
	return &GivenCache{actions: cp}
}

// Kind returns KindGiven.
func (c *GivenCache) Kind() Kind { return KindGiven }

// Action returns the fixed action for state.
func (c *GivenCache) Action(state int) int { return c.actions[state] }

var _ Given = (*GivenCache)(nil)
