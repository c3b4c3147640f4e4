package strategy

// StationaryCache is the KindStationary variant of spec.md §4.8: one array
// indexed by state, overwritten every iteration. At value-iteration
// termination it holds the optimal stationary strategy.
type StationaryCache struct {
	actions []int
}

// NewStationary allocates a StationaryCache for numStates states, every
// entry initialized to -1 (unset).
func NewStationary(numStates int) *StationaryCache {
	actions := make([]int, numStates)
	for i := range actions {
		actions[i] = -1
	}
	return &StationaryCache{actions: actions}
}

// Kind returns KindStationary.
func (c *StationaryCache) Kind() Kind { return KindStationary }

// Record overwrites the chosen action for state.
func (c *StationaryCache) Record(state, action int) {
	c.actions[state] = action
}

// Action returns the currently recorded action for state, or -1 if unset.
func (c *StationaryCache) Action(state int) int { return c.actions[state] }

// Actions returns the full strategy array, indexed by state. The returned
// slice is a live view, not a copy.
func (c *StationaryCache) Actions() []int { return c.actions }

var _ Recorder = (*StationaryCache)(nil)
