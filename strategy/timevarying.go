package strategy

// TimeVaryingCache is the KindTimeVarying variant of spec.md §4.8: one
// per-step array is appended every iteration. Per the spec, entries are
// appended "in order of decreasing time to horizon", so for a K-step
// horizon, History()[0] is the action array to play at time K-1 (the first
// Bellman iteration, one step from the horizon); this falls out naturally
// from appending in the driver's own iteration order, with no reordering
// needed.
type TimeVaryingCache struct {
	numStates int
	current   []int
	history   [][]int
}

// NewTimeVarying allocates a TimeVaryingCache for numStates states with an
// empty history.
func NewTimeVarying(numStates int) *TimeVaryingCache {
	return &TimeVaryingCache{numStates: numStates, current: freshRow(numStates)}
}

func freshRow(n int) []int {
	row := make([]int, n)
	for i := range row {
		row[i] = -1
	}
	return row
}

// Kind returns KindTimeVarying.
func (c *TimeVaryingCache) Kind() Kind { return KindTimeVarying }

// Record sets the chosen action for state in the iteration currently being
// recorded (not yet appended to history).
func (c *TimeVaryingCache) Record(state, action int) {
	c.current[state] = action
}

// EndIteration appends a snapshot of the current iteration's per-state
// actions to History and starts a fresh working row. The driver calls this
// once per value-iteration step, in iteration order.
func (c *TimeVaryingCache) EndIteration() {
	c.history = append(c.history, c.current)
	c.current = freshRow(c.numStates)
}

// Horizon returns the number of recorded iterations (len(History())).
func (c *TimeVaryingCache) Horizon() int { return len(c.history) }

// History returns the full per-iteration strategy sequence: History()[t][s]
// is the action recorded for state s at iteration t (time K-1-t for a
// K-step horizon). The returned slice and its rows are live views, not
// copies.
func (c *TimeVaryingCache) History() [][]int { return c.history }

// At returns the action recorded for state at iteration time, ErrNoHistory
// if no iteration has been recorded yet, or ErrOutOfRange if time or state
// is out of bounds.
func (c *TimeVaryingCache) At(time, state int) (int, error) {
	if len(c.history) == 0 {
		return 0, ErrNoHistory
	}
	if time < 0 || time >= len(c.history) {
		return 0, ErrOutOfRange
	}
	if state < 0 || state >= c.numStates {
		return 0, ErrOutOfRange
	}
	return c.history[time][state], nil
}

var _ Recorder = (*TimeVaryingCache)(nil)
