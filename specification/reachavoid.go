package specification

// ReachAvoidProperty implements FiniteTimeReachAvoid(G,O,K) and
// InfiniteTimeReachAvoid(G,O,ε): reach G while avoiding O, with G-reaching
// latching at 1 and O-entering latching at 0.
type ReachAvoidProperty struct {
	target stateSet
	avoid  stateSet
}

// NewReachAvoid builds a ReachAvoidProperty over target set G and avoid set
// O; G and O must be disjoint.
func NewReachAvoid(target, avoid []int, numStates int) (*ReachAvoidProperty, error) {
	ts, err := newStateSet(target, numStates)
	if err != nil {
		return nil, err
	}
	if len(ts.members) == 0 {
		return nil, ErrEmptySet
	}
	as, err := newStateSet(avoid, numStates)
	if err != nil {
		return nil, err
	}
	if len(as.members) == 0 {
		return nil, ErrEmptySet
	}
	for _, g := range ts.members {
		if as.contains(g) {
			return nil, ErrEmptySet
		}
	}
	return &ReachAvoidProperty{target: ts, avoid: as}, nil
}

func (p *ReachAvoidProperty) Kind() Kind { return KindReachAvoid }

func (p *ReachAvoidProperty) Init(n int) []float64 {
	v := make([]float64, n)
	for _, g := range p.target.members {
		v[g] = 1
	}
	return v
}

func (p *ReachAvoidProperty) PostUpdate(s int, b float64) float64 {
	switch {
	case p.target.contains(s):
		return 1
	case p.avoid.contains(s):
		return 0
	default:
		return b
	}
}

func (p *ReachAvoidProperty) FinalReport(v []float64) []float64 { return identityReport(v) }

// ExactTimeReachAvoidProperty implements ExactTimeReachAvoid(G,O,K): same
// initialization as ReachAvoidProperty, but the post-update only masks on
// O, never latches on G.
type ExactTimeReachAvoidProperty struct {
	target stateSet
	avoid  stateSet
}

// NewExactTimeReachAvoid builds an ExactTimeReachAvoidProperty over target
// set G and avoid set O; G and O must be disjoint.
func NewExactTimeReachAvoid(target, avoid []int, numStates int) (*ExactTimeReachAvoidProperty, error) {
	ts, err := newStateSet(target, numStates)
	if err != nil {
		return nil, err
	}
	if len(ts.members) == 0 {
		return nil, ErrEmptySet
	}
	as, err := newStateSet(avoid, numStates)
	if err != nil {
		return nil, err
	}
	if len(as.members) == 0 {
		return nil, ErrEmptySet
	}
	for _, g := range ts.members {
		if as.contains(g) {
			return nil, ErrEmptySet
		}
	}
	return &ExactTimeReachAvoidProperty{target: ts, avoid: as}, nil
}

func (p *ExactTimeReachAvoidProperty) Kind() Kind { return KindExactTimeReachAvoid }

func (p *ExactTimeReachAvoidProperty) Init(n int) []float64 {
	v := make([]float64, n)
	for _, g := range p.target.members {
		v[g] = 1
	}
	return v
}

func (p *ExactTimeReachAvoidProperty) PostUpdate(s int, b float64) float64 {
	if p.avoid.contains(s) {
		return 0
	}
	return b
}

func (p *ExactTimeReachAvoidProperty) FinalReport(v []float64) []float64 { return identityReport(v) }
