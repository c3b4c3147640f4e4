package specification

// ReachabilityProperty implements FiniteTimeReachability(G,K) and
// InfiniteTimeReachability(G,ε): V_0(s) = 1{s∈G}; once G is reached the
// value latches at 1 for all subsequent iterations.
type ReachabilityProperty struct {
	target stateSet
}

// NewReachability builds a ReachabilityProperty over target set G, each
// index in [0, numStates).
func NewReachability(target []int, numStates int) (*ReachabilityProperty, error) {
	ts, err := newStateSet(target, numStates)
	if err != nil {
		return nil, err
	}
	if len(ts.members) == 0 {
		return nil, ErrEmptySet
	}
	return &ReachabilityProperty{target: ts}, nil
}

func (p *ReachabilityProperty) Kind() Kind { return KindReachability }

func (p *ReachabilityProperty) Init(n int) []float64 {
	v := make([]float64, n)
	for _, g := range p.target.members {
		v[g] = 1
	}
	return v
}

func (p *ReachabilityProperty) PostUpdate(s int, b float64) float64 {
	if p.target.contains(s) {
		return 1
	}
	return b
}

func (p *ReachabilityProperty) FinalReport(v []float64) []float64 { return identityReport(v) }

// ExactTimeReachabilityProperty implements ExactTimeReachability(G,K): the
// same initialization as ReachabilityProperty, but the post-update never
// masks with the target indicator — it reports the raw Bellman output at
// every step. At K=0 this degenerates to exactly the target indicator
// (spec.md §8 invariant 10).
type ExactTimeReachabilityProperty struct {
	target stateSet
}

// NewExactTimeReachability builds an ExactTimeReachabilityProperty over
// target set G.
func NewExactTimeReachability(target []int, numStates int) (*ExactTimeReachabilityProperty, error) {
	ts, err := newStateSet(target, numStates)
	if err != nil {
		return nil, err
	}
	if len(ts.members) == 0 {
		return nil, ErrEmptySet
	}
	return &ExactTimeReachabilityProperty{target: ts}, nil
}

func (p *ExactTimeReachabilityProperty) Kind() Kind { return KindExactTimeReachability }

func (p *ExactTimeReachabilityProperty) Init(n int) []float64 {
	v := make([]float64, n)
	for _, g := range p.target.members {
		v[g] = 1
	}
	return v
}

func (p *ExactTimeReachabilityProperty) PostUpdate(_ int, b float64) float64 { return b }

func (p *ExactTimeReachabilityProperty) FinalReport(v []float64) []float64 { return identityReport(v) }
