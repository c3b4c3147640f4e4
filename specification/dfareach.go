package specification

// DFAReachabilityProperty implements DFAReachability(F,…): reachability
// over the product state space S×Q with target G = S×F, per spec.md §4.9.
// It is indexed over the flattened product space with q varying slower
// than s: flat index = q*stateSize + s. solver.Driver is responsible for
// iterating the product value tensor in that order when it calls Init and
// PostUpdate for a DFAReachability property; the Bellman step itself
// (bellman.RelabelProduct followed by the per-state reduction) runs once
// per q and is unaware of this flattening.
type DFAReachabilityProperty struct {
	accepting stateSet
	stateSize int
	numDFA    int
}

// NewDFAReachability builds a DFAReachabilityProperty over accepting DFA
// states F, for a product space of stateSize fRMDP states and numDFA DFA
// states.
func NewDFAReachability(accepting []int, stateSize, numDFA int) (*DFAReachabilityProperty, error) {
	fs, err := newStateSet(accepting, numDFA)
	if err != nil {
		return nil, err
	}
	if len(fs.members) == 0 {
		return nil, ErrEmptySet
	}
	return &DFAReachabilityProperty{accepting: fs, stateSize: stateSize, numDFA: numDFA}, nil
}

func (p *DFAReachabilityProperty) Kind() Kind { return KindDFAReachability }

// StateSize returns the underlying fRMDP's state count.
func (p *DFAReachabilityProperty) StateSize() int { return p.stateSize }

// NumDFAStates returns |Q|.
func (p *DFAReachabilityProperty) NumDFAStates() int { return p.numDFA }

// Accepting reports whether DFA state q is in F.
func (p *DFAReachabilityProperty) Accepting(q int) bool { return p.accepting.contains(q) }

func (p *DFAReachabilityProperty) Init(n int) []float64 {
	v := make([]float64, n)
	for idx := range v {
		q := idx / p.stateSize
		if p.accepting.contains(q) {
			v[idx] = 1
		}
	}
	return v
}

func (p *DFAReachabilityProperty) PostUpdate(s int, b float64) float64 {
	q := s / p.stateSize
	if p.accepting.contains(q) {
		return 1
	}
	return b
}

func (p *DFAReachabilityProperty) FinalReport(v []float64) []float64 { return identityReport(v) }
