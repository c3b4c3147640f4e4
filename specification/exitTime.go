package specification

// ExpectedExitTimeProperty implements ExpectedExitTime(O,ε): V_0(s) = 0;
// V_{k+1}(s) = 0 if s∈O else 1+B(s) — each step outside O accrues one unit
// of expected time until absorption into O.
type ExpectedExitTimeProperty struct {
	avoid stateSet
}

// NewExpectedExitTime builds an ExpectedExitTimeProperty over absorbing set
// O.
func NewExpectedExitTime(avoid []int, numStates int) (*ExpectedExitTimeProperty, error) {
	as, err := newStateSet(avoid, numStates)
	if err != nil {
		return nil, err
	}
	if len(as.members) == 0 {
		return nil, ErrEmptySet
	}
	return &ExpectedExitTimeProperty{avoid: as}, nil
}

func (p *ExpectedExitTimeProperty) Kind() Kind { return KindExpectedExitTime }

func (p *ExpectedExitTimeProperty) Init(n int) []float64 { return make([]float64, n) }

func (p *ExpectedExitTimeProperty) PostUpdate(s int, b float64) float64 {
	if p.avoid.contains(s) {
		return 0
	}
	return 1 + b
}

func (p *ExpectedExitTimeProperty) FinalReport(v []float64) []float64 { return identityReport(v) }
