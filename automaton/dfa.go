package automaton

// DFA is the deterministic finite automaton of spec.md §3: a tuple
// (Q, q0, Σ, δ). The accepting set F is deliberately absent here — it is
// carried by the specification.Property (DFAReachability) that consumes
// this automaton, not by the automaton itself, since the same DFA can be
// paired with different acceptance conventions.
type DFA struct {
	numStates    int
	alphabetSize int
	initial      int
	delta        [][]int // delta[sigma][q] = next state, len(delta) == alphabetSize
	atomicProps  []string
}

// NewDFA builds a DFA from an explicit transition table: delta[sigma][q]
// must be the successor of state q on input symbol sigma. atomicProps is
// optional metadata naming each alphabet symbol (e.g. propositions over
// atomic predicates); pass nil to omit it.
func NewDFA(delta [][]int, initial int, atomicProps []string) (*DFA, error) {
	alphabetSize := len(delta)
	if alphabetSize == 0 {
		return nil, ErrBadShape
	}
	numStates := len(delta[0])
	if numStates == 0 {
		return nil, ErrBadShape
	}
	for _, row := range delta {
		if len(row) != numStates {
			return nil, ErrBadShape
		}
		for _, q := range row {
			if q < 0 || q >= numStates {
				return nil, ErrOutOfRange
			}
		}
	}
	if initial < 0 || initial >= numStates {
		return nil, ErrOutOfRange
	}
	if atomicProps != nil && len(atomicProps) != alphabetSize {
		return nil, ErrDimensionMismatch
	}

	rows := make([][]int, alphabetSize)
	for i, row := range delta {
		rows[i] = append([]int(nil), row...)
	}
	var props []string
	if atomicProps != nil {
		props = append([]string(nil), atomicProps...)
	}

	return &DFA{
		numStates:    numStates,
		alphabetSize: alphabetSize,
		initial:      initial,
		delta:        rows,
		atomicProps:  props,
	}, nil
}

// NumStates returns |Q|.
func (d *DFA) NumStates() int { return d.numStates }

// AlphabetSize returns |Σ|.
func (d *DFA) AlphabetSize() int { return d.alphabetSize }

// Initial returns q0.
func (d *DFA) Initial() int { return d.initial }

// AtomicProps returns the optional symbol names, or nil if none were given.
func (d *DFA) AtomicProps() []string { return d.atomicProps }

// Next evaluates δ(q, sigma).
func (d *DFA) Next(q, sigma int) (int, error) {
	if q < 0 || q >= d.numStates {
		return 0, ErrOutOfRange
	}
	if sigma < 0 || sigma >= d.alphabetSize {
		return 0, ErrOutOfRange
	}
	return d.delta[sigma][q], nil
}
