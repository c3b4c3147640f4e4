package automaton

// Labelling is the deterministic labelling function L: S -> Σ of spec.md §3,
// mapping each flat fRMDP state index to a single DFA input symbol.
type Labelling struct {
	labels       []int
	alphabetSize int
}

// NewLabelling builds a Labelling over len(labels) states, each entry of
// labels giving that state's symbol in [0, alphabetSize).
func NewLabelling(labels []int, alphabetSize int) (*Labelling, error) {
	if alphabetSize <= 0 {
		return nil, ErrBadShape
	}
	for _, sigma := range labels {
		if sigma < 0 || sigma >= alphabetSize {
			return nil, ErrOutOfRange
		}
	}
	cp := append([]int(nil), labels...)
	return &Labelling{labels: cp, alphabetSize: alphabetSize}, nil
}

// NumStates returns the number of labelled states.
func (l *Labelling) NumStates() int { return len(l.labels) }

// AlphabetSize returns the Σ the labels range over.
func (l *Labelling) AlphabetSize() int { return l.alphabetSize }

// Label returns L(state).
func (l *Labelling) Label(state int) (int, error) {
	if state < 0 || state >= len(l.labels) {
		return 0, ErrOutOfRange
	}
	return l.labels[state], nil
}

// ProbabilisticLabelling is the supplemented variant noted in spec.md §3 as
// an optional extension: each state maps to a distribution over Σ instead
// of a single symbol. It is not consumed by the product Bellman dispatch of
// §4.7, which assumes a deterministic L; it is provided for callers that
// want to sample or take expectations over labels directly.
type ProbabilisticLabelling struct {
	dist         [][]float64 // dist[state][sigma]
	alphabetSize int
}

// NewProbabilisticLabelling builds a ProbabilisticLabelling from one
// probability row per state; each row must sum to 1 within eps.
func NewProbabilisticLabelling(dist [][]float64, eps float64) (*ProbabilisticLabelling, error) {
	if len(dist) == 0 {
		return nil, ErrBadShape
	}
	alphabetSize := len(dist[0])
	if alphabetSize == 0 {
		return nil, ErrBadShape
	}
	rows := make([][]float64, len(dist))
	for i, row := range dist {
		if len(row) != alphabetSize {
			return nil, ErrDimensionMismatch
		}
		sum := 0.0
		for _, p := range row {
			if p < 0 {
				return nil, ErrOutOfRange
			}
			sum += p
		}
		if sum < 1-eps || sum > 1+eps {
			return nil, ErrBadShape
		}
		rows[i] = append([]float64(nil), row...)
	}
	return &ProbabilisticLabelling{dist: rows, alphabetSize: alphabetSize}, nil
}

// NumStates returns the number of labelled states.
func (p *ProbabilisticLabelling) NumStates() int { return len(p.dist) }

// AlphabetSize returns the Σ the distributions range over.
func (p *ProbabilisticLabelling) AlphabetSize() int { return p.alphabetSize }

// Distribution returns the probability row for state. The returned slice is
// a live view, not a copy.
func (p *ProbabilisticLabelling) Distribution(state int) ([]float64, error) {
	if state < 0 || state >= len(p.dist) {
		return nil, ErrOutOfRange
	}
	return p.dist[state], nil
}
