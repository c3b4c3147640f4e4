package automaton

import "github.com/ambisys/frmdp/marginal"

// ProductProcess is the lazy fRMDP×DFA product of spec.md §4.7: it pairs a
// FactoredRMDP with a DFA and a Labelling without ever materializing the
// |S|·|Q| product state space. A Bellman update over the product instead
// runs the ordinary factored Bellman operator once per DFA state q, against
// a relabelled value function W(·,q) defined by
//
//	W(t, q) := V(t, δ(q, L(t)))
//
// i.e. a target state's value is looked up at the DFA state it would
// transition the product to, not at q itself. bellman.ProductStep builds
// this relabelling using Relabel below.
type ProductProcess struct {
	rmdp      *marginal.FactoredRMDP
	dfa       *DFA
	labelling *Labelling
}

// NewProductProcess builds a ProductProcess, validating that labelling
// covers exactly rmdp's state space and that its alphabet matches dfa's.
func NewProductProcess(rmdp *marginal.FactoredRMDP, dfa *DFA, labelling *Labelling) (*ProductProcess, error) {
	if labelling.NumStates() != rmdp.StateSize() {
		return nil, ErrDimensionMismatch
	}
	if labelling.AlphabetSize() != dfa.AlphabetSize() {
		return nil, ErrDimensionMismatch
	}
	return &ProductProcess{rmdp: rmdp, dfa: dfa, labelling: labelling}, nil
}

// RMDP returns the underlying factored robust MDP.
func (p *ProductProcess) RMDP() *marginal.FactoredRMDP { return p.rmdp }

// DFA returns the underlying automaton.
func (p *ProductProcess) DFA() *DFA { return p.dfa }

// Labelling returns the underlying labelling function.
func (p *ProductProcess) Labelling() *Labelling { return p.labelling }

// StateSize returns the size of the (unmaterialized) product state space
// |S|·|Q|.
func (p *ProductProcess) StateSize() int {
	return p.rmdp.StateSize() * p.dfa.NumStates()
}

// Relabel returns δ(q, L(state)), the DFA state a Bellman target state
// relabels to when the product is currently at DFA state q.
func (p *ProductProcess) Relabel(state, q int) (int, error) {
	sigma, err := p.labelling.Label(state)
	if err != nil {
		return 0, err
	}
	return p.dfa.Next(q, sigma)
}
