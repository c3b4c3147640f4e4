package solver

import (
	"github.com/ambisys/frmdp/automaton"
	"github.com/ambisys/frmdp/marginal"
	"github.com/ambisys/frmdp/specification"
)

// Mode distinguishes spec.md §6's two problem constructors:
// make_verification_problem evaluates a fixed strategy or the robust value
// itself; make_control_synthesis_problem additionally synthesizes an
// optimal strategy.
type Mode int

const (
	// VerificationMode computes the robust value function only.
	VerificationMode Mode = iota
	// ControlSynthesisMode additionally records an optimal strategy.
	ControlSynthesisMode
)

// Problem bundles a system (a plain FactoredRMDP, or one behind a lazy DFA
// product) with a Specification, per spec.md §6's
// make_verification_problem/make_control_synthesis_problem. Exactly one of
// RMDP or Product is set.
type Problem struct {
	mode Mode
	spec *specification.Specification

	rmdp    *marginal.FactoredRMDP
	product *automaton.ProductProcess
}

// MakeVerificationProblem builds a Problem for verifying spec against a
// plain factored robust MDP (no temporal-logic product).
func MakeVerificationProblem(rmdp *marginal.FactoredRMDP, spec *specification.Specification) *Problem {
	return &Problem{mode: VerificationMode, spec: spec, rmdp: rmdp}
}

// MakeControlSynthesisProblem builds a Problem for synthesizing an optimal
// strategy against a plain factored robust MDP.
func MakeControlSynthesisProblem(rmdp *marginal.FactoredRMDP, spec *specification.Specification) *Problem {
	return &Problem{mode: ControlSynthesisMode, spec: spec, rmdp: rmdp}
}

// MakeProductVerificationProblem builds a Problem for verifying spec
// (typically a KindDFAReachability property) against the lazy fRMDP×DFA
// product.
func MakeProductVerificationProblem(product *automaton.ProductProcess, spec *specification.Specification) *Problem {
	return &Problem{mode: VerificationMode, spec: spec, product: product}
}

// MakeProductControlSynthesisProblem builds a Problem for synthesizing an
// optimal strategy against the lazy fRMDP×DFA product.
func MakeProductControlSynthesisProblem(product *automaton.ProductProcess, spec *specification.Specification) *Problem {
	return &Problem{mode: ControlSynthesisMode, spec: spec, product: product}
}

// Mode returns the Problem's verification-vs-control-synthesis mode, per
// which constructor built it.
func (p *Problem) Mode() Mode { return p.mode }

// IsProduct reports whether this Problem is driven over a DFA product
// rather than a plain factored robust MDP.
func (p *Problem) IsProduct() bool { return p.product != nil }

// StateSize returns the size of the state space the driver iterates over:
// |S| for a plain problem, |S|·|Q| for a product problem.
func (p *Problem) StateSize() int {
	if p.IsProduct() {
		return p.product.StateSize()
	}
	return p.rmdp.StateSize()
}

// Specification returns the paired Specification.
func (p *Problem) Specification() *specification.Specification { return p.spec }
