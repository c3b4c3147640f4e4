package bellman

import (
	"github.com/ambisys/frmdp/automaton"
	"github.com/ambisys/frmdp/strategy"
)

// RelabelProduct computes W(·, q) := V(·, δ(q, L(·))) per spec.md §4.7: a
// pointwise lookup, no ambiguity-set work. v holds the current value
// tensor indexed (s, q'): v[q'] is the dense value vector over the joint
// fRMDP state space at DFA state q'. The returned slice is a fresh copy,
// safe to read concurrently while other callers keep using ws.
func RelabelProduct(pp *automaton.ProductProcess, v [][]float64, q int, ws *Workspace) ([]float64, error) {
	rmdp := pp.RMDP()
	n := rmdp.StateSize()
	buf := ws.ensureRelabel(n)
	for t := 0; t < n; t++ {
		qNext, err := pp.Relabel(t, q)
		if err != nil {
			return nil, err
		}
		buf[t] = v[qNext][t]
	}
	out := make([]float64, n)
	copy(out, buf)
	return out, nil
}

// ProductBellmanStep computes V'(·, q) for one fixed DFA state q by
// relabelling (RelabelProduct) and then running Reduce over every source
// state sequentially. It is a convenience wrapper; solver.Driver calls
// RelabelProduct directly so it can parallelize the per-state Reduce loop
// across its own worker workspaces.
func ProductBellmanStep(pp *automaton.ProductProcess, v [][]float64, q int, satMode SatisfactionMode, stratMode StrategyMode, ws *Workspace, cache strategy.Cache) ([]float64, error) {
	w, err := RelabelProduct(pp, v, q, ws)
	if err != nil {
		return nil, err
	}
	rmdp := pp.RMDP()
	n := rmdp.StateSize()
	out := make([]float64, n)
	for s := 0; s < n; s++ {
		val, err := Reduce(rmdp, w, s, satMode, stratMode, ws, cache)
		if err != nil {
			return nil, err
		}
		out[s] = val
	}
	return out, nil
}
