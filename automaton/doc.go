// Package automaton implements the deterministic finite automaton and the
// lazy fRMDP×DFA product of spec.md §3/§4.7: DFA is a tuple (Q, q0, Σ, δ, F)
// with accepting states F carried in the specification rather than here;
// Labelling maps fRMDP states to DFA input symbols; ProductProcess pairs an
// fRMDP with a DFA and labelling without ever materializing the product
// state space.
//
// Grounded on lvlath's algorithms package (bfs.go/dfs.go). The product's
// per-DFA-state relabel here is a plain pointwise lookup
// (ProductProcess.Relabel); it has no walker struct, no hooks and no
// context cancellation.
package automaton
