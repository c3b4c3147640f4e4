// Package bellman implements the robust Bellman operators of spec.md
// §4.5–§4.7: single-marginal O-maximization over an interval ambiguity set,
// the per-state reduction over the feasible action set, the factored
// recursive extension across an fRMDP's n marginals, and the DFA product
// dispatch that reuses the same routines per automaton state.
//
// Grounded on lvlath's dijkstra package (dijkstra.go): the same private
// "runner" struct carrying preallocated scratch buffers across repeated
// calls, here reused as a per-goroutine Workspace across Bellman steps
// instead of across graph relaxations.
package bellman
