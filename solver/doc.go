// Package solver implements the value-iteration driver of spec.md §4.10:
// Problem wraps a system (FactoredRMDP, optionally behind a DFA product)
// and a Specification; Driver allocates V/V', initializes from the
// property, loops Bellman + post-processing + termination, optionally
// updates a strategy cache, and returns a Result.
//
// Grounded on lvlath's dijkstra package (dijkstra.go): options are
// validated up front in New, and Run then keeps all mutable iteration state
// (value vectors, strategy cache, worker workspaces) in its own locals,
// generalized from single-source shortest path to value iteration. Parallelism over source
// states follows core/concurrency_test.go's goroutine-fan-out pattern,
// built here on golang.org/x/sync/errgroup instead of a raw WaitGroup.
package solver
