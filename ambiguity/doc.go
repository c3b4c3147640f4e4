// Package ambiguity implements interval-valued transition ambiguity sets.
//
// An IntervalAmbiguitySet is the feasible set of probability distributions
// over T target states, bounded per-target by a lower bound L(t) and a gap
// G(t) such that every feasible distribution γ satisfies
//
//	L(t) ≤ γ(t) ≤ L(t)+G(t)   for all t
//	Σ_t L(t) ≤ 1 ≤ Σ_t (L(t)+G(t))
//
// Storing the gap rather than the upper bound makes the sort-and-sweep
// O-maximization in package bellman a pure accumulation (see bellman.OMax).
//
// IntervalAmbiguitySets is a column container holding N such sets over the
// same T targets, in either dense (DenseSets) or compressed-sparse-column
// (CscSets) form. Both forms produce the same Set view type so that bellman
// and marginal never need to know which storage backs a given column.
//
// Grounded on github.com/katalvlaran/lvlath's matrix package: DenseSets
// mirrors matrix.Dense's flat row-major storage (backed here by
// gonum.org/v1/gonum/mat.Dense instead of a hand-rolled slice, since the
// numeric payload is exactly gonum's domain), CscSets mirrors the
// colptr/rowval/nzval layout of lvlath's graph/matrix adjacency matrix, and
// the sentinel-error set and functional-options construction below mirror
// matrix/errors.go and matrix/options.go.
package ambiguity
