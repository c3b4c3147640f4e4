// Package marginal implements the factored/indexing layer of spec.md §3/§4.3:
// Marginal maps a (multi-index state, multi-index action) pair to a column
// of an ambiguity.Sets container, and FactoredRMDP bundles an ordered tuple
// of marginals with the global state/action shapes they index into.
//
// Grounded on lvlath's matrix/impl_builder.go, which performs the same kind
// of "validate declared shape against actual data, then linearize a
// multi-index into a flat column" work when exporting a core.Graph into a
// matrix; the column-major linearization here (spec.md §4.3) is the same
// index-arithmetic idiom applied to (source_dims, action_vars) instead of
// (row, col).
package marginal
