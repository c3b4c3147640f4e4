// Package specification implements the property taxonomy and §4.9
// post-processing table of spec.md: a Property selects V_0 initialization
// and a per-iteration post-update of the raw Bellman output, and a
// Specification pairs a Property with a bellman.SatisfactionMode and
// bellman.StrategyMode.
//
// Grounded on lvlath's builder package (the options-and-validation shape of
// builder_helper.go): each property constructor validates its own
// parameters eagerly and returns a sentinel error, rather than deferring
// validation to first use.
package specification
