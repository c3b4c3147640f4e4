// Package strategy implements the strategy-cache variants of spec.md §4.8:
// None (no recording), Stationary (one array overwritten every iteration),
// TimeVarying (one array appended every iteration, entry 0 corresponding to
// the action at time horizon-1), and Given (a pre-supplied fixed strategy
// used to select, rather than optimize, a single action per state).
//
// Grounded on lvlath's core package: the map/slice-backed, RWMutex-free
// (single-writer-per-slice, matching spec.md §5's "strategy-cache writes
// are likewise per-state") state container shape of core.Graph's adjacency
// bookkeeping, applied here to a flat action-per-state array instead of an
// adjacency list.
package strategy
