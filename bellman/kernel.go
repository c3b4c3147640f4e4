package bellman

import "github.com/ambisys/frmdp/ambiguity"

// Kernel computes the per-column omax(v, set, mode) spec.md §4.5 requires:
// the exact min/max over set's feasible polytope of Σ_t γ(t)·v[t]. OMax is
// the sort-and-sweep kernel this package ships; solver.WithAlgorithm can
// substitute an LPPlugin-backed Kernel in its place without touching the
// factored-peel or action-reduction shape of FactoredBellmanWithKernel and
// ReduceWithKernel.
type Kernel func(v []float64, set *ambiguity.Set, mode SatisfactionMode, ws *Workspace) (float64, error)
