package bellman

import (
	"github.com/ambisys/frmdp/ambiguity"
	"gonum.org/v1/gonum/floats"
)

// OMax computes the exact min (Pessimistic) or max (Optimistic) over the
// feasible polytope of set of Σ_t γ(t)·v[t], per spec.md §4.5: sort the
// support by value, then greedily push as much of each target's gap onto
// the distribution as the remaining budget allows, fused into the dot
// product as it walks.
//
// v must be indexed by target id 0..set.Targets-1 (dense); only the
// positions named in set.Support are read. ws supplies the sort scratch and
// must not be used concurrently by another goroutine.
func OMax(v []float64, set *ambiguity.Set, mode SatisfactionMode, ws *Workspace) (float64, error) {
	if !mode.valid() {
		return 0, ErrInvalidMode
	}
	n := set.SupportSize()
	ws.ensure(n)
	vals, order := ws.valBuf[:n], ws.idxBuf[:n]
	for i, t := range set.Support {
		vals[i] = v[t]
		order[i] = i
	}
	floats.Argsort(vals, order) // vals now ascending; order[i] = original support position

	budget := set.Budget()
	result := 0.0
	consume := func(pos int) {
		t := set.Support[pos]
		gamma := set.Lower[pos]
		add := set.Gap[pos]
		if add > budget {
			add = budget
		}
		gamma += add
		budget -= add
		result += gamma * v[t]
	}

	if mode == Pessimistic {
		for i := 0; i < n; i++ {
			consume(order[i])
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			consume(order[i])
		}
	}
	return result, nil
}
