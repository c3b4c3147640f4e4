package bellman

import "github.com/ambisys/frmdp/marginal"

// FactoredBellman computes result(s,a) of spec.md §4.6 using the OMax
// sort-and-sweep kernel. It is a thin wrapper around
// FactoredBellmanWithKernel; see that function for the peeling algorithm.
func FactoredBellman(rmdp *marginal.FactoredRMDP, v []float64, s, a []int, mode SatisfactionMode, ws *Workspace) (float64, error) {
	return FactoredBellmanWithKernel(rmdp, v, s, a, mode, ws, OMax)
}

// FactoredBellmanWithKernel computes result(s,a) of spec.md §4.6 by peeling
// one marginal at a time from the inside out: W^n is v itself (over the
// full joint target space), and for i = n,…,1 the tensor W^{i-1} is
// produced by calling kernel once per fixed outer multi-index
// (t_1,…,t_{i-1}), against marginal i's ambiguity set at (s,a).
// result(s,a) = W^0, a scalar. kernel lets solver.Algorithm substitute an
// LP-backed omax for the default OMax sort-and-sweep (spec.md §6).
//
// v must be dense over the full joint state space (len(v) ==
// rmdp.StateSize()), laid out column-major with state variable 1 varying
// fastest (marginal.Sub2Ind's convention). ws supplies the per-level
// scratch tensors and the gather buffer; it must not be shared across
// goroutines.
func FactoredBellmanWithKernel(rmdp *marginal.FactoredRMDP, v []float64, s, a []int, mode SatisfactionMode, ws *Workspace, kernel Kernel) (float64, error) {
	if len(v) != rmdp.StateSize() {
		return 0, ErrDimensionMismatch
	}
	stateShape := rmdp.StateShape()
	n := rmdp.NumStateVars()

	cur := v
	curSize := len(v)
	for i := n; i >= 1; i-- {
		m := rmdp.Marginal(i - 1)
		set, err := m.Get(s, a)
		if err != nil {
			return 0, err
		}
		ti := stateShape[i-1]
		outerSize := curSize / ti
		next := ws.scratchLevel(i, outerSize)
		gather := ws.ensureGather(ti)

		for idx := 0; idx < outerSize; idx++ {
			for t := 0; t < ti; t++ {
				gather[t] = cur[idx+outerSize*t]
			}
			val, err := kernel(gather, set, mode, ws)
			if err != nil {
				return 0, err
			}
			next[idx] = val
		}
		cur = next
		curSize = outerSize
	}
	return cur[0], nil
}
