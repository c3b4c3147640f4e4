package bellman

import (
	"github.com/ambisys/frmdp/marginal"
	"github.com/ambisys/frmdp/strategy"
)

// Reduce computes V'(s) = reduce_{a in A(s)} FactoredBellman(v, s, a) using
// the OMax sort-and-sweep kernel. It is a thin wrapper around
// ReduceWithKernel; see that function for the reduction contract.
func Reduce(rmdp *marginal.FactoredRMDP, v []float64, stateFlat int, satMode SatisfactionMode, stratMode StrategyMode, ws *Workspace, cache strategy.Cache) (float64, error) {
	return ReduceWithKernel(rmdp, v, stateFlat, satMode, stratMode, ws, cache, OMax)
}

// ReduceWithKernel computes V'(s) = reduce_{a in A(s)} FactoredBellman(v, s,
// a) per spec.md §4.5/§4.8: reduce is max under Maximize, min under
// Minimize, ties broken to the smallest action index. stateFlat is s
// linearized over rmdp.StateShape(). If cache implements strategy.Given,
// the non-optimizing variant is used instead: the single action it names
// for stateFlat is evaluated and returned directly, with no reduction over
// A(s). If cache implements strategy.Recorder, the chosen action is
// recorded. kernel is passed through to FactoredBellmanWithKernel, letting
// solver.Algorithm swap in an LP-backed omax in place of OMax.
func ReduceWithKernel(rmdp *marginal.FactoredRMDP, v []float64, stateFlat int, satMode SatisfactionMode, stratMode StrategyMode, ws *Workspace, cache strategy.Cache, kernel Kernel) (float64, error) {
	if !stratMode.valid() {
		return 0, ErrInvalidMode
	}
	s := marginal.Ind2Sub(rmdp.StateShape(), stateFlat)

	if given, ok := cache.(strategy.Given); ok {
		aFlat := given.Action(stateFlat)
		a := marginal.Ind2Sub(rmdp.ActionShape(), aFlat)
		return FactoredBellmanWithKernel(rmdp, v, s, a, satMode, ws, kernel)
	}

	numActions := rmdp.ActionSize()
	if numActions == 0 {
		return 0, ErrEmptyActionSet
	}

	best := 0.0
	bestAction := -1
	for aFlat := 0; aFlat < numActions; aFlat++ {
		a := marginal.Ind2Sub(rmdp.ActionShape(), aFlat)
		val, err := FactoredBellmanWithKernel(rmdp, v, s, a, satMode, ws, kernel)
		if err != nil {
			return 0, err
		}
		if bestAction == -1 || better(val, best, stratMode) {
			best, bestAction = val, aFlat
		}
	}

	if rec, ok := cache.(strategy.Recorder); ok {
		rec.Record(stateFlat, bestAction)
	}
	return best, nil
}

func better(candidate, incumbent float64, mode StrategyMode) bool {
	if mode == Maximize {
		return candidate > incumbent
	}
	return candidate < incumbent
}
