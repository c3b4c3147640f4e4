package bellman_test

import (
	"testing"

	"github.com/ambisys/frmdp/ambiguity"
	"github.com/ambisys/frmdp/bellman"
	"github.com/ambisys/frmdp/marginal"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func singleColumnSets(t *testing.T, lower, upper []float64) ambiguity.Sets {
	t.Helper()
	n := len(lower)
	sets, err := ambiguity.Build(mat.NewDense(n, 1, lower), mat.NewDense(n, 1, upper))
	require.NoError(t, err)
	return sets
}

// twoMarginalRMDP builds a two-state-variable fRMDP where both marginals are
// constant in the (single) action and independent of each other, for hand
// verification of the §4.6 recursive peel.
func twoMarginalRMDP(t *testing.T) *marginal.FactoredRMDP {
	t.Helper()
	setsVar1 := singleColumnSets(t, []float64{0.4, 0.4}, []float64{0.5, 0.7})
	setsVar2 := singleColumnSets(t, []float64{0.5, 0.3}, []float64{0.6, 0.5})

	m1, err := marginal.NewMarginal(setsVar1, nil, []int{0}, []int{2, 2}, []int{1})
	require.NoError(t, err)
	m2, err := marginal.NewMarginal(setsVar2, nil, []int{0}, []int{2, 2}, []int{1})
	require.NoError(t, err)

	rmdp, err := marginal.NewFactoredRMDP([]int{2, 2}, []int{1}, []*marginal.Marginal{m1, m2})
	require.NoError(t, err)
	return rmdp
}

// TestFactoredBellmanTwoVariablePeel reproduces the recursive peel of
// spec.md §4.6 for n=2: a reward concentrated on the single joint corner
// (t1=1, t2=1) recurses to 0.2 under the marginals' fixed ambiguity sets,
// verified independently by hand (peel t2 first, then t1).
func TestFactoredBellmanTwoVariablePeel(t *testing.T) {
	rmdp := twoMarginalRMDP(t)
	v := []float64{0, 0, 0, 1} // flat column-major over (t1, t2): only (1,1) is 1
	ws := bellman.NewWorkspace(2)

	got, err := bellman.FactoredBellman(rmdp, v, []int{0, 0}, []int{0}, bellman.Pessimistic, ws)
	require.NoError(t, err)
	require.InDelta(t, 0.2, got, 1e-9)
}

func TestFactoredBellmanDimensionMismatch(t *testing.T) {
	rmdp := twoMarginalRMDP(t)
	ws := bellman.NewWorkspace(2)
	_, err := bellman.FactoredBellman(rmdp, []float64{0, 0, 0}, []int{0, 0}, []int{0}, bellman.Pessimistic, ws)
	require.ErrorIs(t, err, bellman.ErrDimensionMismatch)
}
