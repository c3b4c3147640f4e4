package bellman_test

import (
	"testing"

	"github.com/ambisys/frmdp/ambiguity"
	"github.com/ambisys/frmdp/bellman"
	"github.com/ambisys/frmdp/marginal"
	"github.com/ambisys/frmdp/strategy"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// s1RMDP reproduces spec.md §8 scenario S1's three-state, two-action IMDP:
// columns ordered (state, action) column-major as marginal.Marginal
// linearizes them (state varies fastest), so column j = s + 3*a.
func s1RMDP(t *testing.T) *marginal.FactoredRMDP {
	t.Helper()
	lowerData := []float64{
		0, .1, 0, .5, .2, 0,
		.1, .2, 0, .3, .3, 0,
		.2, .3, 1, .1, .4, 1,
	}
	upperData := []float64{
		.5, .6, 0, .7, .6, 0,
		.6, .5, 0, .5, .5, 0,
		.7, .4, 1, .3, .4, 1,
	}
	lower := mat.NewDense(3, 6, lowerData)
	upper := mat.NewDense(3, 6, upperData)
	sets, err := ambiguity.Build(lower, upper)
	require.NoError(t, err)

	m, err := marginal.NewMarginal(sets, []int{0}, []int{0}, []int{3}, []int{2})
	require.NoError(t, err)

	rmdp, err := marginal.NewFactoredRMDP([]int{3}, []int{2}, []*marginal.Marginal{m})
	require.NoError(t, err)
	return rmdp
}

func TestReduceS1PessimisticMaximize(t *testing.T) {
	rmdp := s1RMDP(t)
	v0 := []float64{0, 0, 1} // indicator of the goal state (index 2)
	ws := bellman.NewWorkspace(3)
	cache := strategy.NewStationary(3)

	val0, err := bellman.Reduce(rmdp, v0, 0, bellman.Pessimistic, bellman.Maximize, ws, cache)
	require.NoError(t, err)
	require.InDelta(t, 0.2, val0, 1e-12)
	require.Equal(t, 0, cache.Action(0))

	val1, err := bellman.Reduce(rmdp, v0, 1, bellman.Pessimistic, bellman.Maximize, ws, cache)
	require.NoError(t, err)
	require.InDelta(t, 0.4, val1, 1e-12)
	require.Equal(t, 1, cache.Action(1))

	val2, err := bellman.Reduce(rmdp, v0, 2, bellman.Pessimistic, bellman.Maximize, ws, cache)
	require.NoError(t, err)
	require.InDelta(t, 1.0, val2, 1e-12)
}

func TestReduceGivenStrategyBypassesOptimization(t *testing.T) {
	rmdp := s1RMDP(t)
	v0 := []float64{0, 0, 1}
	ws := bellman.NewWorkspace(3)
	given := strategy.NewGiven([]int{1, 0, 0}) // deliberately suboptimal at state 0 and 1

	val, err := bellman.Reduce(rmdp, v0, 0, bellman.Pessimistic, bellman.Maximize, ws, given)
	require.NoError(t, err)
	require.InDelta(t, 0.1, val, 1e-12) // action 1's value at state 0, not the optimum 0.2
}

func TestReduceEmptyActionSet(t *testing.T) {
	lower := mat.NewDense(1, 1, []float64{1})
	upper := mat.NewDense(1, 1, []float64{1})
	sets, err := ambiguity.Build(lower, upper)
	require.NoError(t, err)
	// action_indices is empty, so the marginal never touches the (zero-sized)
	// action variable; action_shape=[0] alone drives ActionSize() to 0.
	m, err := marginal.NewMarginal(sets, []int{0}, []int{}, []int{1}, []int{0})
	require.NoError(t, err)
	rmdp, err := marginal.NewFactoredRMDP([]int{1}, []int{0}, []*marginal.Marginal{m})
	require.NoError(t, err)

	ws := bellman.NewWorkspace(1)
	_, err = bellman.Reduce(rmdp, []float64{1}, 0, bellman.Pessimistic, bellman.Maximize, ws, strategy.NewNone())
	require.ErrorIs(t, err, bellman.ErrEmptyActionSet)
}
