package bellman_test

import (
	"testing"

	"github.com/ambisys/frmdp/ambiguity"
	"github.com/ambisys/frmdp/bellman"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func buildColumn(t *testing.T, lower, upper []float64) *ambiguity.Set {
	t.Helper()
	n := len(lower)
	l := mat.NewDense(n, 1, lower)
	u := mat.NewDense(n, 1, upper)
	sets, err := ambiguity.Build(l, u)
	require.NoError(t, err)
	col, err := sets.Column(0)
	require.NoError(t, err)
	return col
}

// TestOMaxZeroBudgetForcesLowerBound reproduces spec.md §8 scenario S3: when
// sum(Lower) == 1 the feasible polytope is a single point, so omax must
// return L·V regardless of satisfaction mode.
func TestOMaxZeroBudgetForcesLowerBound(t *testing.T) {
	col0 := buildColumn(t, []float64{0.4, 0.6}, []float64{0.5, 0.7})
	v := []float64{1, 0}
	ws := bellman.NewWorkspace(2)

	got, err := bellman.OMax(v, col0, bellman.Pessimistic, ws)
	require.NoError(t, err)
	require.InDelta(t, 0.4, got, 1e-12)

	got, err = bellman.OMax(v, col0, bellman.Optimistic, ws)
	require.NoError(t, err)
	require.InDelta(t, 0.4, got, 1e-12)

	col1 := buildColumn(t, []float64{0.3, 0.7}, []float64{0.5, 0.7})
	got, err = bellman.OMax(v, col1, bellman.Pessimistic, ws)
	require.NoError(t, err)
	require.InDelta(t, 0.3, got, 1e-12)
}

// TestOMaxPessimisticPushesMassToLowValue verifies the S1-shaped column
// (state 1, action 1): with budget 0.7 spread over gaps of 0.5 each, the
// minimum pushes all achievable slack onto the low-value targets, leaving
// the high-value target at its lower bound.
func TestOMaxPessimisticPushesMassToLowValue(t *testing.T) {
	col := buildColumn(t, []float64{0, 0.1, 0.2}, []float64{0.5, 0.6, 0.7})
	v := []float64{0, 0, 1}
	ws := bellman.NewWorkspace(3)

	got, err := bellman.OMax(v, col, bellman.Pessimistic, ws)
	require.NoError(t, err)
	require.InDelta(t, 0.2, got, 1e-12)
}

func TestOMaxPessimisticLEOptimistic(t *testing.T) {
	col := buildColumn(t, []float64{0.1, 0.2, 0.3}, []float64{0.4, 0.5, 0.6})
	v := []float64{2, -1, 5}
	ws := bellman.NewWorkspace(3)

	lo, err := bellman.OMax(v, col, bellman.Pessimistic, ws)
	require.NoError(t, err)
	hi, err := bellman.OMax(v, col, bellman.Optimistic, ws)
	require.NoError(t, err)
	require.LessOrEqual(t, lo, hi)
}

func TestOMaxInvalidMode(t *testing.T) {
	col := buildColumn(t, []float64{0.5}, []float64{0.6})
	ws := bellman.NewWorkspace(1)
	_, err := bellman.OMax([]float64{1}, col, bellman.SatisfactionMode(99), ws)
	require.ErrorIs(t, err, bellman.ErrInvalidMode)
}
