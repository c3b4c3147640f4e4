package automaton_test

import (
	"testing"

	"github.com/ambisys/frmdp/automaton"
	"github.com/stretchr/testify/require"
)

func TestLabellingOutOfRangeSymbol(t *testing.T) {
	_, err := automaton.NewLabelling([]int{0, 2}, 2)
	require.ErrorIs(t, err, automaton.ErrOutOfRange)
}

func TestLabellingLabel(t *testing.T) {
	l, err := automaton.NewLabelling([]int{1, 0, 1}, 2)
	require.NoError(t, err)

	sigma, err := l.Label(1)
	require.NoError(t, err)
	require.Equal(t, 0, sigma)

	_, err = l.Label(9)
	require.ErrorIs(t, err, automaton.ErrOutOfRange)
}

func TestProbabilisticLabellingRowsMustSumToOne(t *testing.T) {
	_, err := automaton.NewProbabilisticLabelling([][]float64{{0.5, 0.4}}, 1e-9)
	require.ErrorIs(t, err, automaton.ErrBadShape)

	pl, err := automaton.NewProbabilisticLabelling([][]float64{{0.3, 0.7}, {1.0, 0.0}}, 1e-9)
	require.NoError(t, err)
	dist, err := pl.Distribution(0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.3, 0.7}, dist, 1e-12)
}
