package automaton_test

import (
	"testing"

	"github.com/ambisys/frmdp/ambiguity"
	"github.com/ambisys/frmdp/automaton"
	"github.com/ambisys/frmdp/marginal"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// threeStateRMDP builds a trivial single-variable, single-action fRMDP over
// 3 states, used as the carrier process for the DFA product tests (mirrors
// spec.md §8 scenario S5's shape: a small fRMDP paired with a 2-state DFA).
func threeStateRMDP(t *testing.T) *marginal.FactoredRMDP {
	t.Helper()
	lower := mat.NewDense(3, 3, []float64{
		0.5, 0.0, 0.1,
		0.2, 0.9, 0.1,
		0.1, 0.0, 0.7,
	})
	upper := mat.NewDense(3, 3, []float64{
		0.6, 0.05, 0.2,
		0.3, 1.0, 0.2,
		0.2, 0.05, 0.8,
	})
	sets, err := ambiguity.Build(lower, upper)
	require.NoError(t, err)

	m, err := marginal.NewMarginal(sets, []int{0}, []int{0}, []int{3}, []int{1})
	require.NoError(t, err)

	rmdp, err := marginal.NewFactoredRMDP([]int{3}, []int{1}, []*marginal.Marginal{m})
	require.NoError(t, err)
	return rmdp
}

func twoStateDFA(t *testing.T) *automaton.DFA {
	t.Helper()
	// Sigma = {0: "not-goal", 1: "goal"}; q0 = 0 stays until "goal" is seen,
	// then moves to the absorbing accepting state 1.
	delta := [][]int{
		{0, 1}, // sigma=0: q0->0, q1->1 (absorbing once accepting)
		{1, 1}, // sigma=1: both states go to accepting state 1
	}
	dfa, err := automaton.NewDFA(delta, 0, []string{"not-goal", "goal"})
	require.NoError(t, err)
	return dfa
}

func TestProductProcessRelabel(t *testing.T) {
	rmdp := threeStateRMDP(t)
	dfa := twoStateDFA(t)
	// state 2 is labelled "goal", states 0 and 1 are "not-goal".
	labelling, err := automaton.NewLabelling([]int{0, 0, 1}, 2)
	require.NoError(t, err)

	p, err := automaton.NewProductProcess(rmdp, dfa, labelling)
	require.NoError(t, err)
	require.Equal(t, 6, p.StateSize())

	// from q=0, a non-goal target state (0 or 1) stays at DFA state 0.
	q, err := p.Relabel(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, q)

	// from q=0, the goal target state (2) advances to DFA state 1.
	q, err = p.Relabel(2, 0)
	require.NoError(t, err)
	require.Equal(t, 1, q)

	// DFA state 1 is absorbing regardless of label.
	q, err = p.Relabel(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, q)
}

func TestProductProcessDimensionMismatch(t *testing.T) {
	rmdp := threeStateRMDP(t)
	dfa := twoStateDFA(t)

	badLabelling, err := automaton.NewLabelling([]int{0, 0}, 2) // only 2 states, rmdp has 3
	require.NoError(t, err)

	_, err = automaton.NewProductProcess(rmdp, dfa, badLabelling)
	require.ErrorIs(t, err, automaton.ErrDimensionMismatch)
}

func TestDFAOutOfRange(t *testing.T) {
	dfa := twoStateDFA(t)
	_, err := dfa.Next(0, 5)
	require.ErrorIs(t, err, automaton.ErrOutOfRange)
	_, err = dfa.Next(9, 0)
	require.ErrorIs(t, err, automaton.ErrOutOfRange)
}

func TestNewDFABadShape(t *testing.T) {
	_, err := automaton.NewDFA(nil, 0, nil)
	require.ErrorIs(t, err, automaton.ErrBadShape)

	_, err = automaton.NewDFA([][]int{{0, 1}, {0}}, 0, nil)
	require.ErrorIs(t, err, automaton.ErrBadShape)
}
