package ambiguity_test

import (
	"testing"

	"github.com/ambisys/frmdp/ambiguity"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// s1State1 builds the two-action dense column pair for state 1 of scenario
// S1 (spec.md §8): L=[[0,.5],[.1,.3],[.2,.1]], U=[[.5,.7],[.6,.5],[.7,.3]].
func s1State1(t *testing.T) ambiguity.Sets {
	t.Helper()
	lower := mat.NewDense(3, 2, []float64{0, .5, .1, .3, .2, .1})
	upper := mat.NewDense(3, 2, []float64{.5, .7, .6, .5, .7, .3})
	sets, err := ambiguity.Build(lower, upper)
	require.NoError(t, err)
	return sets
}

func TestBuildDenseValid(t *testing.T) {
	sets := s1State1(t)
	require.Equal(t, 3, sets.NumTargets())
	require.Equal(t, 2, sets.NumColumns())
	require.Equal(t, 3, sets.MaxSupportSize())

	col0, err := sets.Column(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, col0.Support)
	require.InDelta(t, 0.0, col0.Lower[0], 1e-12)
	require.InDelta(t, 0.5, col0.Gap[0], 1e-12)
	require.InDelta(t, 0.5, col0.UpperAt(0), 1e-12)
	require.InDelta(t, 0.7, col0.Budget(), 1e-12) // 1 - (0+.1+.2)
}

func TestBuildDenseDimensionMismatch(t *testing.T) {
	lower := mat.NewDense(2, 2, nil)
	upper := mat.NewDense(3, 2, nil)
	_, err := ambiguity.Build(lower, upper)
	require.ErrorIs(t, err, ambiguity.ErrDimensionMismatch)
}

func TestBuildDenseInvalidBounds(t *testing.T) {
	// Upper below lower: negative gap.
	lower := mat.NewDense(2, 1, []float64{0.6, 0.6})
	upper := mat.NewDense(2, 1, []float64{0.5, 0.6})
	_, err := ambiguity.Build(lower, upper)
	require.ErrorIs(t, err, ambiguity.ErrInvalidProbabilityBounds)
}

func TestBuildDenseUpperSumBelowOne(t *testing.T) {
	lower := mat.NewDense(2, 1, []float64{0, 0})
	upper := mat.NewDense(2, 1, []float64{0.2, 0.2}) // sum upper = 0.4 < 1
	_, err := ambiguity.Build(lower, upper)
	require.ErrorIs(t, err, ambiguity.ErrInvalidProbabilityBounds)
}

func TestBuildSparseMatchesDense(t *testing.T) {
	// Same column as s1State1's column 0 (L=[0,.1,.2], U=[.5,.6,.7]),
	// expressed as CSC with a full support (dense vs sparse parity, §8 prop.7).
	lowerCsc := &ambiguity.CSCMatrix{
		Rows: 3, Cols: 1,
		ColPtr: []int{0, 3},
		RowIdx: []int{0, 1, 2},
		Data:   []float64{0, .1, .2},
	}
	upperCsc := &ambiguity.CSCMatrix{
		Rows: 3, Cols: 1,
		ColPtr: []int{0, 3},
		RowIdx: []int{0, 1, 2},
		Data:   []float64{.5, .6, .7},
	}
	sparse, err := ambiguity.Build(lowerCsc, upperCsc)
	require.NoError(t, err)

	dense := s1State1(t)
	col0Dense, err := dense.Column(0)
	require.NoError(t, err)
	col0Sparse, err := sparse.Column(0)
	require.NoError(t, err)

	for t0 := 0; t0 < 3; t0++ {
		require.InDelta(t, col0Dense.LowerAt(t0), col0Sparse.LowerAt(t0), 1e-12)
		require.InDelta(t, col0Dense.UpperAt(t0), col0Sparse.UpperAt(t0), 1e-12)
	}
}

func TestBuildSparsePatternMismatch(t *testing.T) {
	lowerCsc := &ambiguity.CSCMatrix{Rows: 2, Cols: 1, ColPtr: []int{0, 1}, RowIdx: []int{0}, Data: []float64{0.2}}
	upperCsc := &ambiguity.CSCMatrix{Rows: 2, Cols: 1, ColPtr: []int{0, 2}, RowIdx: []int{0, 1}, Data: []float64{0.5, 0.8}}
	_, err := ambiguity.Build(lowerCsc, upperCsc)
	require.ErrorIs(t, err, ambiguity.ErrDimensionMismatch)
}

func TestBuildSparseEmptySupport(t *testing.T) {
	// Column 0 has no stored rows at all: it can never reach Σ(L+G) >= 1.
	lowerCsc := &ambiguity.CSCMatrix{Rows: 2, Cols: 1, ColPtr: []int{0, 0}, RowIdx: nil, Data: nil}
	upperCsc := &ambiguity.CSCMatrix{Rows: 2, Cols: 1, ColPtr: []int{0, 0}, RowIdx: nil, Data: nil}
	_, err := ambiguity.Build(lowerCsc, upperCsc)
	require.ErrorIs(t, err, ambiguity.ErrEmptySupport)
}
