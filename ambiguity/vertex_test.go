package ambiguity_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/ambisys/frmdp/ambiguity"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestVertexGeneratorS4 reproduces scenario S4 (spec.md §8): a single set
// over 3 targets with L=[.1,.2,.3], U=[.4,.5,.6] (budget 0.4, every gap
// 0.3 < budget, so each vertex fills one gap and puts the remaining 0.1 on a
// second target), which must yield exactly the 3! = 6 distinct vertices, each
// once, all feasible, summing to 1.
func TestVertexGeneratorS4(t *testing.T) {
	lower := mat.NewDense(3, 1, []float64{.1, .2, .3})
	upper := mat.NewDense(3, 1, []float64{.4, .5, .6})
	sets, err := ambiguity.Build(lower, upper)
	require.NoError(t, err)
	col, err := sets.Column(0)
	require.NoError(t, err)
	require.InDelta(t, 0.4, col.Budget(), 1e-12)

	it := col.VertexGenerator()
	var seen []string
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		require.Len(t, v, 3)
		sum := v[0] + v[1] + v[2]
		require.InDelta(t, 1.0, sum, 1e-9)
		for _, x := range v {
			require.GreaterOrEqual(t, x, 0.0)
		}
		seen = append(seen, key(v))
	}
	require.Len(t, seen, 6)

	sort.Strings(seen)
	for i := 1; i < len(seen); i++ {
		require.NotEqual(t, seen[i-1], seen[i], "vertex emitted twice")
	}
}

// key renders a vertex at 1e-6 granularity, far finer than the 0.1-scale
// test fixtures above, so distinct vertices never collide under rounding.
func key(v []float64) string {
	s := ""
	for _, x := range v {
		s += fmt.Sprintf("%.6f,", x)
	}
	return s
}
