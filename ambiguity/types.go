package ambiguity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Matrix is the minimal read-only matrix contract accepted by Build. It is
// satisfied directly by gonum's mat.Matrix (so a *mat.Dense can be passed
// straight in for dense ingestion) and by *CSCMatrix for sparse ingestion.
type Matrix interface {
	Dims() (r, c int)
	At(r, c int) float64
}

// CSCMatrix is a compressed-sparse-column matrix: column j's nonzero rows are
// RowIdx[ColPtr[j]:ColPtr[j+1]], sorted ascending, with values in the same
// range of Data. It satisfies Matrix via a binary search per At call, which
// is only exercised at construction time (never on the bellman hot path).
type CSCMatrix struct {
	Rows, Cols int
	ColPtr     []int // length Cols+1
	RowIdx     []int // length nnz, ascending within each column
	Data       []float64
}

// Dims reports the logical shape of the matrix.
func (m *CSCMatrix) Dims() (int, int) { return m.Rows, m.Cols }

// At returns the value at (r, c), or 0 if the entry is not stored.
func (m *CSCMatrix) At(r, c int) float64 {
	lo, hi := m.ColPtr[c], m.ColPtr[c+1]
	rows := m.RowIdx[lo:hi]
	i := sort.SearchInts(rows, r)
	if i < len(rows) && rows[i] == r {
		return m.Data[lo+i]
	}
	return 0
}

// Set is an O(1) view into one column of an IntervalAmbiguitySets container:
// the interval ambiguity set (L, G) over Targets target states, restricted
// to its Support (for dense storage, Support is every target 0..Targets-1;
// for sparse storage, Support is the column's stored nonzero rows). Lower
// and Gap are parallel to Support: Lower[i] and Gap[i] describe target
// Support[i].
type Set struct {
	Targets int
	Support []int
	Lower   []float64
	Gap     []float64
}

// lowerAt returns L(t) for a target index t, or 0 if t is outside Support.
func (s *Set) lowerAt(t int) float64 {
	i, ok := s.posOf(t)
	if !ok {
		return 0
	}
	return s.Lower[i]
}

// gapAt returns G(t) for a target index t, or 0 if t is outside Support.
func (s *Set) gapAt(t int) float64 {
	i, ok := s.posOf(t)
	if !ok {
		return 0
	}
	return s.Gap[i]
}

// posOf locates the position of target t within s.Support (ascending), via
// binary search since Support is always sorted ascending by construction.
func (s *Set) posOf(t int) (int, bool) {
	i := sort.SearchInts(s.Support, t)
	if i < len(s.Support) && s.Support[i] == t {
		return i, true
	}
	return -1, false
}

// LowerAt returns L(t) for target t, per the §4.1 scalar contract.
func (s *Set) LowerAt(t int) float64 { return s.lowerAt(t) }

// GapAt returns G(t) for target t.
func (s *Set) GapAt(t int) float64 { return s.gapAt(t) }

// UpperAt returns L(t)+G(t) for target t.
func (s *Set) UpperAt(t int) float64 { return s.lowerAt(t) + s.gapAt(t) }

// SupportSize returns the number of targets in the support.
func (s *Set) SupportSize() int { return len(s.Support) }

// Budget returns 1 − Σ_t L(t), the mass left to distribute above the lower
// bound while remaining a valid probability distribution.
func (s *Set) Budget() float64 {
	sum := 0.0
	for _, l := range s.Lower {
		sum += l
	}
	return 1 - sum
}

// validate checks the §3 invariants for one column's (lower, gap) pair over
// its declared support and returns the first violated sentinel, if any. eps
// absorbs floating-point rounding noise in the sum checks (see options.go).
func (s *Set) validate(eps float64) error {
	if len(s.Lower) != len(s.Gap) || len(s.Lower) != len(s.Support) {
		return ErrDimensionMismatch
	}
	if len(s.Support) == 0 {
		return ErrEmptySupport
	}
	sumLower, sumUpper := 0.0, 0.0
	for i := range s.Lower {
		l, g := s.Lower[i], s.Gap[i]
		if math.IsNaN(l) || math.IsInf(l, 0) || math.IsNaN(g) || math.IsInf(g, 0) {
			return ErrNaNInf
		}
		if l < 0 || g < 0 {
			return ErrInvalidProbabilityBounds
		}
		if l+g > 1+eps {
			return ErrInvalidProbabilityBounds
		}
		sumLower += l
		sumUpper += l + g
	}
	if sumLower > 1+eps {
		return ErrInvalidProbabilityBounds
	}
	if sumUpper < 1-eps {
		return ErrInvalidProbabilityBounds
	}
	return nil
}

// Sets is the column container contract shared by DenseSets and CscSets.
type Sets interface {
	// NumTargets returns T, the number of target states.
	NumTargets() int
	// NumColumns returns N, the number of (state, action) columns.
	NumColumns() int
	// Column returns column j: an O(1) view for CscSets, a fresh O(T) copy
	// for DenseSets.
	Column(j int) (*Set, error)
	// MaxSupportSize returns the largest support size across all columns,
	// used by solver.Driver to size each worker's bellman.Workspace sort
	// buffers.
	MaxSupportSize() int
}

var (
	_ Matrix = (*mat.Dense)(nil)
	_ Matrix = (*CSCMatrix)(nil)
)
