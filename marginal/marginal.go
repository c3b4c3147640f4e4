package marginal

import "github.com/ambisys/frmdp/ambiguity"

// Marginal is the indexing adapter of spec.md §4.3: given a global factored
// state index s and action index a, it selects the coordinates at
// StateIndices/ActionIndices, linearizes them column-major over
// (SourceDims, ActionVars), and returns the corresponding column of its
// backing ambiguity.Sets.
type Marginal struct {
	sets          ambiguity.Sets
	stateIndices  []int
	actionIndices []int
	sourceDims    []int
	actionVars    []int
}

// NewMarginal builds a Marginal over sets, selecting stateIndices from a
// global state shape globalStateShape and actionIndices from a global
// action shape globalActionShape. It fails with ErrDimensionMismatch if
// prod(source_dims)*prod(action_vars) != sets.NumColumns(), and with
// ErrInvalidIndex if any selected index exceeds its global shape.
func NewMarginal(sets ambiguity.Sets, stateIndices, actionIndices []int, globalStateShape, globalActionShape []int) (*Marginal, error) {
	for _, si := range stateIndices {
		if si < 0 || si >= len(globalStateShape) {
			return nil, ErrInvalidIndex
		}
	}
	for _, ai := range actionIndices {
		if ai < 0 || ai >= len(globalActionShape) {
			return nil, ErrInvalidIndex
		}
	}

	sourceDims := make([]int, len(stateIndices))
	for i, si := range stateIndices {
		sourceDims[i] = globalStateShape[si]
	}
	actionVars := make([]int, len(actionIndices))
	for i, ai := range actionIndices {
		actionVars[i] = globalActionShape[ai]
	}

	need := prod(sourceDims) * prod(actionVars)
	if need != sets.NumColumns() {
		return nil, ErrDimensionMismatch
	}

	return &Marginal{
		sets:          sets,
		stateIndices:  stateIndices,
		actionIndices: actionIndices,
		sourceDims:    sourceDims,
		actionVars:    actionVars,
	}, nil
}

// Sets returns the backing ambiguity.Sets container.
func (m *Marginal) Sets() ambiguity.Sets { return m.sets }

// NumTargets returns the target-state count T of the backing sets (the
// cardinality of this state variable's value domain).
func (m *Marginal) NumTargets() int { return m.sets.NumTargets() }

// Get returns the ambiguity set governing this marginal's transition for
// global state multi-index s and global action multi-index a.
func (m *Marginal) Get(s, a []int) (*ambiguity.Set, error) {
	col, err := m.ColumnIndex(s, a)
	if err != nil {
		return nil, err
	}
	return m.sets.Column(col)
}

// ColumnIndex computes the linearized column index for global state
// multi-index s and global action multi-index a, per spec.md §4.3: select
// coordinates at state_indices/action_indices, then column-major
// linearization over (source_dims, action_vars).
func (m *Marginal) ColumnIndex(s, a []int) (int, error) {
	dims := make([]int, 0, len(m.sourceDims)+len(m.actionVars))
	idx := make([]int, 0, len(m.sourceDims)+len(m.actionVars))

	for i, si := range m.stateIndices {
		if si >= len(s) {
			return 0, ErrInvalidIndex
		}
		v := s[si]
		if v < 0 || v >= m.sourceDims[i] {
			return 0, ErrInvalidIndex
		}
		dims = append(dims, m.sourceDims[i])
		idx = append(idx, v)
	}
	for i, ai := range m.actionIndices {
		if ai >= len(a) {
			return 0, ErrInvalidIndex
		}
		v := a[ai]
		if v < 0 || v >= m.actionVars[i] {
			return 0, ErrInvalidIndex
		}
		dims = append(dims, m.actionVars[i])
		idx = append(idx, v)
	}

	return sub2ind(dims, idx), nil
}

// sub2ind linearizes a multi-index column-major: the first dimension varies
// fastest, matching spec.md §3's "column-major linearization over the
// selected indices".
func sub2ind(dims, idx []int) int {
	result, stride := 0, 1
	for k := range dims {
		result += idx[k] * stride
		stride *= dims[k]
	}
	return result
}

func prod(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}
