package marginal

// Sub2Ind linearizes a multi-index column-major (first dimension fastest)
// over dims. It is the exported counterpart of the unexported helper used
// internally by Marginal.ColumnIndex, for callers (package solver, package
// automaton) that need to enumerate or address the full joint state/action
// space S = S_1 × … × S_n rather than a single marginal's column space.
func Sub2Ind(dims, idx []int) int { return sub2ind(dims, idx) }

// Ind2Sub is the inverse of Sub2Ind: it decomposes a flat column-major
// index into its per-dimension coordinates.
func Ind2Sub(dims []int, flat int) []int {
	idx := make([]int, len(dims))
	for k := range dims {
		idx[k] = flat % dims[k]
		flat /= dims[k]
	}
	return idx
}

// StateMultiIndex decomposes a flat joint-state index into per-variable
// coordinates over StateShape().
func (f *FactoredRMDP) StateMultiIndex(flat int) []int { return Ind2Sub(f.stateShape, flat) }

// StateFlatIndex linearizes a per-variable state multi-index into a flat
// joint-state index.
func (f *FactoredRMDP) StateFlatIndex(s []int) int { return Sub2Ind(f.stateShape, s) }

// ActionMultiIndex decomposes a flat joint-action index into per-variable
// coordinates over ActionShape().
func (f *FactoredRMDP) ActionMultiIndex(flat int) []int { return Ind2Sub(f.actionShape, flat) }

// ActionFlatIndex linearizes a per-variable action multi-index into a flat
// joint-action index.
func (f *FactoredRMDP) ActionFlatIndex(a []int) int { return Sub2Ind(f.actionShape, a) }
