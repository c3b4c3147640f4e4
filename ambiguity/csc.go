package ambiguity

// CscSets stores N interval ambiguity sets over T targets in
// compressed-sparse-column form: ColPtr/RowIdx describe the shared
// sparsity pattern, with parallel value arrays LowerVal/GapVal. Mirrors the
// colptr/rowval/nzval layout of lvlath's graph/matrix adjacency matrix,
// duplicated here for two value arrays that share one sparsity pattern
// (spec.md §3: "both L and G share the same column pointers and row
// indices").
type CscSets struct {
	targets int
	columns int
	colPtr  []int
	rowIdx  []int
	lowerV  []float64
	gapV    []float64
	maxSupp int
}

// newCscSets assembles a CSC container from an already-validated shared
// sparsity pattern and value arrays. See Build (builder.go) for the public,
// validating constructor.
func newCscSets(targets, columns int, colPtr, rowIdx []int, lowerV, gapV []float64) *CscSets {
	maxSupp := 0
	for j := 0; j < columns; j++ {
		if n := colPtr[j+1] - colPtr[j]; n > maxSupp {
			maxSupp = n
		}
	}
	return &CscSets{
		targets: targets, columns: columns,
		colPtr: colPtr, rowIdx: rowIdx,
		lowerV: lowerV, gapV: gapV,
		maxSupp: maxSupp,
	}
}

// NumTargets returns T.
func (c *CscSets) NumTargets() int { return c.targets }

// NumColumns returns N.
func (c *CscSets) NumColumns() int { return c.columns }

// MaxSupportSize returns max_j (colptr[j+1] − colptr[j]), used by
// solver.Driver to size each worker's bellman.Workspace sort buffers.
func (c *CscSets) MaxSupportSize() int { return c.maxSupp }

// Column returns an O(1) view of column j: Support/Lower/Gap are direct
// sub-slices of the shared backing arrays, never copied.
func (c *CscSets) Column(j int) (*Set, error) {
	if j < 0 || j >= c.columns {
		return nil, ErrOutOfRange
	}
	lo, hi := c.colPtr[j], c.colPtr[j+1]
	return &Set{
		Targets: c.targets,
		Support: c.rowIdx[lo:hi],
		Lower:   c.lowerV[lo:hi],
		Gap:     c.gapV[lo:hi],
	}, nil
}
