package ambiguity

import "gonum.org/v1/gonum/mat"

// DenseSets stores N interval ambiguity sets over T targets as a pair of
// dense T×N matrices (lower, gap), mirroring lvlath's matrix.Dense row-major
// storage but backed by gonum.org/v1/gonum/mat.Dense, gonum's own numeric
// container, since this is exactly the linear-algebra payload gonum targets.
type DenseSets struct {
	targets int
	columns int
	lower   *mat.Dense
	gap     *mat.Dense
	support []int // shared identity support, reused across every column
}

// newDenseSets builds a dense column container from fully-populated lower
// and gap matrices of identical T×N shape. Use Build (builder.go) for the
// validating, upper-bound-taking public constructor; this is the internal
// assembly step once gap = upper − lower has already been computed.
func newDenseSets(lower, gap *mat.Dense) *DenseSets {
	t, n := lower.Dims()
	support := make([]int, t)
	for i := range support {
		support[i] = i
	}
	return &DenseSets{targets: t, columns: n, lower: lower, gap: gap, support: support}
}

// NumTargets returns T.
func (d *DenseSets) NumTargets() int { return d.targets }

// NumColumns returns N.
func (d *DenseSets) NumColumns() int { return d.columns }

// MaxSupportSize is always T for dense storage: every column's declared
// support is the full target set regardless of individual zero gaps.
func (d *DenseSets) MaxSupportSize() int { return d.targets }

// Column returns column j with Lower/Gap copied out of the row-major
// mat.Dense storage into fresh slices, an O(T) operation; only the shared
// identity Support is reused without copying.
func (d *DenseSets) Column(j int) (*Set, error) {
	if j < 0 || j >= d.columns {
		return nil, ErrOutOfRange
	}
	lower := make([]float64, d.targets)
	gap := make([]float64, d.targets)
	mat.Col(lower, j, d.lower)
	mat.Col(gap, j, d.gap)
	return &Set{Targets: d.targets, Support: d.support, Lower: lower, Gap: gap}, nil
}
