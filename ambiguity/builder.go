package ambiguity

import "gonum.org/v1/gonum/mat"

// Build is the model-ingest constructor of spec.md §6:
// build_interval_ambiguity_sets(lower, upper) -> IAS.
//
// lower and upper must have identical shape. If both are *CSCMatrix they
// must additionally share the same sparsity pattern (spec.md §4.2: "gap =
// upper − lower preserving sparsity pattern of upper") and the result is a
// CscSets; otherwise every entry is materialized and the result is a
// DenseSets. Every §3 invariant is validated column by column; the first
// violation is reported as ErrInvalidProbabilityBounds (or ErrNaNInf /
// ErrDimensionMismatch, per the priority order documented in errors.go).
func Build(lower, upper Matrix, opts ...Option) (Sets, error) {
	lr, lc := lower.Dims()
	ur, uc := upper.Dims()
	if lr != ur || lc != uc {
		return nil, ErrDimensionMismatch
	}
	if lr <= 0 || lc <= 0 {
		return nil, ErrBadShape
	}
	cfg := resolveOptions(opts)

	lowerCsc, lok := lower.(*CSCMatrix)
	upperCsc, uok := upper.(*CSCMatrix)
	if lok && uok {
		return buildSparse(lowerCsc, upperCsc, cfg.epsilon)
	}
	return buildDense(lower, upper, cfg.epsilon)
}

func buildDense(lower, upper Matrix, eps float64) (Sets, error) {
	t, n := lower.Dims()
	lowerM := mat.NewDense(t, n, nil)
	gapM := mat.NewDense(t, n, nil)
	for j := 0; j < n; j++ {
		col := &Set{Targets: t, Support: identitySupport(t), Lower: make([]float64, t), Gap: make([]float64, t)}
		for i := 0; i < t; i++ {
			l := lower.At(i, j)
			u := upper.At(i, j)
			g := u - l
			col.Lower[i] = l
			col.Gap[i] = g
			lowerM.Set(i, j, l)
			gapM.Set(i, j, g)
		}
		if err := col.validate(eps); err != nil {
			return nil, err
		}
	}
	return newDenseSets(lowerM, gapM), nil
}

func buildSparse(lower, upper *CSCMatrix, eps float64) (Sets, error) {
	if lower.Rows != upper.Rows || lower.Cols != upper.Cols {
		return nil, ErrDimensionMismatch
	}
	if len(lower.ColPtr) != len(upper.ColPtr) || len(lower.RowIdx) != len(upper.RowIdx) {
		return nil, ErrDimensionMismatch
	}
	for i := range lower.ColPtr {
		if lower.ColPtr[i] != upper.ColPtr[i] {
			return nil, ErrDimensionMismatch
		}
	}
	for i := range lower.RowIdx {
		if lower.RowIdx[i] != upper.RowIdx[i] {
			return nil, ErrDimensionMismatch
		}
	}

	gapV := make([]float64, len(upper.Data))
	for i := range gapV {
		gapV[i] = upper.Data[i] - lower.Data[i]
	}

	for j := 0; j < lower.Cols; j++ {
		lo, hi := lower.ColPtr[j], lower.ColPtr[j+1]
		col := &Set{
			Targets: lower.Rows,
			Support: lower.RowIdx[lo:hi],
			Lower:   lower.Data[lo:hi],
			Gap:     gapV[lo:hi],
		}
		if err := col.validate(eps); err != nil {
			return nil, err
		}
	}

	return newCscSets(lower.Rows, lower.Cols, lower.ColPtr, lower.RowIdx, lower.Data, gapV), nil
}

func identitySupport(t int) []int {
	s := make([]int, t)
	for i := range s {
		s[i] = i
	}
	return s
}
