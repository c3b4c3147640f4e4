package solver

import (
	"github.com/ambisys/frmdp/ambiguity"
	"github.com/ambisys/frmdp/bellman"
)

// Algorithm selects which §4.5-compatible kernel computes omax, per
// spec.md §6. WithAlgorithm threads the chosen tag (and, for
// LPMcCormickRelaxation, an LPPlugin) through Driver; Driver.New resolves
// it to a bellman.Kernel once and Driver.Run uses that kernel for every
// sweep.
type Algorithm int

const (
	// OMaximization is the sort-and-sweep kernel of spec.md §4.5: the
	// default, and the only algorithm this core implements natively.
	OMaximization Algorithm = iota
	// VertexEnumeration would evaluate every vertex of the ambiguity
	// polytope explicitly (spec.md §4.4) instead of sorting. No kernel
	// ships for it and no plugin is accepted for it; selecting it is always
	// rejected by Driver.New with ErrUnsupportedAlgorithm.
	VertexEnumeration
	// LPMcCormickRelaxation dispatches to an external LP solver
	// implementing a McCormick relaxation of the joint ambiguity set, via
	// the LPPlugin passed to WithAlgorithm. Selecting it with a nil
	// plugin is rejected the same as VertexEnumeration.
	LPMcCormickRelaxation
)

// LPPlugin is the dispatch contract an external LP solver implements to
// back LPMcCormickRelaxation: given a value vector and an ambiguity.Set,
// return the same omax(v, set, mode) bellman.OMax computes via
// sort-and-sweep, but via an LP relaxation. WithAlgorithm(LPMcCormickRelaxation,
// plugin) installs plugin.OMax as the kernel Driver.Run uses in place of
// bellman.OMax for every column of every Bellman sweep.
type LPPlugin interface {
	OMax(v []float64, set *ambiguity.Set, mode bellman.SatisfactionMode) (float64, error)
}

// kernel resolves cfg's algorithm selection to a bellman.Kernel, or
// ErrUnsupportedAlgorithm if the tag has no backing kernel. Called once by
// Driver.New so a bad selection fails before any iteration runs.
func (cfg config) kernel() (bellman.Kernel, error) {
	switch cfg.algorithm {
	case OMaximization:
		return bellman.OMax, nil
	case LPMcCormickRelaxation:
		if cfg.plugin == nil {
			return nil, ErrUnsupportedAlgorithm
		}
		plugin := cfg.plugin
		return func(v []float64, set *ambiguity.Set, mode bellman.SatisfactionMode, ws *bellman.Workspace) (float64, error) {
			return plugin.OMax(v, set, mode)
		}, nil
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}
