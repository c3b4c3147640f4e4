package specification

// Kind identifies which row of the spec.md §4.9 post-processing table a
// Property implements.
type Kind int

const (
	KindReachability Kind = iota
	KindExactTimeReachability
	KindReachAvoid
	KindExactTimeReachAvoid
	KindSafety
	KindReward
	KindExpectedExitTime
	KindDFAReachability
)

// Property selects a value function's initialization and its per-iteration
// post-processing, per spec.md §4.9. Finite- and infinite-horizon variants
// of the same row share one Property implementation; horizon (fixed
// iteration count vs. residual convergence) is a solver-level termination
// concern, not a property concern.
type Property interface {
	Kind() Kind
	// Init returns V_0 over n states.
	Init(n int) []float64
	// PostUpdate folds the raw Bellman output b = Bellman(V_k)(s) into
	// V_{k+1}(s).
	PostUpdate(s int, b float64) float64
	// FinalReport transforms the driver's raw terminal value function into
	// the reported one. Identity for every property except Safety.
	FinalReport(v []float64) []float64
}

func identityReport(v []float64) []float64 { return v }
