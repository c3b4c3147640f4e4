package solver

import "github.com/ambisys/frmdp/strategy"

// TerminationKind selects fixed-iteration vs. residual-convergence
// termination (spec.md §4.10 step 4).
type TerminationKind int

const (
	// FixedIterationsKind runs exactly K Bellman sweeps.
	FixedIterationsKind TerminationKind = iota
	// ConvergenceKind runs until ‖V'−V‖_∞ < ε, capped at MaxIterations.
	ConvergenceKind
)

// Termination configures Driver's stopping rule.
type Termination struct {
	Kind    TerminationKind
	Horizon int     // iteration count K, for FixedIterationsKind
	Epsilon float64 // convergence threshold ε, for ConvergenceKind
}

// FixedIterations builds a Termination that runs exactly k Bellman sweeps.
func FixedIterations(k int) Termination {
	return Termination{Kind: FixedIterationsKind, Horizon: k}
}

// Convergence builds a Termination that runs until the residual drops
// below eps.
func Convergence(eps float64) Termination {
	return Termination{Kind: ConvergenceKind, Epsilon: eps}
}

// DefaultMaxIterations is the hard cap under Convergence termination absent
// an explicit override (spec.md §9).
const DefaultMaxIterations = 1_000_000

// config holds the resolved configuration for Driver.
type config struct {
	termination   Termination
	maxIterations int
	strategyKind  strategy.Kind
	given         strategy.Given
	threads       int
	cancellation  func() bool
	algorithm     Algorithm
	plugin        LPPlugin
}

// Option configures a Driver.
type Option func(*config)

// WithTermination overrides the stopping rule. Default: FixedIterations(1).
func WithTermination(term Termination) Option {
	return func(c *config) { c.termination = term }
}

// WithMaxIterations overrides the hard cap under Convergence termination.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithStrategy selects the strategy-cache kind (None, Stationary, or
// TimeVarying). Default: strategy.KindNone.
func WithStrategy(kind strategy.Kind) Option {
	return func(c *config) { c.strategyKind = kind }
}

// WithGivenStrategy selects the non-optimizing evaluate-only variant
// (strategy.KindGiven): the driver evaluates the named strategy instead of
// reducing over the feasible action set.
func WithGivenStrategy(given strategy.Given) Option {
	return func(c *config) {
		c.strategyKind = strategy.KindGiven
		c.given = given
	}
}

// WithThreads sets the number of goroutines the driver partitions the
// per-iteration state loop across. Default: 1.
func WithThreads(n int) Option {
	return func(c *config) { c.threads = n }
}

// WithCancellation installs a callback polled between iterations; if it
// returns true, Run stops and returns ErrCancelled.
func WithCancellation(fn func() bool) Option {
	return func(c *config) { c.cancellation = fn }
}

// WithAlgorithm selects the omax kernel (spec.md §6). Default:
// OMaximization, the only algorithm this core implements natively. Passing
// LPMcCormickRelaxation installs plugin as the kernel Driver.Run uses
// instead of bellman.OMax; plugin is ignored for every other tag.
// Selecting VertexEnumeration, or LPMcCormickRelaxation with a nil plugin,
// is rejected by Driver.New with ErrUnsupportedAlgorithm.
func WithAlgorithm(alg Algorithm, plugin LPPlugin) Option {
	return func(c *config) {
		c.algorithm = alg
		c.plugin = plugin
	}
}

func resolveOptions(opts []Option) config {
	c := config{
		termination:   FixedIterations(1),
		maxIterations: DefaultMaxIterations,
		strategyKind:  strategy.KindNone,
		threads:       1,
		algorithm:     OMaximization,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
