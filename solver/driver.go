package solver

import (
	"context"
	"math"

	"github.com/ambisys/frmdp/bellman"
	"github.com/ambisys/frmdp/strategy"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Driver runs the value-iteration loop of spec.md §4.10 against a Problem.
// A Driver is reusable across calls to Run but not safe for concurrent use
// by multiple goroutines.
type Driver struct {
	problem *Problem
	cfg     config
	kernel  bellman.Kernel
}

// New builds a Driver for problem, applying opts over the teacher-style
// functional-option defaults (FixedIterations(1), one thread, KindNone
// strategy, OMaximization).
func New(problem *Problem, opts ...Option) (*Driver, error) {
	cfg := resolveOptions(opts)
	if cfg.maxIterations <= 0 {
		return nil, ErrInvalidParameter
	}
	if cfg.threads < 1 {
		return nil, ErrInvalidParameter
	}
	if cfg.termination.Kind == ConvergenceKind && cfg.termination.Epsilon <= 0 {
		return nil, ErrInvalidParameter
	}
	if cfg.strategyKind == strategy.KindGiven && cfg.given == nil {
		return nil, ErrInvalidParameter
	}
	if problem.Mode() == ControlSynthesisMode && cfg.strategyKind == strategy.KindNone {
		return nil, ErrInvalidParameter
	}
	kernel, err := cfg.kernel()
	if err != nil {
		return nil, err
	}
	return &Driver{problem: problem, cfg: cfg, kernel: kernel}, nil
}

func (d *Driver) newCache() strategy.Cache {
	n := d.problem.StateSize()
	switch d.cfg.strategyKind {
	case strategy.KindStationary:
		return strategy.NewStationary(n)
	case strategy.KindTimeVarying:
		return strategy.NewTimeVarying(n)
	case strategy.KindGiven:
		return d.cfg.given
	default:
		return strategy.NewNone()
	}
}

// Run executes the value-iteration loop and returns a Result. ctx is
// polled for cancellation alongside the configured cancellation callback,
// both checked between (never during) iterations.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	prop := d.problem.spec.Property()
	satMode := d.problem.spec.SatisfactionMode()
	stratMode := d.problem.spec.StrategyMode()
	n := d.problem.StateSize()

	v := prop.Init(n)
	vNext := make([]float64, n)
	cache := d.newCache()

	rmdp := d.problem.rmdp
	if d.problem.IsProduct() {
		rmdp = d.problem.product.RMDP()
	}
	maxSupport := 0
	for _, m := range rmdp.Marginals() {
		if sz := m.Sets().MaxSupportSize(); sz > maxSupport {
			maxSupport = sz
		}
	}
	workers := make([]*bellman.Workspace, d.cfg.threads)
	for i := range workers {
		workers[i] = bellman.NewWorkspace(maxSupport)
	}

	iterations := 0
	residual := math.Inf(1)

	for {
		if d.cfg.cancellation != nil && d.cfg.cancellation() {
			return nil, ErrCancelled
		}
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}

		if d.cfg.termination.Kind == FixedIterationsKind && iterations >= d.cfg.termination.Horizon {
			break
		}
		if d.cfg.termination.Kind == ConvergenceKind && iterations >= d.cfg.maxIterations {
			return nil, ErrIterationLimitExceeded
		}

		var err error
		if d.problem.IsProduct() {
			err = d.sweepProduct(v, vNext, prop, satMode, stratMode, cache, workers)
		} else {
			err = d.sweepPlain(v, vNext, prop, satMode, stratMode, cache, workers)
		}
		if err != nil {
			return nil, err
		}

		if tv, ok := cache.(*strategy.TimeVaryingCache); ok {
			tv.EndIteration()
		}

		residual = floats.Distance(v, vNext, math.Inf(1))
		v, vNext = vNext, v
		iterations++

		if d.cfg.termination.Kind == ConvergenceKind && residual < d.cfg.termination.Epsilon {
			break
		}
	}

	reported := prop.FinalReport(append([]float64(nil), v...))
	return &Result{
		Value:      reported,
		Iterations: iterations,
		Residual:   residual,
		Strategy:   cache,
	}, nil
}

// sweepPlain runs one Bellman sweep over a plain (non-product) system,
// partitioning states across d.cfg.threads goroutines per spec.md §5: each
// thread writes a disjoint slice of vNext, so no locking is needed.
func (d *Driver) sweepPlain(v, vNext []float64, prop propertyLike, satMode bellman.SatisfactionMode, stratMode bellman.StrategyMode, cache strategy.Cache, workers []*bellman.Workspace) error {
	rmdp := d.problem.rmdp
	n := rmdp.StateSize()

	g := new(errgroup.Group)
	chunks := partition(n, len(workers))
	for wi, c := range chunks {
		wi, c := wi, c
		if c.lo >= c.hi {
			continue
		}
		g.Go(func() error {
			ws := workers[wi]
			for s := c.lo; s < c.hi; s++ {
				raw, err := bellman.ReduceWithKernel(rmdp, v, s, satMode, stratMode, ws, cache, d.kernel)
				if err != nil {
					return err
				}
				vNext[s] = prop.PostUpdate(s, raw)
			}
			return nil
		})
	}
	return g.Wait()
}

// sweepProduct runs one Bellman sweep over a lazy fRMDP×DFA product: one
// relabel per DFA state q (sequential, pointwise), then a Reduce over
// every source state partitioned across threads, matching the product-flat
// index convention q*stateSize+s used by specification.DFAReachability.
func (d *Driver) sweepProduct(v, vNext []float64, prop propertyLike, satMode bellman.SatisfactionMode, stratMode bellman.StrategyMode, cache strategy.Cache, workers []*bellman.Workspace) error {
	pp := d.problem.product
	rmdp := pp.RMDP()
	stateSize := rmdp.StateSize()
	numDFA := pp.DFA().NumStates()

	views := make([][]float64, numDFA)
	for q := 0; q < numDFA; q++ {
		views[q] = v[q*stateSize : (q+1)*stateSize]
	}

	for q := 0; q < numDFA; q++ {
		w, err := bellman.RelabelProduct(pp, views, q, workers[0])
		if err != nil {
			return err
		}

		g := new(errgroup.Group)
		chunks := partition(stateSize, len(workers))
		for wi, c := range chunks {
			wi, c, q := wi, c, q
			if c.lo >= c.hi {
				continue
			}
			g.Go(func() error {
				ws := workers[wi]
				for s := c.lo; s < c.hi; s++ {
					flat := q*stateSize + s
					raw, err := bellman.ReduceWithKernel(rmdp, w, s, satMode, stratMode, ws, cache, d.kernel)
					if err != nil {
						return err
					}
					vNext[flat] = prop.PostUpdate(flat, raw)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

// propertyLike is the subset of specification.Property the driver needs;
// declared locally to avoid an import cycle (package specification already
// imports package bellman).
type propertyLike interface {
	PostUpdate(s int, b float64) float64
	FinalReport(v []float64) []float64
}

type chunk struct{ lo, hi int }

// partition splits [0, n) into at most k contiguous, roughly equal chunks.
func partition(n, k int) []chunk {
	if k < 1 {
		k = 1
	}
	chunks := make([]chunk, k)
	base, rem := n/k, n%k
	lo := 0
	for i := 0; i < k; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks[i] = chunk{lo: lo, hi: lo + size}
		lo += size
	}
	return chunks
}
