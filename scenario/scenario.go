// Package scenario loads a YAML description of an fRMDP and a
// specification into the core packages (ambiguity, marginal,
// specification, solver), for use by the frmdpctl CLI in package cmd. It is demo tooling, not
// part of the verification/synthesis core: the core packages never import
// it, and its own defaults (YAML field names, CLI flag names) are free to
// evolve independently of spec.md's algorithmic contract.
//
// Grounded on inference-sim-inference-sim's sim/workload/spec.go:
// os.ReadFile + yaml.NewDecoder(...).KnownFields(true), fmt.Errorf("...: %w")
// wrapping, a single LoadScenario(path) entry point.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ambisys/frmdp/ambiguity"
	"github.com/ambisys/frmdp/bellman"
	"github.com/ambisys/frmdp/marginal"
	"github.com/ambisys/frmdp/solver"
	"github.com/ambisys/frmdp/specification"
	"github.com/ambisys/frmdp/strategy"
	"gonum.org/v1/gonum/mat"
)

// Scenario is the top-level YAML document: a factored robust MDP (state
// shape, action shape, one MarginalSpec per state variable), a property to
// verify or synthesize against, the satisfaction/strategy modes, and the
// solver's termination/threading configuration.
type Scenario struct {
	StateShape    []int          `yaml:"state_shape"`
	ActionShape   []int          `yaml:"action_shape"`
	Marginals     []MarginalSpec `yaml:"marginals"`
	Property      PropertySpec   `yaml:"property"`
	Mode          ModeSpec       `yaml:"mode"`
	Termination   TerminationSpec `yaml:"termination"`
	StrategyCache string         `yaml:"strategy_cache,omitempty"`
	Threads       int            `yaml:"threads,omitempty"`
	MaxIterations int            `yaml:"max_iterations,omitempty"`
}

// MarginalSpec is one factored state variable's transition model: the
// selected global state/action coordinates it depends on, and the lower
// bound and gap-implying upper bound matrices (rows = target values,
// columns = column-major-linearized (selected state, selected action)).
type MarginalSpec struct {
	StateIndices  []int       `yaml:"state_indices"`
	ActionIndices []int       `yaml:"action_indices"`
	Lower         [][]float64 `yaml:"lower"`
	Upper         [][]float64 `yaml:"upper"`
}

// PropertySpec selects one row of spec.md §4.9's post-processing table.
// Only the fields relevant to Kind need be set.
type PropertySpec struct {
	Kind     string    `yaml:"kind"`
	Target   []int     `yaml:"target,omitempty"`
	Avoid    []int     `yaml:"avoid,omitempty"`
	Reward   []float64 `yaml:"reward,omitempty"`
	Discount float64   `yaml:"discount,omitempty"`
}

// ModeSpec selects the robust Bellman operator's satisfaction direction
// (pessimistic/optimistic) and the outer action reduction's strategy
// direction (maximize/minimize).
type ModeSpec struct {
	Satisfaction string `yaml:"satisfaction"`
	Strategy     string `yaml:"strategy"`
}

// TerminationSpec selects FixedIterations or Convergence termination.
type TerminationSpec struct {
	Kind    string  `yaml:"kind"`
	Horizon int     `yaml:"horizon,omitempty"`
	Epsilon float64 `yaml:"epsilon,omitempty"`
}

// LoadScenario reads and parses a Scenario YAML document from path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &s, nil
}

// BuildRMDP constructs the marginal.FactoredRMDP described by the
// scenario's state/action shapes and marginal specs.
func (s *Scenario) BuildRMDP() (*marginal.FactoredRMDP, error) {
	marginals := make([]*marginal.Marginal, len(s.Marginals))
	for i, ms := range s.Marginals {
		lower := denseFromRows(ms.Lower)
		upper := denseFromRows(ms.Upper)
		sets, err := ambiguity.Build(lower, upper)
		if err != nil {
			return nil, fmt.Errorf("marginal %d: building ambiguity sets: %w", i, err)
		}
		m, err := marginal.NewMarginal(sets, ms.StateIndices, ms.ActionIndices, s.StateShape, s.ActionShape)
		if err != nil {
			return nil, fmt.Errorf("marginal %d: %w", i, err)
		}
		marginals[i] = m
	}
	rmdp, err := marginal.NewFactoredRMDP(s.StateShape, s.ActionShape, marginals)
	if err != nil {
		return nil, fmt.Errorf("assembling factored RMDP: %w", err)
	}
	return rmdp, nil
}

func denseFromRows(rows [][]float64) *mat.Dense {
	if len(rows) == 0 {
		return mat.NewDense(0, 0, nil)
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data)
}

// BuildProperty constructs the specification.Property named by the
// scenario's PropertySpec.
func (s *Scenario) BuildProperty(numStates int) (specification.Property, error) {
	p := s.Property
	switch p.Kind {
	case "reachability":
		return specification.NewReachability(p.Target, numStates)
	case "exact_time_reachability":
		return specification.NewExactTimeReachability(p.Target, numStates)
	case "reach_avoid":
		return specification.NewReachAvoid(p.Target, p.Avoid, numStates)
	case "exact_time_reach_avoid":
		return specification.NewExactTimeReachAvoid(p.Target, p.Avoid, numStates)
	case "safety":
		return specification.NewSafety(p.Avoid, numStates)
	case "reward_finite":
		return specification.NewFiniteTimeReward(p.Reward, p.Discount)
	case "reward_infinite":
		return specification.NewInfiniteTimeReward(p.Reward, p.Discount)
	case "expected_exit_time":
		return specification.NewExpectedExitTime(p.Avoid, numStates)
	default:
		return nil, fmt.Errorf("unknown property kind %q", p.Kind)
	}
}

// BuildSpecification constructs the paired specification.Specification.
func (s *Scenario) BuildSpecification(numStates int) (*specification.Specification, error) {
	prop, err := s.BuildProperty(numStates)
	if err != nil {
		return nil, err
	}
	satMode, err := parseSatisfactionMode(s.Mode.Satisfaction)
	if err != nil {
		return nil, err
	}
	stratMode, err := parseStrategyMode(s.Mode.Strategy)
	if err != nil {
		return nil, err
	}
	return specification.New(prop, satMode, stratMode)
}

func parseSatisfactionMode(s string) (bellman.SatisfactionMode, error) {
	switch s {
	case "pessimistic":
		return bellman.Pessimistic, nil
	case "optimistic":
		return bellman.Optimistic, nil
	default:
		return 0, fmt.Errorf("unknown satisfaction mode %q", s)
	}
}

func parseStrategyMode(s string) (bellman.StrategyMode, error) {
	switch s {
	case "maximize":
		return bellman.Maximize, nil
	case "minimize":
		return bellman.Minimize, nil
	default:
		return 0, fmt.Errorf("unknown strategy mode %q", s)
	}
}

// BuildTermination constructs the solver.Termination named by the
// scenario's TerminationSpec.
func (s *Scenario) BuildTermination() (solver.Termination, error) {
	switch s.Termination.Kind {
	case "fixed":
		return solver.FixedIterations(s.Termination.Horizon), nil
	case "convergence":
		return solver.Convergence(s.Termination.Epsilon), nil
	default:
		return solver.Termination{}, fmt.Errorf("unknown termination kind %q", s.Termination.Kind)
	}
}

// BuildStrategyKind parses the scenario's strategy_cache field, defaulting
// to strategy.KindNone when unset.
func (s *Scenario) BuildStrategyKind() (strategy.Kind, error) {
	switch s.StrategyCache {
	case "", "none":
		return strategy.KindNone, nil
	case "stationary":
		return strategy.KindStationary, nil
	case "time_varying":
		return strategy.KindTimeVarying, nil
	default:
		return 0, fmt.Errorf("unknown strategy_cache %q", s.StrategyCache)
	}
}

// BuildProblem assembles a solver.Problem and solver.Option set from the
// scenario, ready to pass to solver.New.
func (s *Scenario) BuildProblem() (*solver.Problem, []solver.Option, error) {
	rmdp, err := s.BuildRMDP()
	if err != nil {
		return nil, nil, err
	}
	spec, err := s.BuildSpecification(rmdp.StateSize())
	if err != nil {
		return nil, nil, err
	}
	term, err := s.BuildTermination()
	if err != nil {
		return nil, nil, err
	}
	kind, err := s.BuildStrategyKind()
	if err != nil {
		return nil, nil, err
	}

	opts := []solver.Option{solver.WithTermination(term), solver.WithStrategy(kind)}
	if s.Threads > 0 {
		opts = append(opts, solver.WithThreads(s.Threads))
	}
	if s.MaxIterations > 0 {
		opts = append(opts, solver.WithMaxIterations(s.MaxIterations))
	}

	var problem *solver.Problem
	if kind == strategy.KindNone {
		problem = solver.MakeVerificationProblem(rmdp, spec)
	} else {
		problem = solver.MakeControlSynthesisProblem(rmdp, spec)
	}
	return problem, opts, nil
}
