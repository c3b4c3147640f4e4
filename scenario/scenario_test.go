package scenario_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ambisys/frmdp/scenario"
	"github.com/ambisys/frmdp/solver"
	"github.com/stretchr/testify/require"
)

// s1YAML reproduces spec.md §8 scenario S1 as a scenario document.
const s1YAML = `
state_shape: [3]
action_shape: [2]
marginals:
  - state_indices: [0]
    action_indices: [0]
    lower:
      - [0, .1, 0, .5, .2, 0]
      - [.1, .2, 0, .3, .3, 0]
      - [.2, .3, 1, .1, .4, 1]
    upper:
      - [.5, .6, 0, .7, .6, 0]
      - [.6, .5, 0, .5, .5, 0]
      - [.7, .4, 1, .3, .4, 1]
property:
  kind: reachability
  target: [2]
mode:
  satisfaction: pessimistic
  strategy: maximize
termination:
  kind: fixed
  horizon: 1
strategy_cache: stationary
`

func writeTempScenario(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenarioAndSolveReproducesS1(t *testing.T) {
	path := writeTempScenario(t, s1YAML)
	sc, err := scenario.LoadScenario(path)
	require.NoError(t, err)

	problem, opts, err := sc.BuildProblem()
	require.NoError(t, err)

	d, err := solver.New(problem, opts...)
	require.NoError(t, err)

	res, err := d.Run(context.Background())
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.2, 0.4, 1.0}, res.Value, 1e-12)

	actions, ok := res.Stationary()
	require.True(t, ok)
	require.Equal(t, 0, actions[0])
	require.Equal(t, 1, actions[1])
}

func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	path := writeTempScenario(t, s1YAML+"\nnot_a_real_field: true\n")
	_, err := scenario.LoadScenario(path)
	require.Error(t, err)
}

func TestBuildSpecificationRejectsUnknownPropertyKind(t *testing.T) {
	path := writeTempScenario(t, `
state_shape: [1]
action_shape: [1]
marginals:
  - state_indices: [0]
    action_indices: [0]
    lower: [[1]]
    upper: [[1]]
property:
  kind: not_a_real_property
mode:
  satisfaction: pessimistic
  strategy: maximize
termination:
  kind: fixed
  horizon: 1
`)
	sc, err := scenario.LoadScenario(path)
	require.NoError(t, err)
	_, _, err = sc.BuildProblem()
	require.Error(t, err)
}
