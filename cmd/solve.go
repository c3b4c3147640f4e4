package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ambisys/frmdp/scenario"
	"github.com/ambisys/frmdp/solver"
)

var (
	scenarioPath string
	logLevel     string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run value iteration against a scenario.yaml file",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)

		sc, err := scenario.LoadScenario(scenarioPath)
		if err != nil {
			return err
		}
		problem, opts, err := sc.BuildProblem()
		if err != nil {
			return fmt.Errorf("building problem: %w", err)
		}
		logrus.Infof("solving %s: %d states", scenarioPath, problem.StateSize())

		d, err := solver.New(problem, opts...)
		if err != nil {
			return fmt.Errorf("configuring solver: %w", err)
		}
		res, err := d.Run(context.Background())
		if err != nil {
			return fmt.Errorf("value iteration: %w", err)
		}

		logrus.Infof("converged after %d iterations, residual %.3e", res.Iterations, res.Residual)
		for s, val := range res.Value {
			fmt.Printf("V(%d) = %.6f\n", s, val)
		}
		if actions, ok := res.Stationary(); ok {
			for s, a := range actions {
				fmt.Printf("pi(%d) = %d\n", s, a)
			}
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a scenario YAML file")
	solveCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	_ = solveCmd.MarkFlagRequired("scenario")

	rootCmd.AddCommand(solveCmd)
}
