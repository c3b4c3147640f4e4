// Package cmd implements the frmdpctl command-line tool: a thin demo
// wrapper around package solver for running a scenario.yaml file through
// value iteration and printing the result.
//
// Grounded on inference-sim-inference-sim's cmd/root.go: a package-level
// rootCmd, subcommands registered from init(), logrus for levelled
// logging.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "frmdpctl",
	Short: "Verify and synthesize strategies for factored robust MDPs",
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
