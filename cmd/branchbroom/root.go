// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	broomlog "github.com/tidyops/branchbroom/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for branchbroom.
var rootCmd = &cobra.Command{
	Use:   "branchbroom",
	Short: "Sweep merged branches off your git remotes",
	Long: `Branchbroom keeps remotes tidy: it fetches remote state, lists branches
already merged into the default branch, skips protected ones, and deletes
the rest on the remote. Point it at a single repository or at a CSV
inventory of clones and run it nightly from your scheduler.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		broomlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(versionCmd)
}
