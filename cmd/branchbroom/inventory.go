// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/tidyops/branchbroom/internal/inventory"
	"github.com/tidyops/branchbroom/internal/report"
)

// inventoryCmd validates and displays a repository inventory.
var inventoryCmd = &cobra.Command{
	Use:   "inventory <file>",
	Short: "Validate and display a repository inventory CSV",
	Long: `Inventory parses a CSV of repositories (name,path,remote,protected with
protected as a semicolon-joined list) and prints the parsed records.
Malformed records are reported with their line numbers.`,
	Args: cobra.ExactArgs(1),
	RunE: runInventory,
}

func runInventory(cmd *cobra.Command, args []string) error {
	repos, err := inventory.NewImporterFS(cmdFS).Load(args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, "branchbroom: %v", err)
	}
	return report.WriteInventory(cmd.OutOrStdout(), repos)
}
