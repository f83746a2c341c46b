// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tidyops/branchbroom/internal/config"
	"github.com/tidyops/branchbroom/internal/inventory"
	"github.com/tidyops/branchbroom/internal/report"
	"github.com/tidyops/branchbroom/internal/sweep"
)

// Sweep-specific flag values.
var (
	sweepInventory     string
	sweepRemote        string
	sweepProtect       []string
	sweepDefaultBranch string
	sweepDryRun        bool
	sweepJobs          int
	sweepJSON          bool
)

// sweepCmd deletes merged branches on the remote.
var sweepCmd = &cobra.Command{
	Use:   "sweep [path]",
	Short: "Delete remote branches already merged into the default branch",
	Long: `Sweep fetches remote state for a repository, finds remote branches whose
tips are ancestors of the default branch head, and deletes them on the
remote. Protected branches (main, master, HEAD, the default branch, and
anything listed via --protect or config) are never touched.

With --inventory, sweep reads a CSV of repositories (name,path,remote,
protected) and sweeps each of them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().StringVarP(&sweepInventory, "inventory", "i", "", "CSV inventory of repositories to sweep")
	sweepCmd.Flags().StringVar(&sweepRemote, "remote", "", "remote to sweep (default origin)")
	sweepCmd.Flags().StringSliceVar(&sweepProtect, "protect", nil, "additional branch names to protect")
	sweepCmd.Flags().StringVar(&sweepDefaultBranch, "default-branch", "", "merge target branch (default: main, then master)")
	sweepCmd.Flags().BoolVar(&sweepDryRun, "dry-run", false, "report what would be deleted without deleting")
	sweepCmd.Flags().IntVar(&sweepJobs, "jobs", 0, "max concurrent repository sweeps (inventory mode)")
	sweepCmd.Flags().BoolVar(&sweepJSON, "json", false, "machine-readable output")
}

func runSweep(cmd *cobra.Command, args []string) error {
	repoPath := "."
	if len(args) > 0 {
		repoPath = args[0]
	}
	if len(args) > 0 && sweepInventory != "" {
		return exitError(ExitInvalidArgs, "branchbroom: a path argument and --inventory are mutually exclusive")
	}

	effective, err := loadSweepConfig(cmd, repoPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "branchbroom: loading config: %v", err)
	}

	opts := sweep.Options{
		Remote:        effective.Remote,
		Protected:     effective.Protected,
		DefaultBranch: effective.DefaultBranch,
		DryRun:        effective.DryRun != nil && *effective.DryRun,
	}
	// An explicit --dry-run=false must defeat dry_run: true from config,
	// so the flag only applies when actually set.
	if cmd.Flags().Changed("dry-run") {
		opts.DryRun = sweepDryRun
	}

	inventoryPath := sweepInventory
	if inventoryPath == "" && len(args) == 0 && effective.Inventory != "" {
		inventoryPath = effective.Inventory
	}

	sweeper := sweep.New()
	if inventoryPath != "" {
		return runInventorySweep(cmd, sweeper, inventoryPath, opts, effective.Jobs)
	}

	slog.Debug("sweeping repository", "path", repoPath, "remote", opts.Remote, "dry_run", opts.DryRun)
	rep, err := sweeper.Sweep(cmd.Context(), repoPath, opts)
	if err != nil {
		return exitError(ExitTotalFailure, "branchbroom: %v", err)
	}
	if err := writeSweepOutput(cmd, []*sweep.Report{rep}); err != nil {
		return err
	}
	if rep.Failed() {
		return exitError(ExitPartialFailure, "branchbroom: %d branch deletions failed", rep.Count(sweep.ActionFailed))
	}
	return nil
}

// runInventorySweep sweeps every repository in the CSV inventory.
func runInventorySweep(cmd *cobra.Command, sweeper *sweep.Sweeper, path string, opts sweep.Options, jobs int) error {
	repos, err := inventory.NewImporterFS(cmdFS).Load(path)
	if err != nil {
		return exitError(ExitInvalidArgs, "branchbroom: reading inventory: %v", err)
	}
	if len(repos) == 0 {
		return exitError(ExitInvalidArgs, "branchbroom: inventory %s lists no repositories", path)
	}

	if sweepJobs > 0 {
		jobs = sweepJobs
	}
	slog.Debug("sweeping inventory", "path", path, "repos", len(repos), "jobs", jobs)

	reports, err := sweeper.SweepAll(cmd.Context(), repos, opts, jobs)
	if err != nil {
		return exitError(ExitTotalFailure, "branchbroom: %v", err)
	}
	if err := writeSweepOutput(cmd, reports); err != nil {
		return err
	}

	failed := 0
	for _, r := range reports {
		if r.Failed() {
			failed++
		}
	}
	switch {
	case failed == 0:
		return nil
	case failed == len(reports):
		return exitError(ExitTotalFailure, "")
	default:
		return exitError(ExitPartialFailure, "branchbroom: %d of %d repositories failed", failed, len(reports))
	}
}

// loadSweepConfig merges global TOML, per-repository YAML, and flags.
func loadSweepConfig(cmd *cobra.Command, repoPath string) (*config.Config, error) {
	var global *config.Global
	if path, err := config.GlobalPath(); err == nil {
		global, err = config.LoadGlobal(cmdFS, path)
		if err != nil {
			return nil, err
		}
	}

	repoCfg, err := config.Load(cmdFS, repoPath)
	if err != nil {
		return nil, err
	}

	effective := config.Merge(global, repoCfg)

	// Flags win over every file.
	if cmd.Flags().Changed("remote") {
		effective.Remote = sweepRemote
	}
	if cmd.Flags().Changed("default-branch") {
		effective.DefaultBranch = sweepDefaultBranch
	}
	effective.Protected = append(effective.Protected, sweepProtect...)
	if cmd.Flags().Changed("jobs") {
		effective.Jobs = sweepJobs
	}
	return effective, nil
}

// writeSweepOutput renders reports as JSON or human-readable summaries.
func writeSweepOutput(cmd *cobra.Command, reports []*sweep.Report) error {
	out := cmd.OutOrStdout()
	if sweepJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}
	if err := report.WriteSummaries(out, reports); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
