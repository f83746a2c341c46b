// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/tidyops/branchbroom/internal/fsys"
)

// resetSweepFlags clears sweep flag state between tests; cobra remembers
// Changed across Execute calls.
func resetSweepFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		sweepInventory, sweepRemote, sweepDefaultBranch = "", "", ""
		sweepProtect = nil
		sweepDryRun, sweepJSON = false, false
		sweepJobs = 0
		sweepCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})
}

// withMemFS swaps cmdFS for a fake seeded with the given contents.
func withMemFS(t *testing.T, seed map[string]string) {
	t.Helper()
	orig := cmdFS
	cmdFS = fsys.NewMemFS(seed)
	t.Cleanup(func() { cmdFS = orig })
}

// execute runs the root command with args and captures combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// assertRemoteBranch checks whether the bare remote still carries branch.
func assertRemoteBranch(t *testing.T, bareDir, branch string, want bool) {
	t.Helper()
	repo, err := gogit.PlainOpen(bareDir)
	require.NoError(t, err)
	_, err = repo.Reference(plumbing.NewBranchReferenceName(branch), false)
	if want {
		require.NoError(t, err, "branch %s should exist on the remote", branch)
	} else {
		require.ErrorIs(t, err, plumbing.ErrReferenceNotFound, "branch %s should be gone", branch)
	}
}

// initSweepFixture builds a working clone wired to a local bare remote
// with one merged branch (merged-feature) and master as default.
func initSweepFixture(t *testing.T) (workDir, bareDir string) {
	t.Helper()

	bareDir = t.TempDir()
	_, err := gogit.PlainInit(bareDir, true)
	require.NoError(t, err)

	workDir = t.TempDir()
	work, err := gogit.PlainInit(workDir, false)
	require.NoError(t, err)

	_, err = work.CreateRemote(&gitcfg.RemoteConfig{
		Name:  "origin",
		URLs:  []string{bareDir},
		Fetch: []gitcfg.RefSpec{"+refs/heads/*:refs/remotes/origin/*"},
	})
	require.NoError(t, err)

	wt, err := work.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "README.md"), []byte("v1"), 0o600))
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	c1, err := wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	require.NoError(t, work.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewBranchReferenceName("merged-feature"), c1)))

	require.NoError(t, os.WriteFile(filepath.Join(workDir, "README.md"), []byte("v2"), 0o600))
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("second commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	require.NoError(t, work.Push(&gogit.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []gitcfg.RefSpec{"refs/heads/*:refs/heads/*"},
	}))

	return workDir, bareDir
}
