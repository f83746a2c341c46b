// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

// Package sweep deletes remote branches that have already been merged
// into the default branch. It mirrors the nightly cleanup routine:
// fetch remote state, list merged branches, filter out protected ones,
// delete the rest on the remote.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/google/uuid"

	"github.com/tidyops/branchbroom/internal/gitops"
)

// alwaysProtected are branch names excluded from sweeping regardless of
// configuration.
var alwaysProtected = map[string]bool{
	"main":   true,
	"master": true,
	"HEAD":   true,
}

// defaultBranchCandidates are tried in order when no default branch is
// configured.
var defaultBranchCandidates = []string{"main", "master"}

// Action describes what the sweeper did with a branch.
type Action string

// Branch outcomes.
const (
	// ActionDeleted: the branch was merged and removed on the remote.
	ActionDeleted Action = "deleted"
	// ActionDryRun: the branch would be deleted, but dry-run is on.
	ActionDryRun Action = "would-delete"
	// ActionProtected: the branch is merged but protected.
	ActionProtected Action = "protected"
	// ActionKept: the branch is not merged into the default branch.
	ActionKept Action = "kept"
	// ActionFailed: the remote delete failed.
	ActionFailed Action = "failed"
)

// Branch is the per-branch outcome of a sweep.
type Branch struct {
	Name   string `json:"name"`
	Action Action `json:"action"`
	Detail string `json:"detail,omitempty"`
}

// Report summarizes one repository sweep.
type Report struct {
	RunID         string   `json:"run_id"`
	RepoName      string   `json:"repo"`
	RepoPath      string   `json:"path"`
	Remote        string   `json:"remote"`
	DefaultBranch string   `json:"default_branch,omitempty"`
	Branches      []Branch `json:"branches,omitempty"`
	Err           string   `json:"error,omitempty"`
}

// Count returns the number of branches with the given action.
func (r *Report) Count(action Action) int {
	n := 0
	for _, b := range r.Branches {
		if b.Action == action {
			n++
		}
	}
	return n
}

// Failed reports whether the sweep failed at the repository level or for
// any individual branch.
func (r *Report) Failed() bool {
	return r.Err != "" || r.Count(ActionFailed) > 0
}

// Options controls a sweep.
type Options struct {
	// Remote is the remote to sweep. Defaults to "origin".
	Remote string

	// Protected lists branch names that must never be deleted, in
	// addition to main, master, HEAD, and the default branch.
	Protected []string

	// DefaultBranch is the merge target. When empty, main then master is
	// tried against the remote.
	DefaultBranch string

	// DryRun reports what would be deleted without pushing deletes.
	DryRun bool
}

// Sweeper runs branch sweeps. It holds a RepoOpener so tests can inject
// a mock repository.
type Sweeper struct {
	opener gitops.RepoOpener
}

// New returns a Sweeper backed by real git repositories.
func New() *Sweeper {
	return NewWithOpener(gitops.DefaultOpener)
}

// NewWithOpener returns a Sweeper using the given opener.
func NewWithOpener(opener gitops.RepoOpener) *Sweeper {
	return &Sweeper{opener: opener}
}

// Sweep fetches remote state for the repository at path, finds remote
// branches merged into the default branch, and deletes the unprotected
// ones on the remote. The returned report lists every branch examined,
// sorted by name.
func (s *Sweeper) Sweep(ctx context.Context, path string, opts Options) (*Report, error) {
	remote := opts.Remote
	if remote == "" {
		remote = "origin"
	}

	report := &Report{
		RunID:    uuid.NewString(),
		RepoName: path,
		RepoPath: path,
		Remote:   remote,
	}

	repo, err := s.opener.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening repository %s: %w", path, err)
	}

	if err := fetch(ctx, repo, remote); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", remote, err)
	}

	defaultRef, defaultBranch, err := resolveDefaultBranch(repo, remote, opts.DefaultBranch)
	if err != nil {
		return nil, err
	}
	report.DefaultBranch = defaultBranch

	headCommit, err := repo.CommitObject(defaultRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("resolving %s head: %w", defaultBranch, err)
	}

	protected := protectedSet(defaultBranch, opts.Protected)

	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}

	prefix := "refs/remotes/" + remote + "/"
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := string(ref.Name())
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		branch := strings.TrimPrefix(name, prefix)
		if branch == "HEAD" || branch == defaultBranch {
			return nil
		}

		if protected[branch] {
			report.Branches = append(report.Branches, Branch{Name: branch, Action: ActionProtected})
			return nil
		}

		tip, err := repo.CommitObject(ref.Hash())
		if err != nil {
			// Refs that don't resolve to a commit are left alone.
			report.Branches = append(report.Branches, Branch{
				Name: branch, Action: ActionKept, Detail: err.Error(),
			})
			return nil
		}

		merged, err := tip.IsAncestor(headCommit)
		if err != nil {
			return fmt.Errorf("checking ancestry of %s: %w", branch, err)
		}
		if !merged {
			report.Branches = append(report.Branches, Branch{Name: branch, Action: ActionKept})
			return nil
		}

		if opts.DryRun {
			report.Branches = append(report.Branches, Branch{Name: branch, Action: ActionDryRun})
			return nil
		}

		if err := deleteRemoteBranch(ctx, repo, remote, branch); err != nil {
			report.Branches = append(report.Branches, Branch{
				Name: branch, Action: ActionFailed, Detail: err.Error(),
			})
			return nil
		}
		report.Branches = append(report.Branches, Branch{Name: branch, Action: ActionDeleted})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sort by branch name for deterministic output.
	sort.Slice(report.Branches, func(i, j int) bool {
		return report.Branches[i].Name < report.Branches[j].Name
	})

	return report, nil
}

// fetch updates remote-tracking refs. Already up-to-date is not an error.
func fetch(ctx context.Context, repo gitops.Repo, remote string) error {
	err := repo.FetchContext(ctx, &git.FetchOptions{RemoteName: remote})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}

// resolveDefaultBranch finds the remote-tracking ref of the merge target.
func resolveDefaultBranch(repo gitops.Repo, remote, configured string) (*plumbing.Reference, string, error) {
	candidates := defaultBranchCandidates
	if configured != "" {
		candidates = []string{configured}
	}
	for _, branch := range candidates {
		ref, err := repo.Reference(plumbing.NewRemoteReferenceName(remote, branch), true)
		if err == nil {
			return ref, branch, nil
		}
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, "", fmt.Errorf("resolving %s/%s: %w", remote, branch, err)
		}
	}
	return nil, "", fmt.Errorf("no default branch found on %s (tried %s)",
		remote, strings.Join(candidates, ", "))
}

// deleteRemoteBranch pushes an empty refspec to remove the branch on the
// remote.
func deleteRemoteBranch(ctx context.Context, repo gitops.Repo, remote, branch string) error {
	err := repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []gitcfg.RefSpec{gitcfg.RefSpec(":refs/heads/" + branch)},
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}

// protectedSet builds the protected branch lookup for a sweep.
func protectedSet(defaultBranch string, extra []string) map[string]bool {
	set := make(map[string]bool, len(alwaysProtected)+len(extra)+1)
	for name := range alwaysProtected {
		set[name] = true
	}
	set[defaultBranch] = true
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			set[name] = true
		}
	}
	return set
}
