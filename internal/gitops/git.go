// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

// Package gitops abstracts the subset of go-git used by the sweeper.
// Production code uses the Real* implementations; tests inject mocks or
// operate on throwaway repositories.
package gitops

import (
	"context"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// RepoOpener abstracts opening a git repository.
type RepoOpener interface {
	PlainOpen(path string) (Repo, error)
}

// Repo abstracts the *git.Repository methods the sweeper needs. Keeping
// the interface minimal keeps the mocks small.
type Repo interface {
	Reference(name plumbing.ReferenceName, resolved bool) (*plumbing.Reference, error)
	References() (storer.ReferenceIter, error)
	CommitObject(h plumbing.Hash) (*object.Commit, error)
	FetchContext(ctx context.Context, o *git.FetchOptions) error
	PushContext(ctx context.Context, o *git.PushOptions) error
}

// RealRepoOpener is the production implementation of RepoOpener.
// It delegates to git.PlainOpen.
type RealRepoOpener struct{}

// PlainOpen opens the git repository at path.
func (RealRepoOpener) PlainOpen(path string) (Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, err
	}
	return &RealRepo{repo: repo}, nil
}

// RealRepo wraps *git.Repository to satisfy Repo.
type RealRepo struct {
	repo *git.Repository
}

// Reference returns the reference for the given name, optionally resolving
// symbolic references.
func (r *RealRepo) Reference(name plumbing.ReferenceName, resolved bool) (*plumbing.Reference, error) {
	return r.repo.Reference(name, resolved)
}

// References returns an unsorted ReferenceIter for all references.
func (r *RealRepo) References() (storer.ReferenceIter, error) {
	return r.repo.References()
}

// CommitObject returns the commit with the given hash.
func (r *RealRepo) CommitObject(h plumbing.Hash) (*object.Commit, error) {
	return r.repo.CommitObject(h)
}

// FetchContext fetches references and objects from a remote.
func (r *RealRepo) FetchContext(ctx context.Context, o *git.FetchOptions) error {
	return r.repo.FetchContext(ctx, o)
}

// PushContext pushes references to a remote.
func (r *RealRepo) PushContext(ctx context.Context, o *git.PushOptions) error {
	return r.repo.PushContext(ctx, o)
}

// DefaultOpener is the production RepoOpener used as default.
var DefaultOpener RepoOpener = RealRepoOpener{}

// Compile-time interface checks.
var _ RepoOpener = RealRepoOpener{}
var _ Repo = (*RealRepo)(nil)
