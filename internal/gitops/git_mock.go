// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package gitops

import (
	"context"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// MockRepoOpener is a test double for RepoOpener.
// Set OpenFunc to control PlainOpen behavior. If nil, PlainOpen returns
// the Repo field (or ErrRepositoryNotExists if Repo is nil).
type MockRepoOpener struct {
	// Repo is the repository returned by PlainOpen when OpenFunc is nil.
	Repo Repo

	// OpenErr is the error returned by PlainOpen when OpenFunc is nil.
	OpenErr error

	// OpenFunc, if set, is called instead of using Repo/OpenErr.
	OpenFunc func(path string) (Repo, error)

	// OpenCalls records the paths passed to PlainOpen.
	OpenCalls []string
}

// PlainOpen records the call and delegates to OpenFunc or returns Repo/OpenErr.
func (m *MockRepoOpener) PlainOpen(path string) (Repo, error) {
	m.OpenCalls = append(m.OpenCalls, path)
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if m.Repo != nil {
		return m.Repo, nil
	}
	return nil, git.ErrRepositoryNotExists
}

// MockRepo is a test double for Repo. Each method has a corresponding
// field for the return value and error.
type MockRepo struct {
	// Refs maps reference names to references for Reference().
	Refs map[plumbing.ReferenceName]*plumbing.Reference

	// ReferencesIter is returned by References().
	ReferencesIter storer.ReferenceIter
	// ReferencesErr is the error returned by References().
	ReferencesErr error

	// CommitObjects maps hashes to commits for CommitObject().
	CommitObjects map[plumbing.Hash]*object.Commit
	// CommitObjectErr is returned by CommitObject() when the hash is not
	// found in CommitObjects.
	CommitObjectErr error

	// FetchErr is returned by FetchContext().
	FetchErr error
	// FetchCalls records FetchOptions passed to FetchContext().
	FetchCalls []*git.FetchOptions

	// PushErr is returned by PushContext().
	PushErr error
	// PushCalls records PushOptions passed to PushContext().
	PushCalls []*git.PushOptions
}

// Reference looks up name in Refs.
func (m *MockRepo) Reference(name plumbing.ReferenceName, _ bool) (*plumbing.Reference, error) {
	if ref, ok := m.Refs[name]; ok {
		return ref, nil
	}
	return nil, plumbing.ErrReferenceNotFound
}

// References returns ReferencesIter/ReferencesErr.
func (m *MockRepo) References() (storer.ReferenceIter, error) {
	if m.ReferencesErr != nil {
		return nil, m.ReferencesErr
	}
	return m.ReferencesIter, nil
}

// CommitObject looks up h in CommitObjects.
func (m *MockRepo) CommitObject(h plumbing.Hash) (*object.Commit, error) {
	if c, ok := m.CommitObjects[h]; ok {
		return c, nil
	}
	if m.CommitObjectErr != nil {
		return nil, m.CommitObjectErr
	}
	return nil, plumbing.ErrObjectNotFound
}

// FetchContext records the call and returns FetchErr.
func (m *MockRepo) FetchContext(_ context.Context, o *git.FetchOptions) error {
	m.FetchCalls = append(m.FetchCalls, o)
	return m.FetchErr
}

// PushContext records the call and returns PushErr.
func (m *MockRepo) PushContext(_ context.Context, o *git.PushOptions) error {
	m.PushCalls = append(m.PushCalls, o)
	return m.PushErr
}

// Compile-time interface checks.
var _ RepoOpener = (*MockRepoOpener)(nil)
var _ Repo = (*MockRepo)(nil)
