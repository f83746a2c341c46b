// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidyops/branchbroom/internal/inventory"
)

func TestSweepAll_MixedResults(t *testing.T) {
	f := newFixture(t)

	repos := []inventory.Repo{
		{Name: "good", Path: f.workDir},
		{Name: "broken", Path: t.TempDir()}, // not a git repository
	}

	reports, err := New().SweepAll(context.Background(), repos, Options{DryRun: true}, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Sorted by repo name: broken before good.
	assert.Equal(t, "broken", reports[0].RepoName)
	assert.True(t, reports[0].Failed())
	assert.NotEmpty(t, reports[0].Err)

	assert.Equal(t, "good", reports[1].RepoName)
	assert.False(t, reports[1].Failed())
	assert.Equal(t, ActionDryRun, branchAction(t, reports[1], "merged-feature"))
}

func TestSweepAll_PerRepoProtectedMerges(t *testing.T) {
	f := newFixture(t)

	repos := []inventory.Repo{
		{Name: "repo", Path: f.workDir, Protected: []string{"merged-feature"}},
	}

	reports, err := New().SweepAll(context.Background(), repos, Options{}, 1)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, ActionProtected, branchAction(t, reports[0], "merged-feature"))
	assert.True(t, f.remoteHasBranch(t, "merged-feature"))
}

func TestSweepAll_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repos := []inventory.Repo{{Name: "r", Path: t.TempDir()}}
	_, err := New().SweepAll(ctx, repos, Options{}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweepAll_Empty(t *testing.T) {
	reports, err := New().SweepAll(context.Background(), nil, Options{}, 0)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
