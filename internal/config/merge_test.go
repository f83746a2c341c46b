// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_RepoOverridesGlobal(t *testing.T) {
	globalDry := true
	repoDry := false

	global := &Global{
		Remote:        "origin",
		DefaultBranch: "main",
		Protected:     []string{"main"},
		DryRun:        &globalDry,
		Jobs:          4,
	}
	repo := &Config{
		Remote:    "upstream",
		Protected: []string{"develop"},
		DryRun:    &repoDry,
	}

	out := Merge(global, repo)
	assert.Equal(t, "upstream", out.Remote)
	assert.Equal(t, "main", out.DefaultBranch, "unset repo field keeps global value")
	assert.Equal(t, []string{"main", "develop"}, out.Protected, "protected lists accumulate")
	require.NotNil(t, out.DryRun)
	assert.False(t, *out.DryRun)
	assert.Equal(t, 4, out.Jobs)
}

func TestMerge_NilInputs(t *testing.T) {
	assert.Equal(t, &Config{}, Merge(nil, nil))

	out := Merge(nil, &Config{Remote: "upstream"})
	assert.Equal(t, "upstream", out.Remote)

	out = Merge(&Global{Jobs: 2}, nil)
	assert.Equal(t, 2, out.Jobs)
}

func TestMerge_DoesNotAliasGlobalSlices(t *testing.T) {
	global := &Global{Protected: []string{"main"}}
	out := Merge(global, &Config{Protected: []string{"develop"}})

	out.Protected[0] = "changed"
	assert.Equal(t, "main", global.Protected[0])
}
