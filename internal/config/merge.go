// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package config

// Merge layers the per-repository config over the global one and returns
// the effective Config. Command-line flags are applied on top by the
// caller, so precedence is flags > repo YAML > global TOML.
func Merge(global *Global, repo *Config) *Config {
	out := &Config{}
	if global != nil {
		out.Remote = global.Remote
		out.DefaultBranch = global.DefaultBranch
		out.Protected = append([]string(nil), global.Protected...)
		out.DryRun = global.DryRun
		out.Jobs = global.Jobs
		out.Inventory = global.Inventory
	}
	if repo == nil {
		return out
	}
	if repo.Remote != "" {
		out.Remote = repo.Remote
	}
	if repo.DefaultBranch != "" {
		out.DefaultBranch = repo.DefaultBranch
	}
	// Protected lists accumulate rather than shadow: a repo can only add
	// protection, never strip the global set.
	out.Protected = append(out.Protected, repo.Protected...)
	if repo.DryRun != nil {
		out.DryRun = repo.DryRun
	}
	if repo.Jobs != 0 {
		out.Jobs = repo.Jobs
	}
	if repo.Inventory != "" {
		out.Inventory = repo.Inventory
	}
	return out
}
