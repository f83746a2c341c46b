// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

// Package config handles branchbroom configuration: a per-repository
// .branchbroom.yaml and a global config.toml, merged under the
// command-line flags. All file access goes through fsys.FileSystem.
package config

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tidyops/branchbroom/internal/fsys"
)

// FileName is the expected per-repository config file name.
const FileName = ".branchbroom.yaml"

// Config represents the contents of a .branchbroom.yaml file. The DryRun
// pointer distinguishes "unset" from an explicit false during merging.
type Config struct {
	Remote        string   `yaml:"remote,omitempty"`
	DefaultBranch string   `yaml:"default_branch,omitempty"`
	Protected     []string `yaml:"protected,omitempty"`
	DryRun        *bool    `yaml:"dry_run,omitempty"`
	Jobs          int      `yaml:"jobs,omitempty"`
	Inventory     string   `yaml:"inventory,omitempty"`
}

// Load reads the .branchbroom.yaml file from the given repository root.
// If the file does not exist, it returns a zero-value Config and nil error.
func Load(fsim fsys.FileSystem, repoPath string) (*Config, error) {
	path := filepath.Join(repoPath, FileName)
	data, err := fsim.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
