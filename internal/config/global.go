// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tidyops/branchbroom/internal/fsys"
)

// GlobalFileName is the file name of the global config, resolved under
// the user config directory (e.g. ~/.config/branchbroom/config.toml).
const GlobalFileName = "config.toml"

// Global represents the machine-wide config.toml. It carries the same
// knobs as the per-repository file at lower precedence.
type Global struct {
	Remote        string   `toml:"remote"`
	DefaultBranch string   `toml:"default_branch"`
	Protected     []string `toml:"protected"`
	DryRun        *bool    `toml:"dry_run"`
	Jobs          int      `toml:"jobs"`
	Inventory     string   `toml:"inventory"`
}

// GlobalPath returns the location of the global config file.
func GlobalPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "branchbroom", GlobalFileName), nil
}

// LoadGlobal reads the global config from path. A missing file yields a
// zero-value Global and nil error.
func LoadGlobal(fsim fsys.FileSystem, path string) (*Global, error) {
	data, err := fsim.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Global{}, nil
		}
		return nil, err
	}

	var g Global
	if err := toml.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}
