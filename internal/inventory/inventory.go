// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

// Package inventory loads the CSV repository inventory that drives
// multi-repository sweeps. All file access goes through fsys.FileSystem,
// so the importer is testable without touching disk.
package inventory

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidyops/branchbroom/internal/fsys"
)

// Repo is one repository entry in the inventory.
type Repo struct {
	// Name is a display label. Defaults to the base of Path.
	Name string

	// Path is the local path of the repository clone.
	Path string

	// Remote is the remote to sweep. Defaults to "origin".
	Remote string

	// Protected lists branch names that must never be deleted, in
	// addition to the globally protected set.
	Protected []string
}

// Importer reads inventory files. It holds exactly one FileSystem
// reference; the caller owns the implementation's lifetime.
type Importer struct {
	fs fsys.FileSystem
}

// NewImporter returns an Importer backed by the production file system.
func NewImporter() *Importer {
	return NewImporterFS(fsys.DefaultFS)
}

// NewImporterFS returns an Importer backed by the given FileSystem.
func NewImporterFS(fs fsys.FileSystem) *Importer {
	return &Importer{fs: fs}
}

// Load reads and parses the inventory at path. Each non-blank,
// non-comment line is one CSV record: name,path,remote,protected where
// protected is a semicolon-joined branch list. Only path is mandatory.
// File errors propagate unmodified; malformed records fail with their
// line number.
func (im *Importer) Load(path string) ([]Repo, error) {
	lines, err := im.fs.ReadLines(path)
	if err != nil {
		return nil, err
	}

	var repos []Repo
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		repo, err := parseRecord(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// parseRecord parses a single CSV inventory line into a Repo.
func parseRecord(line string) (Repo, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	fields, err := r.Read()
	if err != nil {
		return Repo{}, fmt.Errorf("parsing record: %w", err)
	}
	if len(fields) > 4 {
		return Repo{}, fmt.Errorf("too many fields (got %d, want at most 4)", len(fields))
	}

	repo := Repo{Name: field(fields, 0), Path: field(fields, 1), Remote: field(fields, 2)}

	// Single-field records are a bare path.
	if len(fields) == 1 {
		repo.Name, repo.Path = "", repo.Name
	}
	if repo.Path == "" {
		return Repo{}, fmt.Errorf("missing repository path")
	}
	if repo.Name == "" {
		repo.Name = filepath.Base(repo.Path)
	}
	if repo.Remote == "" {
		repo.Remote = "origin"
	}
	if protected := field(fields, 3); protected != "" {
		for _, b := range strings.Split(protected, ";") {
			if b = strings.TrimSpace(b); b != "" {
				repo.Protected = append(repo.Protected, b)
			}
		}
	}
	return repo, nil
}

// field returns fields[i] trimmed, or "" when out of range.
func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}
