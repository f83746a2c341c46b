// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/tidyops/branchbroom/internal/inventory"
	"github.com/tidyops/branchbroom/internal/sweep"
)

// WriteSummary renders one sweep report as a branch table followed by a
// one-line tally.
func WriteSummary(w io.Writer, r *sweep.Report) error {
	if _, err := fmt.Fprintf(w, "%s (%s, default %s)\n", r.RepoName, r.Remote, r.DefaultBranch); err != nil {
		return err
	}
	if r.Err != "" {
		_, err := fmt.Fprintf(w, "  %s\n", colorRed.Sprintf("sweep failed: %s", r.Err))
		return err
	}
	if len(r.Branches) == 0 {
		_, err := fmt.Fprintln(w, "  no remote branches to examine")
		return err
	}

	table := NewTable(
		Column{Header: "BRANCH"},
		Column{Header: "ACTION", Color: ColorAction},
		Column{Header: "DETAIL"},
	)
	for _, b := range r.Branches {
		table.AddRow(b.Name, string(b.Action), b.Detail)
	}
	if err := table.Render(w); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "  %d deleted, %d would delete, %d protected, %d kept, %d failed\n",
		r.Count(sweep.ActionDeleted), r.Count(sweep.ActionDryRun),
		r.Count(sweep.ActionProtected), r.Count(sweep.ActionKept),
		r.Count(sweep.ActionFailed))
	return err
}

// WriteSummaries renders every report separated by blank lines.
func WriteSummaries(w io.Writer, reports []*sweep.Report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := WriteSummary(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteInventory renders a parsed inventory as a table.
func WriteInventory(w io.Writer, repos []inventory.Repo) error {
	table := NewTable(
		Column{Header: "NAME"},
		Column{Header: "PATH"},
		Column{Header: "REMOTE"},
		Column{Header: "PROTECTED"},
	)
	for _, r := range repos {
		table.AddRow(r.Name, r.Path, r.Remote, strings.Join(r.Protected, ";"))
	}
	return table.Render(w)
}
