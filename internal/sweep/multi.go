// Copyright 2026 The Branchbroom Authors
// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tidyops/branchbroom/internal/inventory"
)

// defaultJobs bounds concurrent repository sweeps when the caller does
// not specify a limit.
const defaultJobs = 4

// SweepAll sweeps every repository in the inventory, at most jobs at a
// time. One repository's failure does not abort the others; it is
// recorded in that repository's report. The returned reports are sorted
// by repository name. The only error returned is context cancellation.
func (s *Sweeper) SweepAll(ctx context.Context, repos []inventory.Repo, opts Options, jobs int) ([]*Report, error) {
	if jobs <= 0 {
		jobs = defaultJobs
	}

	reports := make([]*Report, len(repos))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			repoOpts := opts
			if repo.Remote != "" {
				repoOpts.Remote = repo.Remote
			}
			repoOpts.Protected = append(append([]string(nil), opts.Protected...), repo.Protected...)

			report, err := s.Sweep(ctx, repo.Path, repoOpts)
			if err != nil {
				report = &Report{
					RepoName: repo.Name,
					RepoPath: repo.Path,
					Remote:   repoOpts.Remote,
					Err:      err.Error(),
				}
			} else {
				report.RepoName = repo.Name
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].RepoName < reports[j].RepoName
	})
	return reports, nil
}
