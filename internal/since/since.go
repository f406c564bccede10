// Package since reports how long ago repository events happened.
package since

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jparise/gh-chrono/internal/github"
	"github.com/jparise/gh-chrono/internal/report"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// Since orchestrates the repository lookups.
type Since struct {
	output *report.Output
	log    zerolog.Logger
}

// New creates a new Since.
func New(output *report.Output, log zerolog.Logger) *Since {
	return &Since{
		output: output,
		log:    log,
	}
}

// result holds the repositories resolved for one spec.
type result struct {
	repos []github.Repository
	err   error
}

// Run resolves every spec concurrently and writes the elapsed time for each
// repository, in the order the specs were given.
func (s *Since) Run(ctx context.Context, opts *Options) error {
	client, err := github.NewClient(opts.ClientOpts)
	if err != nil {
		return err
	}

	type target struct {
		owner, repo string
	}
	targets := make([]target, len(opts.RepoSpecs))
	for i, spec := range opts.RepoSpecs {
		owner, repo, err := parseRepoSpec(spec)
		if err != nil {
			return err
		}
		targets[i] = target{owner, repo}
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([]result, len(targets))
	var wg sync.WaitGroup
	var errorCount atomic.Int32
	sem := semaphore.NewWeighted(int64(jobs))

	for i, t := range targets {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			s.log.Debug().Str("owner", t.owner).Str("repo", t.repo).Msg("fetching")
			if t.repo != "" {
				r, err := client.GetRepo(ctx, t.owner, t.repo)
				results[i] = result{repos: []github.Repository{r}, err: err}
			} else {
				repos, err := client.ListRepos(ctx, t.owner, opts.List)
				results[i] = result{repos: repos, err: err}
			}
			if results[i].err != nil {
				errorCount.Add(1)
			}
		}()
	}

	wg.Wait()

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	at := now()

	seen := make(map[string]bool)
	for i, r := range results {
		if r.err != nil {
			s.output.Warningf("%s: %v", opts.RepoSpecs[i], r.err)
			continue
		}
		for _, repo := range r.repos {
			if seen[repo.FullName] {
				continue
			}
			seen[repo.FullName] = true
			s.output.RepoResult(repo.FullName, s.elapsed(repo, opts, at))
		}
	}

	if len(targets) > 0 && int(errorCount.Load()) == len(targets) {
		return fmt.Errorf("failed to look up all %d repository specs", len(targets))
	}

	return nil
}

// elapsed formats the time between the repository event and at.
func (s *Since) elapsed(repo github.Repository, opts *Options, at time.Time) string {
	ts := repo.Timestamp(opts.Event)
	if ts.IsZero() {
		return "never"
	}
	ms := at.Sub(ts).Milliseconds()
	s.log.Debug().Str("repo", repo.FullName).Time(string(opts.Event), ts).Int64("ms", ms).Msg("elapsed")
	return opts.Template.Format(ms)
}

// parseRepoSpec parses "owner" or "owner/repo" format.
func parseRepoSpec(spec string) (owner, repo string, err error) {
	parts := strings.Split(spec, "/")
	switch {
	case len(parts) == 1 && parts[0] != "":
		return parts[0], "", nil
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("invalid repo spec: %q (expected owner or owner/repo)", spec)
	}
}
