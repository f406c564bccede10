package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jparise/gh-chrono/internal/github"
	"github.com/jparise/gh-chrono/internal/since"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xhit/go-str2duration/v2"
)

// ttlValue is a duration flag that also accepts days and weeks, e.g. "7d".
type ttlValue time.Duration

var _ pflag.Value = (*ttlValue)(nil)

func (v *ttlValue) String() string {
	return time.Duration(*v).String()
}

func (v *ttlValue) Set(s string) error {
	d, err := str2duration.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %q", s)
	}
	*v = ttlValue(d)
	return nil
}

func (v *ttlValue) Type() string {
	return "duration"
}

func newSinceCmd(a *app) *cobra.Command {
	var (
		tf       templateFlags
		event    string
		forks    bool
		archived bool
		noCache  bool
		cacheDir string
		jobs     int
	)
	cacheTTL := ttlValue(time.Hour)

	cmd := &cobra.Command{
		Use:   "since <repository>...",
		Short: "Show how long ago repositories were pushed, created or updated",
		Long: `Show how long ago repositories were pushed, created or updated.

<repository> can be:
  <owner>        All repositories for a user or organization
  <owner>/<repo> A specific repository

The elapsed time is rendered with a template (see "gh chrono templates").`,
		Example: `  gh chrono since cli/cli
  gh chrono since --event created -n long cli/cli cli/go-gh
  gh chrono since --forks -t "%0d% days" octocat`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("jobs") {
				jobs = a.cfg.Jobs
			}
			if jobs < 1 || jobs > 100 {
				return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
			}
			if _, err := github.ParseEvent(event); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			tmpl, err := tf.compile(a)
			if err != nil {
				return err
			}

			opts := &since.Options{
				RepoSpecs: args,
				Event:     github.Event(event),
				Template:  tmpl,
				List: github.ListOptions{
					Forks:    forks,
					Archived: archived,
				},
				ClientOpts: github.ClientOptions{
					DisableCache: noCache,
					CacheDir:     cacheDir,
					CacheTTL:     time.Duration(cacheTTL),
				},
				Jobs: jobs,
				Now:  nowFunc,
			}

			return since.New(a.out, a.log).Run(ctx, opts)
		},
	}

	tf.register(cmd)
	cmd.Flags().StringVar(&event, "event", string(github.EventPushed),
		"repository event: created, pushed, updated")
	cmd.Flags().BoolVar(&forks, "forks", false,
		"include forks when listing an owner's repositories")
	cmd.Flags().BoolVar(&archived, "archived", false,
		"include archived repositories when listing an owner's repositories")
	cmd.Flags().BoolVar(&noCache, "no-cache", false,
		"bypass cache, always fetch fresh data")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "",
		"override cache directory location")
	cmd.Flags().Var(&cacheTTL, "cache-ttl",
		"cache time-to-live (e.g., 1h, 30m, 7d)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum concurrent API requests")

	return cmd
}
