package since

import (
	"time"

	"github.com/jparise/gh-chrono/internal/github"
	"github.com/jparise/gh-chrono/internal/timefmt"
)

// Options contains all lookup parameters.
type Options struct {
	RepoSpecs  []string // "owner" or "owner/repo"
	Event      github.Event
	Template   *timefmt.Template
	List       github.ListOptions // Applied when a spec names only an owner
	ClientOpts github.ClientOptions
	Jobs       int              // Maximum concurrent API requests
	Now        func() time.Time // Defaults to time.Now
}
