package since

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jparise/gh-chrono/internal/github"
	"github.com/jparise/gh-chrono/internal/report"
	"github.com/jparise/gh-chrono/internal/timefmt"
	"github.com/rs/zerolog"
	"gopkg.in/h2non/gock.v1"
)

func TestMain(m *testing.M) {
	gock.DisableNetworking()
	os.Exit(m.Run())
}

var fixedNow = time.Date(2024, 1, 3, 4, 5, 6, 0, time.UTC)

func newOptions(specs ...string) *Options {
	return &Options{
		RepoSpecs:  specs,
		Event:      github.EventPushed,
		Template:   timefmt.Compile("%*0d%%00h%:%00m%"),
		ClientOpts: github.ClientOptions{AuthToken: "fake-token", DisableCache: true},
		Jobs:       4,
		Now:        func() time.Time { return fixedNow },
	}
}

func TestRun(t *testing.T) {
	t.Cleanup(gock.Off)

	gock.New("https://api.github.com").
		Get("/repos/cli/cli").
		Reply(200).
		JSON(`{"name": "cli", "full_name": "cli/cli", "pushed_at": "2024-01-03T02:05:06Z"}`)
	gock.New("https://api.github.com").
		Get("/users/octocat").
		Reply(200).
		JSON(`{"type": "User"}`)
	gock.New("https://api.github.com").
		Get("/users/octocat/repos").
		Reply(200).
		JSON(`[{"name": "hello", "full_name": "octocat/hello", "pushed_at": "2024-01-01T04:05:06Z"},
			{"name": "spoon", "full_name": "octocat/spoon", "fork": true, "pushed_at": "2024-01-01T04:05:06Z"},
			{"name": "empty", "full_name": "octocat/empty"}]`)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	s := New(report.NewOutput(stdout, stderr, report.Options{}), zerolog.Nop())

	if err := s.Run(context.Background(), newOptions("cli/cli", "octocat")); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := "cli/cli\t02h:00m\n" +
		"octocat/hello\t2d00h:00m\n" +
		"octocat/empty\tnever\n"
	if got := stdout.String(); got != want {
		t.Errorf("Run() output = %q, want %q", got, want)
	}
	if stderr.Len() != 0 {
		t.Errorf("Run() wrote to stderr: %q", stderr.String())
	}
}

func TestRunPartialFailure(t *testing.T) {
	t.Cleanup(gock.Off)

	gock.New("https://api.github.com").
		Get("/repos/cli/cli").
		Reply(200).
		JSON(`{"name": "cli", "full_name": "cli/cli", "pushed_at": "2024-01-03T04:04:06Z"}`)
	gock.New("https://api.github.com").
		Get("/repos/cli/missing").
		Reply(404).
		JSON(`{"message": "Not Found"}`)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	s := New(report.NewOutput(stdout, stderr, report.Options{}), zerolog.Nop())

	if err := s.Run(context.Background(), newOptions("cli/missing", "cli/cli")); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if got, want := stdout.String(), "cli/cli\t00h:01m\n"; got != want {
		t.Errorf("Run() output = %q, want %q", got, want)
	}
	if !strings.Contains(stderr.String(), "Warning: cli/missing:") {
		t.Errorf("Run() stderr = %q, want a warning for cli/missing", stderr.String())
	}
}

func TestRunAllFail(t *testing.T) {
	t.Cleanup(gock.Off)

	gock.New("https://api.github.com").
		Get("/repos/cli/missing").
		Reply(404).
		JSON(`{"message": "Not Found"}`)

	s := New(report.NewOutput(&bytes.Buffer{}, &bytes.Buffer{}, report.Options{}), zerolog.Nop())

	if err := s.Run(context.Background(), newOptions("cli/missing")); err == nil {
		t.Error("Run() expected error when every spec fails")
	}
}

func TestRunInvalidSpec(t *testing.T) {
	s := New(report.NewOutput(&bytes.Buffer{}, &bytes.Buffer{}, report.Options{}), zerolog.Nop())

	if err := s.Run(context.Background(), newOptions("a/b/c")); err == nil {
		t.Error("Run() expected error for invalid spec")
	}
}

func TestParseRepoSpec(t *testing.T) {
	tests := []struct {
		spec      string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"cli", "cli", "", false},
		{"cli/cli", "cli", "cli", false},
		{"", "", "", true},
		{"cli/", "", "", true},
		{"/cli", "", "", true},
		{"a/b/c", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			owner, repo, err := parseRepoSpec(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRepoSpec(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("parseRepoSpec(%q) = %q, %q, want %q, %q", tt.spec, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}
