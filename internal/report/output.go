// Package report writes gh-chrono results and diagnostics to the terminal.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/mgutz/ansi"
)

// Output handles all output formatting with optional color and hyperlink support.
type Output struct {
	mu         sync.Mutex
	stdout     io.Writer
	stderr     io.Writer
	hostname   string
	hyperlinks bool
	bare       bool

	cyan   func(string) string
	green  func(string) string
	yellow func(string) string
	red    func(string) string
}

// Options configures an Output.
type Options struct {
	Colorize   bool
	Hyperlinks bool
	// Bare prints only result values, one per line, for use in scripts.
	Bare bool
}

// NewOutput creates a new Output.
func NewOutput(stdout, stderr io.Writer, opts Options) *Output {
	hostname, _ := auth.DefaultHost()

	color := func(name string) func(string) string {
		if opts.Colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout:     stdout,
		stderr:     stderr,
		hostname:   hostname,
		hyperlinks: opts.Hyperlinks,
		bare:       opts.Bare,
		cyan:       color("cyan"),
		green:      color("green+b"),
		yellow:     color("yellow"),
		red:        color("red+b"),
	}
}

func makeHyperlink(url, text string) string {
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// Result writes a converted value in the format: input<TAB>value.
func (o *Output) Result(input, value string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.bare {
		fmt.Fprintln(o.stdout, value)
		return
	}
	fmt.Fprintf(o.stdout, "%s\t%s\n", o.cyan(input), o.green(value))
}

// RepoResult writes a value computed for a repository, linking the
// repository name when hyperlinks are enabled.
func (o *Output) RepoResult(fullName, value string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.bare {
		fmt.Fprintln(o.stdout, value)
		return
	}

	name := o.cyan(fullName)
	if o.hyperlinks {
		name = makeHyperlink(fmt.Sprintf("https://%s/%s", o.hostname, fullName), name)
	}
	fmt.Fprintf(o.stdout, "%s\t%s\n", name, o.green(value))
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Errorf writes a formatted error message to stderr.
func (o *Output) Errorf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.red("Error: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}
