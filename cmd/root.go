package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/gh-chrono/internal/config"
	"github.com/jparise/gh-chrono/internal/report"
	"github.com/jparise/gh-chrono/internal/timefmt"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

var _ pflag.Value = (*colorMode)(nil)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// nowFunc is replaced in tests.
	nowFunc = time.Now
)

// app carries the state shared by all subcommands. It is populated by the
// root command's PersistentPreRunE.
type app struct {
	fs afero.Fs

	// Flags.
	color      colorMode
	configPath string
	debug      bool
	bare       bool

	cfg *config.Config
	out *report.Output
	log zerolog.Logger
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, color: colorAuto}

	rootCmd := &cobra.Command{
		Use:   "gh-chrono",
		Short: "Convert between time expressions and milliseconds",
		Long: `gh-chrono converts between human-readable time expressions and
millisecond counts.

Durations are written as <number><unit> tokens in any order, e.g. "2h30m"
or "1y 3mo". Dates are written as M/D/Y or "M/D/Y H:Min:S" and read as UTC.

Templates contain %<pad><unit>% placeholders:
  %00h%          hours, at least two digits, followed by "h"
  %*0d%          days, omitted entirely when zero
  %0 minutes%    minutes, followed by " minutes"

Units: ms, t (ticks), s, m/min, h, d, w, mo, y and their long names.

Examples:
  gh chrono parse 2h30m "1y 3mo"
  gh chrono format -t "%00h%:%00m%:%00s%" 9030000
  gh chrono date "12/25/2024 13:00:00"
  gh chrono units "m*"
  gh chrono since --event created cli/cli`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Var(&a.color, "color", "colorize output: auto, always, never")
	flags.StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/gh-chrono/config.toml)")
	flags.BoolVar(&a.debug, "debug", false, "log diagnostics to stderr")
	flags.BoolVarP(&a.bare, "bare", "b", false, "print only result values")

	rootCmd.AddCommand(
		newFormatCmd(a),
		newParseCmd(a),
		newDateCmd(a),
		newUnitsCmd(a),
		newTemplatesCmd(a),
		newSinceCmd(a),
	)

	return rootCmd
}

// setup loads the config file and sets up output and logging.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	required := path != ""
	if !required {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			path = ""
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(a.fs, path, required); err != nil {
			return err
		}
	}
	a.cfg = cfg

	if !cmd.Flags().Changed("color") {
		if err := a.color.Set(cfg.Color); err != nil {
			return fmt.Errorf("invalid color in config: %w", err)
		}
	}

	var colorize bool
	switch a.color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		colorize = term.FromEnv().IsColorEnabled()
	}

	a.out = report.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), report.Options{
		Colorize:   colorize,
		Hyperlinks: colorize,
		Bare:       a.bare,
	})
	a.log = newLogger(cmd.ErrOrStderr(), a.debug, colorize)

	if a.cfg.Path() != "" {
		a.log.Debug().Str("path", a.cfg.Path()).Msg("loaded config")
	}

	return nil
}

func newLogger(w io.Writer, debug, colorize bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, NoColor: !colorize}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// templateFlags are the mutually exclusive ways to pick a template.
type templateFlags struct {
	pattern string
	name    string
	file    string
}

func (f *templateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.pattern, "template", "t", "", "template pattern, e.g. \"%00h%:%00m%\"")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "named template from the config file")
	cmd.Flags().StringVar(&f.file, "template-file", "", "read the template pattern from a file")
	cmd.MarkFlagsMutuallyExclusive("template", "name", "template-file")
}

// set reports whether any template flag was given.
func (f *templateFlags) set() bool {
	return f.pattern != "" || f.name != "" || f.file != ""
}

// compile resolves the selected template, falling back to the config's
// default template.
func (f *templateFlags) compile(a *app) (*timefmt.Template, error) {
	var pattern string
	switch {
	case f.pattern != "":
		pattern = f.pattern
	case f.file != "":
		var err error
		if pattern, err = config.ReadTemplateFile(a.fs, f.file); err != nil {
			return nil, err
		}
	default:
		name := f.name
		if name == "" {
			name = a.cfg.DefaultTemplate
		}
		var err error
		if pattern, err = a.cfg.Template(name); err != nil {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(a.cfg.TemplateNames(), ", "))
		}
	}

	tmpl := timefmt.Compile(pattern)
	if len(tmpl.Units()) == 0 {
		a.out.Warningf("template %q has no recognized placeholders", pattern)
	}
	a.log.Debug().Str("pattern", pattern).Stringers("units", unitStringers(tmpl)).Msg("compiled template")
	return tmpl, nil
}

func unitStringers(tmpl *timefmt.Template) []fmt.Stringer {
	units := tmpl.Units()
	out := make([]fmt.Stringer, len(units))
	for i, u := range units {
		out[i] = u
	}
	return out
}

// Execute runs the root command against the real filesystem.
func Execute() error {
	return newRootCmd(afero.NewOsFs()).Execute()
}
