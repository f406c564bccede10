package cmd

import (
	"math"
	"strconv"
	"time"

	"github.com/hako/durafmt"
	"github.com/jparise/gh-chrono/internal/timefmt"
	"github.com/jparise/gh-chrono/internal/timeparse"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var tf templateFlags
	var human bool

	cmd := &cobra.Command{
		Use:   "parse <duration>...",
		Short: "Parse duration strings into milliseconds",
		Long: `Parse duration strings into milliseconds.

Each argument is a sequence of <number><unit> tokens. Units are matched
largest first (years, months, weeks, days, hours, minutes, seconds) and each
unit is read at most once. Text that does not form a token is ignored, so an
unrecognized string parses as 0.

Months are 30.41666667 days, weeks are 7.604166666666667 days (a quarter of
a month's average) and years are 365 days.`,
		Example: `  gh chrono parse 2h30m
  gh chrono parse "1y 3mo" -n long
  gh chrono parse --human 90061s`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tmpl *timefmt.Template
			if tf.set() {
				var err error
				if tmpl, err = tf.compile(a); err != nil {
					return err
				}
			}

			for _, arg := range args {
				ms := timeparse.ParseDuration(arg)
				if ms == 0 {
					a.log.Debug().Str("input", arg).Msg("no duration tokens recognized")
				}

				var value string
				switch {
				case tmpl != nil:
					value = tmpl.Format(ms)
				case human:
					value = durafmt.Parse(millisToDuration(ms)).String()
				default:
					value = strconv.FormatInt(ms, 10)
				}
				a.out.Result(arg, value)
			}
			return nil
		},
	}

	tf.register(cmd)
	cmd.Flags().BoolVar(&human, "human", false, "print a human-readable duration instead of milliseconds")
	cmd.MarkFlagsMutuallyExclusive("human", "template")
	cmd.MarkFlagsMutuallyExclusive("human", "name")
	cmd.MarkFlagsMutuallyExclusive("human", "template-file")
	return cmd
}

// millisToDuration converts ms to a time.Duration, clamping values that do
// not fit.
func millisToDuration(ms int64) time.Duration {
	const limit = math.MaxInt64 / int64(time.Millisecond)
	switch {
	case ms > limit:
		return math.MaxInt64
	case ms < -limit:
		return math.MinInt64
	default:
		return time.Duration(ms) * time.Millisecond
	}
}
