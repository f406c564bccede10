package cmd

import (
	"errors"
	"strconv"

	"github.com/jparise/gh-chrono/internal/timefmt"
	"github.com/jparise/gh-chrono/internal/timeparse"
	"github.com/spf13/cobra"
)

func newDateCmd(a *app) *cobra.Command {
	var tf templateFlags
	var strict, iso, elapsed bool

	cmd := &cobra.Command{
		Use:   "date <date>...",
		Short: "Parse dates into epoch milliseconds",
		Long: `Parse dates into epoch milliseconds.

Dates are written as M/D/Y or "M/D/Y H:Min:S" and are read as UTC. A date
with a non-numeric field has no result and is reported as a warning; use
--strict to treat it as an error instead. Dates with fewer than three
fields, or impossible calendar dates such as 2/30/2024, are always errors.`,
		Example: `  gh chrono date "12/25/2024 13:00:00"
  gh chrono date --iso 2024-12-25T13:00:00+01:00
  gh chrono date --elapsed -n long 1/1/2000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tf.set() && !elapsed {
				return errors.New("template flags require --elapsed")
			}

			var tmpl *timefmt.Template
			if elapsed {
				var err error
				if tmpl, err = tf.compile(a); err != nil {
					return err
				}
			}
			now := nowFunc()

			for _, arg := range args {
				var ms int64
				switch {
				case iso:
					t, err := timeparse.ParseTime(arg)
					if err != nil {
						return err
					}
					ms = t.UnixMilli()
				case strict:
					var err error
					if ms, err = timeparse.ParseDateStrict(arg); err != nil {
						return err
					}
				default:
					var ok bool
					var err error
					ms, ok, err = timeparse.ParseDate(arg)
					if err != nil {
						return err
					}
					if !ok {
						a.out.Warningf("%q has no result: non-numeric field", arg)
						continue
					}
				}

				if tmpl != nil {
					a.out.Result(arg, tmpl.Format(now.UnixMilli()-ms))
				} else {
					a.out.Result(arg, strconv.FormatInt(ms, 10))
				}
			}
			return nil
		},
	}

	tf.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "treat non-numeric fields as errors")
	cmd.Flags().BoolVar(&iso, "iso", false, "also accept YYYY-MM-DD, YYYY-MM-DD HH:MM:SS and RFC3339")
	cmd.Flags().BoolVar(&elapsed, "elapsed", false, "print the time elapsed since each date using a template")
	return cmd
}
