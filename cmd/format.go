package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	var tf templateFlags

	cmd := &cobra.Command{
		Use:   "format <millis>...",
		Short: "Format millisecond values with a template",
		Example: `  gh chrono format 9030000
  gh chrono format -t "%*00h%:%00m%" 90000
  gh chrono format -n long 123456789`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int64, len(args))
			for i, arg := range args {
				ms, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid millisecond value %q: %w", arg, err)
				}
				values[i] = ms
			}

			tmpl, err := tf.compile(a)
			if err != nil {
				return err
			}

			for i, ms := range values {
				a.out.Result(args[i], tmpl.Format(ms))
			}
			return nil
		},
	}

	tf.register(cmd)
	return cmd
}
