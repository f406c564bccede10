package cmd

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jparise/gh-chrono/internal/timeunit"
	"github.com/spf13/cobra"
)

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units [<pattern>]",
		Short: "List the known time units",
		Long: `List the known time units with their size in milliseconds and aliases.

<pattern> is a case-insensitive glob matched against each unit's name and
aliases, e.g. "m*" or "{h,d}".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := "*"
			if len(args) == 1 {
				pattern = args[0]
			}

			units, err := filterUnits(timeunit.Ordered(false), pattern)
			if err != nil {
				return err
			}
			if len(units) == 0 {
				a.out.Warningf("No units match %q", pattern)
				return nil
			}

			for _, u := range units {
				a.out.Result(u.Name(), fmt.Sprintf("%d ms (%s)", u.Millis(), strings.Join(u.Aliases(), ", ")))
			}
			return nil
		},
	}
}

// filterUnits returns the units whose name or any alias matches pattern.
func filterUnits(units []timeunit.Unit, pattern string) ([]timeunit.Unit, error) {
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var matched []timeunit.Unit
	for _, u := range units {
		for _, name := range append([]string{u.Name()}, u.Aliases()...) {
			if ok, _ := doublestar.Match(pattern, name); ok {
				matched = append(matched, u)
				break
			}
		}
	}
	return matched, nil
}
