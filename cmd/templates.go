package cmd

import (
	"github.com/spf13/cobra"
)

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the named templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.cfg.TemplateNames() {
				pattern, _ := a.cfg.Template(name)
				label := name
				if name == a.cfg.DefaultTemplate {
					label += " (default)"
				}
				a.out.Result(label, pattern)
			}
			return nil
		},
	}
}
