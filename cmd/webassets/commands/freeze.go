package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFreezeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "freeze",
		Short: "Print a fingerprint over all default bundles",
		Long: "Compute a single fingerprint over the default bundle of every " +
			"configured module. The value changes whenever any asset changes.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Freeze(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
