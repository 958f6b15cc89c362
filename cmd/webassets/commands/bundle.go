package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBundleHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle-hash [module] [paths...]",
		Short: "Print version hashes of bundles",
		Long: "Print the bundle hash of each selected module. Without paths, " +
			"the module's default bundle is used.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, paths := splitModuleArgs(args)
			force, _ := cmd.Flags().GetBool("force-calculation")
			return c.app.BundleHashes(cmd.Context(), module, paths, force, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolP("force-calculation", "f", false, "Recompute hashes, bypassing the freeze cache")
	return cmd
}

func (c *CLI) newBundleURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bundle-url <module> [paths...]",
		Short: "Print the versioned URL of a bundle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, paths := splitModuleArgs(args)
			return c.app.BundleURL(cmd.Context(), module, paths, cmd.OutOrStdout())
		},
	}
}
