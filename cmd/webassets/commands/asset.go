package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAssetHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asset-hash [module] [paths...]",
		Short: "Print version hashes of assets",
		Long: "Print the version hash of each selected asset, one per line. " +
			"Without arguments, all assets of all modules are listed.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, paths := splitModuleArgs(args)
			return c.app.AssetHashes(cmd.Context(), module, paths, cmd.OutOrStdout())
		},
	}
}

func (c *CLI) newAssetURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asset-url [module] [paths...]",
		Short: "Print versioned URLs of assets",
		Long: "Print the versioned URL of each selected asset, materializing " +
			"its cache entry as a side effect.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, paths := splitModuleArgs(args)
			return c.app.AssetURLs(cmd.Context(), module, paths, cmd.OutOrStdout())
		},
	}
}

// splitModuleArgs interprets positional arguments as an optional module name
// followed by asset paths.
func splitModuleArgs(args []string) (module string, paths []string) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}
