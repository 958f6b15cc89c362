package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRequestResponseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-response <url>",
		Short: "Run one request through the responder",
		Long: "Resolve a request path against the configured modules and print " +
			"the resulting response: status, headers and body.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, _ := cmd.Flags().GetStringArray("header")
			return c.app.RequestResponse(cmd.Context(), args[0], headers, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringArrayP("header", "H", nil, "Request header in 'Name: value' form (repeatable)")
	return cmd
}
