package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cairn/internal/adapters/render"
)

func (c *CLI) newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the resolved dependency graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.components.App.Tree(cmd.Context(), options(cmd), cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringP("format", "f", render.FormatText, "Output format: text, dot, svg or json")
	return cmd
}
