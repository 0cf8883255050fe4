package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cairn/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve dependencies and print them in build order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.components.App.Resolve(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}
			return printOrder(cmd.OutOrStdout(), res)
		},
	}
}

func (c *CLI) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Re-resolve dependencies ignoring the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.components.App.Update(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}
			return printOrder(cmd.OutOrStdout(), res)
		},
	}
}

func printOrder(w io.Writer, res *app.Result) error {
	for _, p := range res.Order {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", p.Name(), p.ID.Version, p.ID.Source); err != nil {
			return err
		}
	}
	return nil
}
