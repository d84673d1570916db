package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func (c *CLI) newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch [version]",
		Short: "Synchronize the configured version and start the game",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTask(cmd, func(ctx context.Context) error {
				return c.components.App.Launch(ctx, c.profile(args))
			})
		},
	}
}
