package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [version]",
		Short: "Synchronize the configured version without starting the game",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTask(cmd, func(ctx context.Context) error {
				return c.components.App.Sync(ctx, c.profile(args))
			})
		},
	}
}
