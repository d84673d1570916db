// Package commands implements the CLI commands for the lantern launcher.
package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lanternmc/lantern/internal/adapters/detector"
	"github.com/lanternmc/lantern/internal/app"
	"github.com/lanternmc/lantern/internal/build"
	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/tui"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for lantern.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lantern",
		Short:         "A minimal Minecraft launcher",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("output", "o", "auto",
		"Progress output mode: auto, tui, linear")

	cli := &CLI{
		components: c,
		rootCmd:    rootCmd,
	}

	rootCmd.AddCommand(cli.newLaunchCmd())
	rootCmd.AddCommand(cli.newSyncCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// profile returns the loaded profile, with the version pin overridden when
// the command received an explicit version argument.
func (c *CLI) profile(args []string) *domain.Profile {
	p := c.components.Profile
	if len(args) > 0 {
		p.VersionID = args[0]
	}
	return p
}

// runTask runs fn, rendering sync progress in the TUI when the environment
// supports it. Telemetry is closed when fn returns so the progress stream
// ends and the TUI exits on its own.
func (c *CLI) runTask(cmd *cobra.Command, fn func(context.Context) error) error {
	outputFlag, _ := cmd.Flags().GetString("output")
	mode := detector.ResolveMode(detector.DetectEnvironment(), outputFlag)

	if mode != detector.ModeTUI || c.components.Progress == nil {
		defer c.closeTelemetry()
		return fn(cmd.Context())
	}

	model := tui.NewModel(c.components.Progress)
	program := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithOutput(os.Stderr),
	)

	errCh := make(chan error, 1)
	go func() {
		_, err := program.Run()
		errCh <- err
	}()

	taskErr := fn(cmd.Context())
	c.closeTelemetry()

	if err := <-errCh; err != nil && taskErr == nil {
		taskErr = err
	}
	return taskErr
}

func (c *CLI) closeTelemetry() {
	if c.components.Telemetry == nil {
		return
	}
	if err := c.components.Telemetry.Close(); err != nil {
		c.components.Logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
	}
}
