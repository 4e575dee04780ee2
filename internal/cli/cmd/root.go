// Package cmd provides Cobra CLI commands for splitgrid.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/splitgrid/internal/cli"
	"github.com/bnema/splitgrid/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "splitgrid",
		Short: "A recursive split-pane layout for the terminal",
		Long: `splitgrid - panes that split like a tiling window manager.

Every pane can be split right, left, down or up. Panes are resized by
dragging the border between them, zoomed to fill the screen, and moved
around with the keyboard. The layout is saved as it changes and comes
back the next time the workspace is opened.

Use 'splitgrid run' to open a workspace, or explore the subcommands to
inspect saved layouts and configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "__complete":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
