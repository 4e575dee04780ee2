package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitgrid/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, build info, repository URL, and contributors.`,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print a single line")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if versionShort {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), app.BuildInfo.String())
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
	return err
}
