package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitgrid/internal/cli/styles"
	"github.com/bnema/splitgrid/internal/config"
)

var configSchemaStdout bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where splitgrid keeps its files and regenerate the config JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, schema, database and log paths",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the config JSON schema",
	Long: `Write the JSON schema of config.toml next to it so editors can
validate and complete the file. Use --stdout to print it instead.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&configSchemaStdout, "stdout", false, "print the schema instead of writing it")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}
	if app.ConfigManager != nil && app.ConfigManager.GetConfigFile() != "" {
		configFile = app.ConfigManager.GetConfigFile()
	}
	schemaFile, err := config.GetSchemaFile()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}

	paths := styles.ConfigPaths{
		ConfigFile: configFile,
		SchemaFile: schemaFile,
		Database:   app.Config.Persistence.DatabasePath,
	}
	if app.Config.Logging.EnableFileLog {
		paths.LogFile = app.Config.Logging.LogFile()
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPaths(paths))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configSchemaStdout {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	if err := config.EnsureDirectories(); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}
	path, err := config.GenerateSchemaFile()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSchemaWritten(path))
	return nil
}
