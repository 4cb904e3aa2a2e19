package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epirus-io/epirus-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the epirus configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	configCmd.AddCommand(configShowCmd, configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if deps == nil || deps.Config == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	data, err := deps.Config.Marshal()
	if err != nil {
		return err
	}

	source := "compiled defaults"
	if deps.Config.FromFile() {
		source = deps.Config.Path()
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", symSuccess(), cliMuted.Render("loaded from "+source))
	_, _ = cmd.OutOrStdout().Write(data)
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.SchemaJSON()
	if err != nil {
		return err
	}
	_, _ = cmd.OutOrStdout().Write(data)
	return nil
}
