package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/epirus-io/epirus-cli/internal/artifact"
	"github.com/epirus-io/epirus-cli/internal/core/project"
	"github.com/epirus-io/epirus-cli/internal/report"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

var jarCmd = &cobra.Command{
	Use:   "jar",
	Short: "Generate a Web3 OpenAPI server and package it as an executable jar",
	Long: `Generate a Web3 OpenAPI project, build it with shadowJar and copy the
resulting <name>-server-all.jar into the output directory. The generated
project itself is removed once the jar is in place.`,
	Args: cobra.NoArgs,
	RunE: runJar,
}

func init() {
	addProjectFlags(jarCmd)
	addArtifactFlags(jarCmd)

	rootCmd.AddCommand(jarCmd)
}

func runJar(cmd *cobra.Command, _ []string) error {
	pc := projectConfiguration(cmd, loadedConfig())
	pc.Generator = models.DefaultGeneratorOptions()

	abis := getStringSliceFlag(cmd, flagABI)
	bins := getStringSliceFlag(cmd, flagBin)

	return executeRun(cmd, runRequest{
		flow:   report.FlowJar,
		config: pc,
		resolve: func(r *artifact.Resolver) (*artifact.Set, error) {
			return r.Resolve(abis, bins)
		},
		plan: func(p *project.Plan, _ *slog.Logger) error {
			p.Tasks = []string{project.TaskShadowJar}
			p.Package = true
			return nil
		},
	})
}
