package cli

import (
	"github.com/spf13/cobra"

	"github.com/epirus-io/epirus-cli/internal/artifact"
	"github.com/epirus-io/epirus-cli/internal/report"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

const flagWithImplementations = "with-implementations"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Web3 OpenAPI project from contract artifacts",
	Long: `Generate a Web3 OpenAPI project from ABI and BIN files.

ABI and BIN paths may be files or directories. Every ABI is paired with
the BIN of the same file name; an ABI without BIN yields an
interface-only contract. Without any artifact the bundled HelloWorld
contract is compiled and used.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addProjectFlags(generateCmd)
	addArtifactFlags(generateCmd)
	generateCmd.Flags().Bool(flagWithImplementations, true, "Generate the interface implementations (--with-implementations=false to skip)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	pc := projectConfiguration(cmd, loadedConfig())
	pc.Generator = models.InterfaceOnlyOptions(getBoolFlag(cmd, flagWithImplementations))

	abis := getStringSliceFlag(cmd, flagABI)
	bins := getStringSliceFlag(cmd, flagBin)

	return executeRun(cmd, runRequest{
		flow:   report.FlowGenerate,
		config: pc,
		resolve: func(r *artifact.Resolver) (*artifact.Set, error) {
			return r.Resolve(abis, bins)
		},
	})
}
