package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/epirus-io/epirus-cli/internal/artifact"
	"github.com/epirus-io/epirus-cli/internal/core/project"
	"github.com/epirus-io/epirus-cli/internal/report"
	"github.com/epirus-io/epirus-cli/internal/template"
	"github.com/epirus-io/epirus-cli/internal/ui"
)

const flagSolidityPath = "solidity-path"

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Create a Web3 OpenAPI project from existing Solidity sources",
	Long: `Create a Web3 OpenAPI project from existing Solidity sources.

The path may be a single .sol file or a directory searched recursively.
The sources are copied into src/main/solidity, compiled with solc and
handed to the code generator. When -s is omitted in an interactive
terminal the path is asked for.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	addProjectFlags(importCmd)
	importCmd.Flags().StringP(flagSolidityPath, "s", "", "Solidity file or directory to import")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	path := getStringFlag(cmd, flagSolidityPath)
	if path == "" {
		asked, err := askSolidityPath()
		if err != nil {
			return err
		}
		path = asked
	}

	pc := projectConfiguration(cmd, loadedConfig())
	tmplCtx := template.NewTemplateContext(
		template.WithProject(pc.ProjectName, pc.PackageName),
		template.WithContextPath(pc.ContextPath),
		template.WithAddressLength(pc.AddressLength),
		template.WithCreatedAt(time.Now().UTC().Format(time.RFC3339)),
	)

	var contracts []template.Contract
	return executeRun(cmd, runRequest{
		flow:      report.FlowImport,
		config:    pc,
		wrongPath: true,
		resolve: func(r *artifact.Resolver) (*artifact.Set, error) {
			set, err := r.ResolveSources(path)
			if err != nil {
				return nil, err
			}
			contracts, err = project.ImportContracts(path, set.Sources())
			if err != nil {
				return nil, err
			}
			// The scaffold copies are the only compile sources.
			return artifact.NewSet(), nil
		},
		plan: func(p *project.Plan, logger *slog.Logger) error {
			scaffolder := project.NewScaffolder(template.NewDeployer(template.ProjectFS()), logger)
			p.Scaffold = scaffolder.Step(tmplCtx, contracts)
			p.Tasks = project.ImportTasks()
			logger.Debug("import sources", "path", path, "contracts", len(contracts))
			return nil
		},
	})
}

// askSolidityPath prompts for the Solidity path. Headless sessions must
// pass -s or set ui.answers.solidity_path.
func askSolidityPath() (string, error) {
	if deps == nil || deps.Prompt == nil {
		return "", fmt.Errorf("dependencies not initialized")
	}
	path, err := deps.Prompt.Input("Solidity path",
		ui.WithKey(ui.KeySolidityPath),
		ui.WithPlaceholder("contracts/"),
		ui.WithValidation(validateSolidityPath),
	)
	if err != nil {
		if errors.Is(err, ui.ErrHeadlessNoDefaults) {
			return "", fmt.Errorf("%w: --%s is required in a non-interactive session", project.ErrValidation, flagSolidityPath)
		}
		return "", err
	}
	return strings.TrimSpace(path), nil
}

func validateSolidityPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("path must not be empty")
	}
	if _, err := os.Stat(s); err != nil {
		return fmt.Errorf("%s does not exist", s)
	}
	return nil
}
