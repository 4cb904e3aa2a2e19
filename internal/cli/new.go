package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/epirus-io/epirus-cli/internal/artifact"
	"github.com/epirus-io/epirus-cli/internal/core/project"
	"github.com/epirus-io/epirus-cli/internal/report"
	"github.com/epirus-io/epirus-cli/internal/template"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

const (
	flagSymbol        = "symbol"
	flagInitialSupply = "initial-supply"
)

var newCmd = &cobra.Command{
	Use:   "new [HelloWorld|ERC777]",
	Short: "Create a new Web3 OpenAPI project from a bundled template",
	Long: `Create a new Web3 OpenAPI project from a bundled template.

The template contracts are written to src/main/solidity, compiled with
solc and handed to the code generator. The gradle build then generates
the Swagger UI of the project. HelloWorld is used when no template is
given.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(models.TemplateHelloWorld), string(models.TemplateERC777)},
	PreRunE:   validateNewFlags,
	RunE:      runNew,
}

func init() {
	addProjectFlags(newCmd)
	newCmd.Flags().String(flagSymbol, template.DefaultTokenSymbol, "Token symbol of the ERC777 template")
	newCmd.Flags().String(flagInitialSupply, template.DefaultInitialSupply, "Initial token supply of the ERC777 template")

	rootCmd.AddCommand(newCmd)
}

// validateNewFlags validates the template argument and token flags before
// execution.
func validateNewFlags(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		if _, err := models.ParseTemplateType(args[0]); err != nil {
			return fmt.Errorf("%w: %w", project.ErrValidation, err)
		}
	}
	symbol := getStringFlag(cmd, flagSymbol)
	if strings.TrimSpace(symbol) == "" {
		return fmt.Errorf("%w: --%s must not be empty", project.ErrValidation, flagSymbol)
	}
	supply := getStringFlag(cmd, flagInitialSupply)
	if supply == "" || strings.TrimLeft(supply, "0123456789") != "" {
		return fmt.Errorf("%w: --%s must be a non-negative integer, not %q", project.ErrValidation, flagInitialSupply, supply)
	}
	return nil
}

func runNew(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	tmplType, err := models.ParseTemplateType(name)
	if err != nil {
		return err
	}

	pc := projectConfiguration(cmd, loadedConfig())
	tmplCtx := template.NewTemplateContext(
		template.WithProject(pc.ProjectName, pc.PackageName),
		template.WithContextPath(pc.ContextPath),
		template.WithAddressLength(pc.AddressLength),
		template.WithToken("", getStringFlag(cmd, flagSymbol), getStringFlag(cmd, flagInitialSupply)),
		template.WithCreatedAt(time.Now().UTC().Format(time.RFC3339)),
	)

	return executeRun(cmd, runRequest{
		flow:   report.FlowNew,
		config: pc,
		resolve: func(*artifact.Resolver) (*artifact.Set, error) {
			return artifact.NewSet(), nil
		},
		plan: func(p *project.Plan, logger *slog.Logger) error {
			contracts, keep, err := project.TemplateContracts(tmplType, tmplCtx)
			if err != nil {
				return err
			}
			scaffolder := project.NewScaffolder(template.NewDeployer(template.ProjectFS()), logger)
			p.Scaffold = scaffolder.Step(tmplCtx, contracts)
			p.Keep = keep
			p.Tasks = project.TemplateTasks(tmplType)
			logger.Debug("template selected", "template", tmplType, "contracts", len(contracts))
			return nil
		},
	})
}
