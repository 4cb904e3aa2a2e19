package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/epirus-io/epirus-cli/internal/defs"
	"github.com/epirus-io/epirus-cli/internal/template"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

// Secondary build tasks run after generation.
const (
	TaskSwaggerUI         = "generateWeb3jSwaggerUI"
	TaskCompleteSwaggerUI = "completeSwaggerUiGeneration"
	TaskClean             = "clean"
	TaskShadowJar         = "shadowJar"
)

// ScaffoldResult summarizes a scaffold step.
type ScaffoldResult struct {
	CreatedDirs  []string // relative to the project root
	CreatedFiles []string // relative to the project root
	Sources      []string // absolute paths of the written contracts
}

// Scaffolder writes the project template tree and the contract sources of
// a new or imported project.
type Scaffolder struct {
	deployer template.Deployer
	logger   *slog.Logger
}

// NewScaffolder creates a Scaffolder. A nil deployer skips the project
// templates and only writes contracts.
func NewScaffolder(deployer template.Deployer, logger *slog.Logger) *Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scaffolder{deployer: deployer, logger: logger}
}

// Scaffold creates the project directories, renders the project templates
// and writes contracts into the Solidity directory.
func (s *Scaffolder) Scaffold(ctx context.Context, dir *Directory, tmplCtx *template.TemplateContext, contracts []template.Contract) (*ScaffoldResult, error) {
	st := dir.Structure()
	s.logger.Info("scaffolding project",
		"root", st.Root(),
		"project", tmplCtx.ProjectName,
		"contracts", len(contracts),
	)

	result := &ScaffoldResult{}

	// Step 1: directories
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := dir.Scaffold(); err != nil {
		return nil, fmt.Errorf("create project structure: %w", err)
	}
	for _, d := range st.scaffoldDirs() {
		rel, _ := filepath.Rel(st.Root(), d)
		result.CreatedDirs = append(result.CreatedDirs, filepath.ToSlash(rel))
	}

	// Step 2: project templates
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.deployer != nil {
		written, err := s.deployer.Deploy(ctx, st.Root(), tmplCtx)
		if err != nil {
			return nil, fmt.Errorf("deploy templates: %w", err)
		}
		result.CreatedFiles = append(result.CreatedFiles, written...)
	}

	// Step 3: contracts
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sources, err := template.WriteContracts(st.SolidityPath(), contracts)
	if err != nil {
		return nil, fmt.Errorf("write contracts: %w", err)
	}
	for _, src := range sources {
		if rel, err := filepath.Rel(st.Root(), src); err == nil {
			result.CreatedFiles = append(result.CreatedFiles, filepath.ToSlash(rel))
		}
	}
	result.Sources = sources

	s.logger.Info("project scaffolded",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// Step returns the orchestrator scaffold hook for the given contracts.
func (s *Scaffolder) Step(tmplCtx *template.TemplateContext, contracts []template.Contract) ScaffoldFunc {
	return func(ctx context.Context, dir *Directory) ([]string, error) {
		res, err := s.Scaffold(ctx, dir, tmplCtx, contracts)
		if err != nil {
			return nil, err
		}
		return res.Sources, nil
	}
}

// TemplateContracts returns the contracts of a bundled template and the
// names of the artifacts the generated project exposes.
func TemplateContracts(t models.TemplateType, tmplCtx *template.TemplateContext) ([]template.Contract, []string, error) {
	switch t {
	case models.TemplateERC777:
		contracts, err := template.ERC777Contracts(tmplCtx)
		if err != nil {
			return nil, nil, err
		}
		return contracts, []string{tmplCtx.TokenName}, nil
	case models.TemplateHelloWorld, "":
		c, err := template.HelloWorldContract()
		if err != nil {
			return nil, nil, err
		}
		return []template.Contract{c}, []string{c.Name()}, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown template %q", ErrValidation, t)
	}
}

// TemplateTasks returns the secondary build tasks of a bundled template.
func TemplateTasks(t models.TemplateType) []string {
	if t == models.TemplateERC777 {
		return []string{TaskCompleteSwaggerUI}
	}
	return []string{TaskSwaggerUI}
}

// ImportTasks returns the secondary build tasks of the import flow.
func ImportTasks() []string {
	return []string{TaskSwaggerUI, TaskClean, TaskSwaggerUI}
}

// ImportContracts reads the Solidity sources of the import flow. Sources
// keep their layout relative to path when path is a directory.
func ImportContracts(path string, sources []string) ([]template.Contract, error) {
	base := ""
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		base = path
	}
	contracts, err := template.ReadContracts(base, sources)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifact, err)
	}
	return contracts, nil
}

// writeDefaultContract materializes the default contract under dir and
// returns its path.
func writeDefaultContract(dir string) ([]string, error) {
	c, err := template.HelloWorldContract()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return template.WriteContracts(dir, []template.Contract{c})
}
