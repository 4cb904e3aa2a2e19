package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/epirus-io/epirus-cli/internal/artifact"
	"github.com/epirus-io/epirus-cli/internal/defs"
	"github.com/epirus-io/epirus-cli/internal/generator"
	"github.com/epirus-io/epirus-cli/internal/toolchain"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

// StageName names a pipeline stage.
type StageName string

// Pipeline stages in execution order.
const (
	StageScaffold StageName = "scaffold"
	StageCompile  StageName = "compile"
	StageGenerate StageName = "generate"
	StageBuild    StageName = "build"
	StagePackage  StageName = "package"
)

// StageObserver is notified around every stage of a run.
type StageObserver interface {
	StageStarted(name string, index, total int)
	StageFinished(name string, index, total int, err error)
}

type nopObserver struct{}

// Compile-time interface compliance check.
var _ StageObserver = nopObserver{}

func (nopObserver) StageStarted(string, int, int)         {}
func (nopObserver) StageFinished(string, int, int, error) {}

// ScaffoldFunc writes the project tree of a new or imported project and
// returns the Solidity sources to compile.
type ScaffoldFunc func(ctx context.Context, dir *Directory) ([]string, error)

// Plan is one orchestrated run.
type Plan struct {
	// Config is the validated project configuration.
	Config models.ProjectConfiguration
	// Directory is the prepared project directory.
	Directory *Directory
	// Artifacts are the resolved artifacts. An empty set compiles the
	// default contract.
	Artifacts *artifact.Set
	// Scaffold, when set, runs first and contributes sources to compile.
	Scaffold ScaffoldFunc
	// Keep limits the compiled artifacts handed to the generator. Empty
	// keeps all of them.
	Keep []string
	// Tasks are the secondary build tasks, run in order.
	Tasks []string
	// Package copies the server jar next to the project and discards the
	// project directory at exit.
	Package bool
	// RunID tags the generator configuration.
	RunID string
}

// GenerationResult is the outcome of Run.
type GenerationResult struct {
	Success       bool
	ProducedPath  string
	FailureReason ErrorKind
	Err           error
	Stages        []StageName // completed stages
}

// Orchestrator sequences scaffold, compile, generate, build and package.
type Orchestrator struct {
	compiler  toolchain.Compiler
	generator generator.Generator
	builder   toolchain.BuildTool
	resolver  *artifact.Resolver
	observer  StageObserver
	logger    *slog.Logger
}

// NewOrchestrator creates an Orchestrator over the given collaborators.
func NewOrchestrator(compiler toolchain.Compiler, gen generator.Generator, builder toolchain.BuildTool, resolver *artifact.Resolver, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if resolver == nil {
		resolver = artifact.NewResolver(logger)
	}
	return &Orchestrator{
		compiler:  compiler,
		generator: gen,
		builder:   builder,
		resolver:  resolver,
		observer:  nopObserver{},
		logger:    logger,
	}
}

// SetObserver installs obs; nil restores the no-op observer.
func (o *Orchestrator) SetObserver(obs StageObserver) {
	if obs == nil {
		obs = nopObserver{}
	}
	o.observer = obs
}

// run carries the mutable state of one Run.
type run struct {
	plan    Plan
	set     *artifact.Set
	sources []string
	config  generator.Configuration
	jar     string
}

type stage struct {
	name StageName
	kind ErrorKind
	fn   func(ctx context.Context, r *run) error
}

// Run executes plan synchronously and stops at the first failing stage.
// A failed run schedules the project directory for removal at exit.
func (o *Orchestrator) Run(ctx context.Context, plan Plan) GenerationResult {
	set := plan.Artifacts
	if set == nil {
		set = artifact.NewSet()
	}
	r := &run{plan: plan, set: set, sources: set.Sources()}
	stages := o.stages(plan, set)

	o.logger.Info("generation started",
		"project", plan.Config.ProjectName,
		"root", plan.Directory.Root(),
		"stages", len(stages),
	)

	var result GenerationResult
	for i, st := range stages {
		if err := ctx.Err(); err != nil {
			return o.fail(plan, result, &StageError{Stage: st.name, Kind: st.kind, Err: err})
		}

		o.observer.StageStarted(string(st.name), i, len(stages))
		err := st.fn(ctx, r)
		o.observer.StageFinished(string(st.name), i, len(stages), err)
		if err != nil {
			return o.fail(plan, result, &StageError{Stage: st.name, Kind: st.kind, Err: err})
		}
		result.Stages = append(result.Stages, st.name)
	}

	result.Success = true
	result.ProducedPath = plan.Directory.Root()
	if plan.Package {
		result.ProducedPath = r.jar
		plan.Directory.Discard()
	}
	o.logger.Info("generation finished", "path", result.ProducedPath)
	return result
}

func (o *Orchestrator) stages(plan Plan, set *artifact.Set) []stage {
	var stages []stage
	if plan.Scaffold != nil {
		stages = append(stages, stage{StageScaffold, KindGenerate, o.scaffold})
	}
	if plan.Scaffold != nil || set.NeedsCompile() {
		stages = append(stages, stage{StageCompile, KindCompile, o.compile})
	}
	stages = append(stages, stage{StageGenerate, KindGenerate, o.generate})
	if len(plan.Tasks) > 0 {
		stages = append(stages, stage{StageBuild, KindBuild, o.build})
	}
	if plan.Package {
		stages = append(stages, stage{StagePackage, KindBuild, o.pack})
	}
	return stages
}

func (o *Orchestrator) fail(plan Plan, result GenerationResult, err *StageError) GenerationResult {
	o.logger.Error("generation failed", "stage", err.Stage, "kind", err.Kind, "error", err.Err)
	plan.Directory.Fail()
	result.Success = false
	result.FailureReason = err.Kind
	result.Err = err
	return result
}

func (o *Orchestrator) scaffold(ctx context.Context, r *run) error {
	sources, err := r.plan.Scaffold(ctx, r.plan.Directory)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	r.sources = append(r.sources, sources...)
	return nil
}

func (o *Orchestrator) compile(ctx context.Context, r *run) error {
	st := r.plan.Directory.Structure()
	out := st.BuildPath()

	sources := r.sources
	keep := r.plan.Keep
	if len(sources) == 0 {
		written, err := writeDefaultContract(out)
		if err != nil {
			return fmt.Errorf("%w: default contract: %w", ErrCompile, err)
		}
		sources = written
		if len(keep) == 0 {
			keep = []string{defaultContractName(written)}
		}
	}

	if err := o.compiler.Compile(ctx, sources, out); err != nil {
		return fmt.Errorf("%w: %w", ErrCompile, err)
	}

	compiled, err := o.resolver.Resolve([]string{out}, []string{out})
	if err != nil {
		return fmt.Errorf("%w: collect compiler output: %w", ErrCompile, err)
	}
	compiled = compiled.Filter(keep...)
	if compiled.Len() == 0 {
		return fmt.Errorf("%w: compiler produced no artifacts for %v", ErrCompile, keep)
	}

	merged := append(r.set.Artifacts(), compiled.Artifacts()...)
	r.set = artifact.NewSet(merged...)
	o.logger.Info("contracts compiled", "artifacts", r.set.Names())
	return nil
}

func (o *Orchestrator) generate(ctx context.Context, r *run) error {
	cfg, err := generator.Bind(r.plan.Config, r.set).Abs()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	cfg.RunID = r.plan.RunID
	r.config = cfg

	path, err := generator.WriteConfig(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	o.logger.Debug("generator configuration written", "path", path)

	genErr := o.generator.Generate(ctx, cfg)

	build := r.plan.Directory.Structure().BuildPath()
	if err := os.RemoveAll(build); err != nil {
		o.logger.Warn("remove compiler output", "path", build, "error", err)
	}

	if genErr != nil {
		return fmt.Errorf("%w: %w", ErrGenerate, genErr)
	}
	return nil
}

func (o *Orchestrator) build(ctx context.Context, r *run) error {
	root := r.plan.Directory.Root()
	for _, task := range r.plan.Tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := o.builder.Run(ctx, task, root); err != nil {
			return fmt.Errorf("%w: %w", ErrBuild, err)
		}
	}
	return nil
}

func (o *Orchestrator) pack(_ context.Context, r *run) error {
	root := r.plan.Directory.Root()
	libs := filepath.Join(root, filepath.FromSlash(defs.ServerLibsSubdir))

	jars, err := filepath.Glob(filepath.Join(libs, "*-all.jar"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuild, err)
	}
	if len(jars) == 0 {
		return fmt.Errorf("%w: no *-all.jar in %s", ErrBuild, libs)
	}
	slices.Sort(jars)
	if len(jars) > 1 {
		o.logger.Warn("several server jars found, packaging the first", "jars", jars)
	}

	dest := filepath.Join(filepath.Dir(root), r.plan.Config.ProjectName+defs.ServerJarSuffix)
	if err := copyFile(jars[0], dest); err != nil {
		return fmt.Errorf("%w: %w", ErrBuild, err)
	}
	r.jar = dest
	o.logger.Info("server jar packaged", "jar", dest)
	return nil
}

func defaultContractName(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return artifactStem(paths[0])
}

func artifactStem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// copyFile copies src to dst through a temporary file in dst's directory,
// so dst either holds the complete copy or does not exist.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+"-*")
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := tmp.Chmod(defs.FilePerm); err != nil {
		return fmt.Errorf("chmod %s: %w", dst, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("rename %s: %w", dst, err)
	}
	return nil
}
