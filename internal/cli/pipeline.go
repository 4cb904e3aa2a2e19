package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/epirus-io/epirus-cli/internal/artifact"
	"github.com/epirus-io/epirus-cli/internal/config"
	"github.com/epirus-io/epirus-cli/internal/core/project"
	"github.com/epirus-io/epirus-cli/internal/logging"
	"github.com/epirus-io/epirus-cli/internal/report"
	"github.com/epirus-io/epirus-cli/internal/ui"
	"github.com/epirus-io/epirus-cli/pkg/models"
	"github.com/epirus-io/epirus-cli/pkg/version"
)

// runRequest describes one generation run of a command.
type runRequest struct {
	flow   report.Flow
	config models.ProjectConfiguration

	// resolve returns the artifacts of the run. It is called before the
	// project directory is touched.
	resolve func(r *artifact.Resolver) (*artifact.Set, error)

	// plan fills the command specific fields of the plan.
	plan func(p *project.Plan, logger *slog.Logger) error

	// wrongPath reports artifact errors as a wrong Solidity path.
	wrongPath bool
}

// executeRun validates the request, opens the run log, prepares the
// project directory and drives the orchestrator. The outcome is reported
// on the command's output.
func executeRun(cmd *cobra.Command, req runRequest) error {
	d := deps
	if d == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	cfg := d.Config.Get()
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	if err := project.Validate(req.config); err != nil {
		return err
	}
	outDir, err := filepath.Abs(req.config.OutputDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	req.config.OutputDir = outDir
	d.Cleanup.SetDevMode(req.config.DevMode)

	runLog, err := logging.Open(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return err
	}
	logger := runLog.Logger()
	d.Cleanup.SetLogger(logger)

	restore := d.Console.Redirect(runLog)
	defer restore()

	success := false
	defer func() {
		d.Cleanup.SetLogger(d.Logger)
		if success && !req.config.DevMode {
			if err := runLog.Remove(); err != nil {
				d.Logger.Warn("remove run log", "path", runLog.Path(), "error", err)
			}
			return
		}
		_ = runLog.Close()
	}()

	out := cmd.OutOrStdout()
	reporter := report.NewReporter(out, req.flow, logger,
		report.WithRestore(restore),
		report.WithRunLog(runLog),
		report.WithMarkdown(isTerminal(out) && !cfg.UI.NoColor),
		report.WithNoColor(cfg.UI.NoColor),
	)

	logger.Info("run started",
		"flow", req.flow,
		"project", req.config.ProjectName,
		"package", req.config.PackageName,
		"output", req.config.OutputDir,
		"version", version.GetVersion(),
	)

	resolver := artifact.NewResolver(logger)
	set, err := req.resolve(resolver)
	if err != nil {
		logger.Error("artifact resolution failed", "error", err)
		if req.wrongPath && errors.Is(err, artifact.ErrArtifact) {
			reporter.WrongPath()
			return &report.ExitError{Code: 1, Err: err}
		}
		return reporter.Fail(err)
	}

	folders := project.NewFolderManager(confirmOverwrite(d.Prompt), d.Cleanup, logger)
	dir, err := folders.Prepare(req.config.OutputDir, req.config.ProjectName, req.config.Overwrite)
	if err != nil {
		logger.Error("prepare project directory failed", "error", err)
		return reporter.Fail(err)
	}

	plan := project.Plan{
		Config:    req.config,
		Directory: dir,
		Artifacts: set,
		RunID:     runLog.ID(),
	}
	if req.plan != nil {
		if err := req.plan(&plan, logger); err != nil {
			dir.Fail()
			return reporter.Fail(err)
		}
	}

	tc := d.Toolchain(cfg, logger)
	orch := project.NewOrchestrator(tc.Compiler, tc.Generator, tc.Builder, resolver, logger)
	progress := ui.NewStageProgress(d.Progress, out)
	orch.SetObserver(progress)

	result := orch.Run(runContext(cmd), plan)
	progress.Close()

	if err := reporter.Report(result); err != nil {
		return err
	}
	success = true
	return nil
}

// confirmOverwrite asks before an existing project is replaced. Prompts
// draw on the terminal directly, so the redirected console does not hide
// them.
func confirmOverwrite(prompt ui.Prompt) project.Confirmer {
	return project.ConfirmFunc(func(path string) (bool, error) {
		return prompt.Confirm(fmt.Sprintf("%s already exists. Overwrite it?", path), false)
	})
}

func runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
