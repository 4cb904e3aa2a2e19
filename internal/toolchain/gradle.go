package toolchain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/epirus-io/epirus-cli/internal/defs"
)

// BuildTool runs a named build task inside a project directory.
type BuildTool interface {
	Run(ctx context.Context, task, workingDir string) (*Result, error)
}

// Gradle is the BuildTool backed by the project's gradle wrapper, or by a
// gradle executable on PATH when the project has no wrapper.
type Gradle struct {
	fallback string
	goos     string
	runner   *Runner
	logger   *slog.Logger
}

// Compile-time interface compliance check.
var _ BuildTool = (*Gradle)(nil)

// NewGradle creates a Gradle build tool. fallback names the executable used
// when no wrapper script exists.
func NewGradle(fallback string, runner *Runner, logger *slog.Logger) *Gradle {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gradle{fallback: fallback, goos: runtime.GOOS, runner: runner, logger: logger}
}

// Run executes task in workingDir. A non-zero exit returns *ExitError.
func (g *Gradle) Run(ctx context.Context, task, workingDir string) (*Result, error) {
	cmd, err := g.command(task, workingDir)
	if err != nil {
		return nil, err
	}
	g.logger.Info("running build task", "task", task, "dir", workingDir, "cmd", cmd.Name)

	res, err := g.runner.Run(ctx, cmd)
	if err != nil {
		return res, fmt.Errorf("gradle %s: %w", task, err)
	}
	return res, nil
}

// command picks the wrapper script for the platform or the fallback.
func (g *Gradle) command(task, dir string) (Command, error) {
	if g.goos == "windows" {
		if fileExists(filepath.Join(dir, defs.GradleWrapperBat)) {
			return Command{Name: "cmd", Args: []string{"/c", `.\` + defs.GradleWrapperBat, task}, Dir: dir}, nil
		}
		return Command{Name: g.fallback, Args: []string{task}, Dir: dir}, nil
	}

	wrapper := filepath.Join(dir, defs.GradleWrapper)
	if !fileExists(wrapper) {
		return Command{Name: g.fallback, Args: []string{task}, Dir: dir}, nil
	}
	if err := os.Chmod(wrapper, defs.ExecPerm); err != nil {
		return Command{}, fmt.Errorf("make %s executable: %w", defs.GradleWrapper, err)
	}
	abs, err := filepath.Abs(wrapper)
	if err != nil {
		return Command{}, fmt.Errorf("resolve %s: %w", defs.GradleWrapper, err)
	}
	return Command{Name: abs, Args: []string{task}, Dir: dir}, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
