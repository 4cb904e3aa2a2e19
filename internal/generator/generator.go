package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/epirus-io/epirus-cli/internal/toolchain"
)

// Generator produces project code on disk from a Configuration.
type Generator interface {
	Generate(ctx context.Context, cfg Configuration) error
}

// Command is the Generator backed by an external executable. It is invoked
// as `<path> <args...> --config <cfg.OutputDir>/.epirus/generator.yaml`
// from the output directory; the configuration file must already exist.
type Command struct {
	path   string
	args   []string
	runner *toolchain.Runner
	logger *slog.Logger
}

// Compile-time interface compliance check.
var _ Generator = (*Command)(nil)

// NewCommand creates a subprocess-backed Generator.
func NewCommand(path string, args []string, runner *toolchain.Runner, logger *slog.Logger) *Command {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Command{path: path, args: slices.Clone(args), runner: runner, logger: logger}
}

// Generate runs the generator executable for cfg.
func (c *Command) Generate(ctx context.Context, cfg Configuration) error {
	bin, err := exec.LookPath(c.path)
	if err != nil {
		return fmt.Errorf("%w: generator (%s): install it or set toolchain.generator", toolchain.ErrNotFound, c.path)
	}

	configPath, err := filepath.Abs(ConfigPath(cfg.OutputDir))
	if err != nil {
		return fmt.Errorf("resolve generator configuration: %w", err)
	}
	args := append(slices.Clone(c.args), "--config", configPath)
	c.logger.Info("running code generator",
		"generator", bin,
		"project", cfg.ProjectName,
		"contracts", len(cfg.Contracts),
		"out", cfg.OutputDir,
	)

	if _, err := c.runner.Run(ctx, toolchain.Command{Name: bin, Args: args, Dir: cfg.OutputDir}); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	return nil
}
