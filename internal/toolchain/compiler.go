package toolchain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/epirus-io/epirus-cli/internal/defs"
)

// Compiler turns Solidity sources into .abi and .bin files in outDir.
type Compiler interface {
	Compile(ctx context.Context, sources []string, outDir string) error
}

// Solc is the Compiler backed by the solc executable.
type Solc struct {
	path   string
	runner *Runner
	logger *slog.Logger
}

// Compile-time interface compliance check.
var _ Compiler = (*Solc)(nil)

// NewSolc creates a Solc compiler invoking the executable at path (looked
// up on PATH when it has no directory component).
func NewSolc(path string, runner *Runner, logger *slog.Logger) *Solc {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Solc{path: path, runner: runner, logger: logger}
}

// Compile runs `solc --abi --bin --overwrite -o outDir sources...`.
func (s *Solc) Compile(ctx context.Context, sources []string, outDir string) error {
	if len(sources) == 0 {
		return ErrNoSources
	}
	bin, err := exec.LookPath(s.path)
	if err != nil {
		return fmt.Errorf("%w: solc (%s): install the Solidity compiler or set toolchain.solc", ErrNotFound, s.path)
	}
	for _, src := range sources {
		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("solidity source: %w", err)
		}
	}
	if err := os.MkdirAll(outDir, defs.DirPerm); err != nil {
		return fmt.Errorf("create compiler output dir: %w", err)
	}

	args := append([]string{"--abi", "--bin", "--overwrite", "-o", outDir}, sources...)
	s.logger.Info("compiling solidity", "solc", bin, "sources", len(sources), "out", outDir)

	if _, err := s.runner.Run(ctx, Command{Name: bin, Args: args}); err != nil {
		return fmt.Errorf("solc: %w", err)
	}
	return nil
}
