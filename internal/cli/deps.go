// Package cli provides the Cobra command tree and dependency injection
// wiring for the epirus CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/epirus-io/epirus-cli/internal/config"
	"github.com/epirus-io/epirus-cli/internal/core/project"
	"github.com/epirus-io/epirus-cli/internal/generator"
	"github.com/epirus-io/epirus-cli/internal/logging"
	"github.com/epirus-io/epirus-cli/internal/toolchain"
	"github.com/epirus-io/epirus-cli/internal/ui"
)

// Toolchain groups the external tools driven by one run.
type Toolchain struct {
	Compiler  toolchain.Compiler
	Generator generator.Generator
	Builder   toolchain.BuildTool
}

// ToolchainFactory builds the toolchain of a run from the effective
// configuration. logger is the run log's logger.
type ToolchainFactory func(cfg *config.Config, logger *slog.Logger) Toolchain

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config    *config.Manager
	Console   *logging.Console
	Runner    *toolchain.Runner
	Cleanup   *project.Cleanup
	Headless  *ui.HeadlessManager
	Theme     *ui.Theme
	Prompt    ui.Prompt
	Progress  ui.Progress
	Toolchain ToolchainFactory
	Logger    *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all domain dependencies.
// It should be called once during application startup. Settings that
// depend on the user configuration are applied after it is loaded, in
// the root command's PersistentPreRunE.
func InitDependencies() {
	// Commands log to the run log; everything before it is opened is dropped.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	console := logging.NewConsole(os.Stdout)
	runner := toolchain.NewRunner(console, logger)
	headless := ui.NewHeadlessManager()
	theme := ui.NewTheme(ui.ThemeConfig{})

	deps = &Dependencies{
		Config:   config.NewManager(logger),
		Console:  console,
		Runner:   runner,
		Cleanup:  project.NewCleanup(runner, logger),
		Headless: headless,
		Theme:    theme,
		Prompt:   ui.NewPrompt(theme, headless),
		Progress: ui.NewProgress(theme, headless, os.Stdout),
		Logger:   logger,
	}
	deps.Toolchain = defaultToolchain(runner)
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// applyConfig propagates UI settings of the loaded configuration.
func (d *Dependencies) applyConfig(cfg *config.Config) {
	if cfg.UI.NonInteractive {
		d.Headless.ForceHeadless(true)
	}
	d.Headless.SetDefaults(promptAnswers(cfg.UI.Answers))
	if cfg.UI.NoColor {
		d.Theme = ui.NewTheme(ui.ThemeConfig{NoColor: true})
		d.Prompt = ui.NewPrompt(d.Theme, d.Headless)
		d.Progress = ui.NewProgress(d.Theme, d.Headless, os.Stdout)
	}
}

// promptAnswers maps the configured answers onto the headless default keys.
func promptAnswers(a config.PromptAnswers) map[string]string {
	answers := make(map[string]string, 2)
	if path := strings.TrimSpace(a.SolidityPath); path != "" {
		answers[ui.KeySolidityPath] = path
	}
	if a.Overwrite {
		answers[ui.KeyOverwrite] = strconv.FormatBool(true)
	}
	return answers
}

// defaultToolchain wires solc, the code generator and gradle over runner.
func defaultToolchain(runner *toolchain.Runner) ToolchainFactory {
	return func(cfg *config.Config, logger *slog.Logger) Toolchain {
		return Toolchain{
			Compiler:  toolchain.NewSolc(cfg.Toolchain.Solc, runner, logger),
			Generator: generator.NewCommand(cfg.Toolchain.Generator, cfg.Toolchain.GeneratorArgs, runner, logger),
			Builder:   toolchain.NewGradle(cfg.Toolchain.Gradle, runner, logger),
		}
	}
}
