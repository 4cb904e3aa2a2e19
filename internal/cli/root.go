package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/epirus-io/epirus-cli/internal/core/project"
	"github.com/epirus-io/epirus-cli/internal/report"
	"github.com/epirus-io/epirus-cli/pkg/version"
)

// CLI color palette shared by the commands.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

var rootCmd = &cobra.Command{
	Use:   "epirus",
	Short: "Scaffold Web3 OpenAPI projects from Solidity contracts",
	Long: `epirus generates runnable Web3 OpenAPI server projects from Solidity
sources or compiled contract artifacts.

It validates the project parameters, prepares the output directory,
compiles contracts with solc, runs the code generator and the gradle
build, and reports the next steps.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute initializes dependencies, runs the root command and performs
// the exit-time cleanup once every child process has terminated.
func Execute() error {
	InitDependencies()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		// Reported failures have already printed the run log.
		var exitErr *report.ExitError
		if !errors.As(err, &exitErr) {
			_, _ = fmt.Fprintf(os.Stderr, "%s %v\n", symError(), err)
		}
	}

	return finishCommand(deps.Cleanup, os.Stderr, err)
}

// finishCommand runs the exit-time cleanup. Removal failures are printed
// to w as warnings and never change the outcome of the command: a
// reported success stays a success.
func finishCommand(cleanup *project.Cleanup, w io.Writer, err error) error {
	if cerr := cleanup.Run(); cerr != nil {
		_, _ = fmt.Fprintf(w, "%s cleanup: %v\n", symWarning(), cerr)
	}
	return err
}

// loadConfig loads the user configuration before any subcommand runs.
func loadConfig(_ *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	cfg, err := deps.Config.Load("")
	if err != nil {
		return err
	}
	deps.applyConfig(cfg)
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("epirus %s\n", version.GetFullVersion()))
}
