package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/epirus-io/epirus-cli/internal/config"
	"github.com/epirus-io/epirus-cli/internal/core/project"
	"github.com/epirus-io/epirus-cli/internal/defs"
	"github.com/epirus-io/epirus-cli/internal/generator"
	"github.com/epirus-io/epirus-cli/internal/logging"
	"github.com/epirus-io/epirus-cli/internal/toolchain"
	"github.com/epirus-io/epirus-cli/internal/ui"
)

// fakeCompiler writes an ABI and a BIN per source stem.
type fakeCompiler struct {
	err     error
	sources []string
}

func (f *fakeCompiler) Compile(_ context.Context, sources []string, outDir string) error {
	f.sources = append(f.sources, sources...)
	if f.err != nil {
		return f.err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, src := range sources {
		stem := strings.TrimSuffix(filepath.Base(src), ".sol")
		if err := os.WriteFile(filepath.Join(outDir, stem+".abi"), []byte(`[]`), 0o644); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(outDir, stem+".bin"), []byte("6080"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

type fakeGenerator struct {
	cfg *generator.Configuration
}

func (f *fakeGenerator) Generate(_ context.Context, cfg generator.Configuration) error {
	f.cfg = &cfg
	return nil
}

// fakeBuilder records tasks; shadowJar produces a server jar.
type fakeBuilder struct {
	tasks []string
}

func (f *fakeBuilder) Run(_ context.Context, task, dir string) (*toolchain.Result, error) {
	f.tasks = append(f.tasks, task)
	if task == project.TaskShadowJar {
		libs := filepath.Join(dir, filepath.FromSlash(defs.ServerLibsSubdir))
		if err := os.MkdirAll(libs, 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(libs, "demo-server-0.1.0-all.jar"), []byte("PK"), 0o644); err != nil {
			return nil, err
		}
	}
	return &toolchain.Result{}, nil
}

type testEnv struct {
	deps     *Dependencies
	compiler *fakeCompiler
	gen      *fakeGenerator
	builder  *fakeBuilder
	out      string
	logFile  string
}

// newTestEnv installs headless dependencies with a fake toolchain and an
// isolated configuration directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tmp := t.TempDir()
	env := &testEnv{
		compiler: &fakeCompiler{},
		gen:      &fakeGenerator{},
		builder:  &fakeBuilder{},
		out:      filepath.Join(tmp, "out"),
		logFile:  filepath.Join(tmp, "epirus.log"),
	}
	t.Setenv("EPIRUS_CONFIG_DIR", filepath.Join(tmp, "config"))
	t.Setenv("EPIRUS_LOG_FILE", env.logFile)
	t.Setenv("EPIRUS_DEV_MODE", "")
	t.Setenv("EPIRUS_NON_INTERACTIVE", "")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	console := logging.NewConsole(io.Discard)
	runner := toolchain.NewRunner(console, logger)
	headless := ui.NewHeadlessManager()
	headless.ForceHeadless(true)
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: true})

	env.deps = &Dependencies{
		Config:   config.NewManager(logger),
		Console:  console,
		Runner:   runner,
		Cleanup:  project.NewCleanup(runner, logger),
		Headless: headless,
		Theme:    theme,
		Prompt:   ui.NewPrompt(theme, headless),
		Progress: ui.NewProgress(theme, headless, io.Discard),
		Toolchain: func(*config.Config, *slog.Logger) Toolchain {
			return Toolchain{Compiler: env.compiler, Generator: env.gen, Builder: env.builder}
		},
		Logger: logger,
	}

	prev := GetDeps()
	SetDeps(env.deps)
	t.Cleanup(func() { SetDeps(prev) })
	return env
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
