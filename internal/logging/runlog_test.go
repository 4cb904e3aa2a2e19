package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLogWriteAndContents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "epirus.log")
	l, err := Open(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer func() { _ = l.Close() }()

	if _, err := fmt.Fprintln(l, "solc: compiling HelloWorld.sol"); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	l.Logger().Info("stage finished", "stage", "compile")
	l.Logger().Debug("hidden below level")

	data, err := l.Contents()
	if err != nil {
		t.Fatalf("Contents error: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "solc: compiling HelloWorld.sol") {
		t.Errorf("contents missing raw tool output:\n%s", got)
	}
	if !strings.Contains(got, "stage=compile") {
		t.Errorf("contents missing structured record:\n%s", got)
	}
	if !strings.Contains(got, "run="+l.ID()) {
		t.Errorf("contents missing run id %s:\n%s", l.ID(), got)
	}
	if strings.Contains(got, "hidden below level") {
		t.Errorf("debug record written at info level:\n%s", got)
	}
}

func TestRunLogTruncatesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "epirus.log")
	if err := os.WriteFile(path, []byte("previous run\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Open(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer func() { _ = l.Close() }()

	data, err := l.Contents()
	if err != nil {
		t.Fatalf("Contents error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("contents = %q, want empty after Open", data)
	}
}

func TestRunLogRemove(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "epirus.log")
	l, err := Open(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if err := l.Remove(); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("run log still exists after Remove: %v", err)
	}
	if _, err := l.Write([]byte("late")); !errors.Is(err, ErrClosed) {
		t.Errorf("Write after Remove error = %v, want ErrClosed", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close error: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
