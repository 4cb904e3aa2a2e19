// Package logging owns the run log file of a scaffold run and the console
// writer that is redirected into it while external tools execute.
package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/epirus-io/epirus-cli/internal/defs"
)

// ErrClosed indicates a write to a run log that has been closed.
var ErrClosed = errors.New("logging: run log closed")

// RunLog is the log file of one scaffold run. It is an io.Writer for raw
// tool output and carries a slog.Logger for structured records. Both write
// to the same file.
type RunLog struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	logger *slog.Logger
	id     string
}

// Open truncates or creates the run log at path and returns it with a
// text-handler logger at the given level. Every record carries the run ID.
func Open(path string, level slog.Level) (*RunLog, error) {
	if path == "" {
		path = defs.RunLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, defs.FilePerm)
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}

	l := &RunLog{path: path, file: f, id: uuid.NewString()}
	l.logger = slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: level})).With("run", l.id)
	return l, nil
}

// Write appends raw bytes to the log file.
func (l *RunLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return 0, ErrClosed
	}
	return l.file.Write(p)
}

// Logger returns the structured logger writing into this run log.
func (l *RunLog) Logger() *slog.Logger {
	return l.logger
}

// ID returns the unique identifier of this run.
func (l *RunLog) ID() string {
	return l.id
}

// Path returns the file path of the run log.
func (l *RunLog) Path() string {
	return l.path
}

// Contents returns everything written to the log so far.
func (l *RunLog) Contents() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		if err := l.file.Sync(); err != nil {
			return nil, fmt.Errorf("sync run log: %w", err)
		}
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read run log: %w", err)
	}
	return data, nil
}

// Close closes the log file. Closing twice is a no-op.
func (l *RunLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Remove closes and deletes the log file.
func (l *RunLog) Remove() error {
	if err := l.Close(); err != nil {
		return err
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove run log: %w", err)
	}
	return nil
}

// ParseLevel maps a config log level to a slog.Level. Unknown values map
// to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
