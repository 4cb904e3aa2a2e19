package project

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/epirus-io/epirus-cli/internal/resilience"
)

// Waiter blocks until no child process is running.
type Waiter interface {
	Wait()
}

// Cleanup is the exit-time removal registry. Paths registered during a run
// are removed by Run, which the CLI calls once after the command finished
// and the toolchain runner is idle.
type Cleanup struct {
	mu      sync.Mutex
	paths   []string
	devMode bool
	waiter  Waiter
	policy  resilience.RetryPolicy
	logger  *slog.Logger
}

// NewCleanup creates a registry that waits on waiter before removing
// anything. A nil waiter does not wait.
func NewCleanup(waiter Waiter, logger *slog.Logger) *Cleanup {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Cleanup{waiter: waiter, policy: resilience.DefaultRemovePolicy, logger: logger}
}

// SetDevMode keeps every later registered path on disk when enabled.
func (c *Cleanup) SetDevMode(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.devMode = enabled
}

// SetLogger replaces the logger, typically with the run log's.
func (c *Cleanup) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
}

// Register schedules path for removal. It reports whether the path was
// registered; in dev mode it never is.
func (c *Cleanup) Register(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.devMode {
		c.logger.Info("dev mode: keeping output", "path", path)
		return false
	}
	if slices.Contains(c.paths, path) {
		return true
	}
	c.paths = append(c.paths, path)
	c.logger.Debug("scheduled for removal at exit", "path", path)
	return true
}

// Pending returns the registered paths in registration order.
func (c *Cleanup) Pending() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.paths)
}

// SetRetryPolicy replaces the retry policy of a single removal.
func (c *Cleanup) SetRetryPolicy(policy resilience.RetryPolicy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.policy = policy
}

// Run waits for running child processes, then removes every registered
// path, most recent first. A removal is retried while files are still
// held open. Failures are logged and returned joined as *CleanupError
// values; they never stop the remaining removals.
func (c *Cleanup) Run() error {
	if c.waiter != nil {
		c.waiter.Wait()
	}

	c.mu.Lock()
	paths := c.paths
	c.paths = nil
	logger := c.logger
	policy := c.policy
	c.mu.Unlock()

	var errs []error
	for _, path := range slices.Backward(paths) {
		err := resilience.Retry(context.Background(), policy, func() error {
			return os.RemoveAll(path)
		})
		if err != nil {
			logger.Warn("cleanup failed", "path", path, "error", err)
			errs = append(errs, &CleanupError{Path: path, Err: err})
			continue
		}
		logger.Debug("removed", "path", path)
	}
	return errors.Join(errs...)
}
