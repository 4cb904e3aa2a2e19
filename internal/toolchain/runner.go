package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// tailSize is the amount of combined output kept for error reports.
const tailSize = 8 * 1024

// Command describes one child process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string // appended to os.Environ()
}

// String returns the command line for logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result holds the outcome of a finished process.
type Result struct {
	ExitCode int
	Output   []byte // tail of combined stdout and stderr
}

// Runner executes commands synchronously and tracks the ones still running.
type Runner struct {
	out    io.Writer
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewRunner creates a Runner streaming child output to out. A nil out
// discards output; a nil logger discards log records.
func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{out: out, logger: logger}
}

// Run starts cmd, streams its output and waits for it to exit. A non-zero
// exit returns the Result together with an *ExitError. A missing
// executable returns an error wrapping ErrNotFound.
func (r *Runner) Run(ctx context.Context, cmd Command) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tail := &tailBuffer{max: tailSize}
	sink := io.MultiWriter(r.out, tail)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	c.Stdout = sink
	c.Stderr = sink

	r.logger.Debug("starting process", "cmd", cmd.String(), "dir", cmd.Dir)

	r.wg.Add(1)
	err := c.Start()
	if err != nil {
		r.wg.Done()
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, cmd.Name)
		}
		return nil, fmt.Errorf("start %s: %w", cmd.Name, err)
	}

	err = c.Wait()
	r.wg.Done()

	res := &Result{Output: tail.Bytes()}
	if c.ProcessState != nil {
		res.ExitCode = c.ProcessState.ExitCode()
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("%s: %w", cmd.Name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.logger.Debug("process failed", "cmd", cmd.String(), "exit", res.ExitCode)
			return res, &ExitError{Command: cmd.String(), Code: res.ExitCode, Output: string(res.Output)}
		}
		return res, fmt.Errorf("wait %s: %w", cmd.Name, err)
	}

	r.logger.Debug("process finished", "cmd", cmd.String())
	return res, nil
}

// Wait blocks until no child process started by this runner is running.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	mu  sync.Mutex
	max int
	buf []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) Bytes() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]byte(nil), t.buf...)
}
