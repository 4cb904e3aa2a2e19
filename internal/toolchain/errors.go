// Package toolchain runs the external executables of the generation
// pipeline: the Solidity compiler, the build tool and the code generator.
// Every child process goes through a Runner, which streams output to the
// console writer and tracks in-flight processes for exit-time cleanup.
package toolchain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for toolchain operations.
var (
	// ErrNotFound indicates an executable could not be located.
	ErrNotFound = errors.New("toolchain: executable not found")

	// ErrNoSources indicates Compile was called without sources.
	ErrNoSources = errors.New("toolchain: no sources to compile")
)

// ExitError reports a child process that finished with a non-zero status.
type ExitError struct {
	Command string
	Code    int
	Output  string // tail of combined stdout and stderr
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + lastLine(out)
	}
	return msg
}

// lastLine returns the final line of s.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
