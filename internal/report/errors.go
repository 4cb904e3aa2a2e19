// Package report prints the outcome of a generation run: a success banner
// with follow-up commands, or the run log and a failure notice.
package report

import "fmt"

// ExitError carries the process exit code of a reported failure. The error
// has already been shown to the user when it reaches main.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the reported error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
