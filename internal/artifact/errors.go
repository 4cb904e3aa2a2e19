// Package artifact resolves compiled contract artifacts (ABI and BIN files)
// and Solidity sources into an ordered set consumed by the generator.
package artifact

import (
	"errors"
	"fmt"
)

// ErrArtifact indicates an artifact path is missing, unreadable or invalid.
var ErrArtifact = errors.New("artifact: invalid contract artifact")

// ArtifactError records the path that failed resolution.
type ArtifactError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ArtifactError) Error() string {
	return fmt.Sprintf("artifact %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// Is makes every ArtifactError match ErrArtifact.
func (e *ArtifactError) Is(target error) bool {
	return target == ErrArtifact
}
