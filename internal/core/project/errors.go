// Package project implements the scaffold and generation pipeline of
// epirus: input validation, the output directory lifecycle, template
// scaffolding and the staged orchestration of compiler, code generator and
// build tool.
package project

import (
	"errors"
	"fmt"

	"github.com/epirus-io/epirus-cli/internal/artifact"
)

// Sentinel errors for the project package.
var (
	// ErrValidation indicates the project or package name is invalid.
	ErrValidation = errors.New("project: invalid input")

	// ErrArtifact indicates a contract artifact could not be resolved.
	ErrArtifact = artifact.ErrArtifact

	// ErrConflict indicates the output directory exists and may not be
	// overwritten.
	ErrConflict = errors.New("project: output already exists")

	// ErrCompile indicates the Solidity compiler failed.
	ErrCompile = errors.New("project: compilation failed")

	// ErrGenerate indicates scaffolding or code generation failed.
	ErrGenerate = errors.New("project: generation failed")

	// ErrBuild indicates a build task or packaging failed.
	ErrBuild = errors.New("project: build failed")

	// ErrCleanup indicates partial output could not be removed.
	ErrCleanup = errors.New("project: cleanup failed")
)

// ErrorKind classifies a pipeline failure.
type ErrorKind int

// Error kinds, one per sentinel error.
const (
	KindNone ErrorKind = iota
	KindValidation
	KindArtifact
	KindConflict
	KindCompile
	KindGenerate
	KindBuild
	KindCleanup
)

var kindNames = map[ErrorKind]string{
	KindNone:       "none",
	KindValidation: "validation",
	KindArtifact:   "artifact",
	KindConflict:   "conflict",
	KindCompile:    "compile",
	KindGenerate:   "generate",
	KindBuild:      "build",
	KindCleanup:    "cleanup",
}

// String returns the lowercase kind name.
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel returns the sentinel error of the kind, nil for KindNone.
func (k ErrorKind) Sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindArtifact:
		return ErrArtifact
	case KindConflict:
		return ErrConflict
	case KindCompile:
		return ErrCompile
	case KindGenerate:
		return ErrGenerate
	case KindBuild:
		return ErrBuild
	case KindCleanup:
		return ErrCleanup
	default:
		return nil
	}
}

// StageError is a failure of one pipeline stage.
type StageError struct {
	Stage StageName
	Kind  ErrorKind
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the stage's kind.
func (e *StageError) Is(target error) bool {
	s := e.Kind.Sentinel()
	return s != nil && target == s
}

// CleanupError reports a path that could not be removed at exit.
type CleanupError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CleanupError) Error() string {
	return fmt.Sprintf("remove %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CleanupError) Unwrap() error {
	return e.Err
}

// Is matches ErrCleanup.
func (e *CleanupError) Is(target error) bool {
	return target == ErrCleanup
}

// KindOf classifies err. A StageError reports its own kind; otherwise the
// first matching sentinel wins.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var se *StageError
	if errors.As(err, &se) {
		return se.Kind
	}
	for _, k := range []ErrorKind{KindValidation, KindArtifact, KindConflict, KindCompile, KindGenerate, KindBuild, KindCleanup} {
		if errors.Is(err, k.Sentinel()) {
			return k
		}
	}
	return KindNone
}
