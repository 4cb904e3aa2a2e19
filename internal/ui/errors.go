package ui

import "errors"

var (
	// ErrCancelled indicates the user aborted a prompt.
	ErrCancelled = errors.New("ui: cancelled by user")

	// ErrHeadlessNoDefaults indicates a prompt ran in headless mode without
	// a stored default to answer it.
	ErrHeadlessNoDefaults = errors.New("ui: headless mode has no default for prompt")
)
