package ui

import (
	"maps"
	"os"

	"github.com/mattn/go-isatty"
)

// Default keys understood by the epirus prompts in headless mode.
const (
	KeySolidityPath = "solidity_path"
	KeyOverwrite    = "overwrite"
)

// HeadlessManager decides whether prompts and progress indicators may use
// the terminal, and holds the answers used when they may not.
type HeadlessManager struct {
	forced   *bool
	stdin    *os.File
	defaults map[string]string
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{stdin: os.Stdin}
}

// IsHeadless reports whether the UI must run without a terminal. A forced
// value wins over TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	fd := h.stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ForceHeadless overrides TTY detection. Pass true for headless mode (the
// non_interactive config setting), false to force interactive mode.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// SetDefaults stores the answers used in headless mode, keyed by the
// Key* constants.
func (h *HeadlessManager) SetDefaults(defaults map[string]string) {
	if len(defaults) == 0 {
		h.defaults = nil
		return
	}
	h.defaults = make(map[string]string, len(defaults))
	maps.Copy(h.defaults, defaults)
}

// GetDefault retrieves a default value by key.
func (h *HeadlessManager) GetDefault(key string) (string, bool) {
	if h.defaults == nil {
		return "", false
	}
	v, ok := h.defaults[key]
	return v, ok
}
