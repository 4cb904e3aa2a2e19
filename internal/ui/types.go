// Package ui provides the terminal interaction layer of epirus: headless
// detection, huh confirmation and input prompts, and a bubbletea stage bar
// that falls back to plain log lines without a TTY.
package ui

// Progress creates progress bars.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Prompt asks the user for confirmation or free-form input.
type Prompt interface {
	// Confirm asks a yes/no question. In headless mode it returns the
	// stored default for the question, or false.
	Confirm(label string, defaultVal bool) (bool, error)

	// Input asks for a line of text. In headless mode it returns the stored
	// default for the label key, or ErrHeadlessNoDefaults.
	Input(label string, opts ...InputOption) (string, error)
}

// InputOption configures an Input prompt.
type InputOption func(*inputConfig)

type inputConfig struct {
	placeholder string
	defaultVal  string
	key         string
	validate    func(string) error
}

// WithPlaceholder sets the placeholder shown in an empty input.
func WithPlaceholder(p string) InputOption {
	return func(c *inputConfig) { c.placeholder = p }
}

// WithDefault sets the value used when the input is left empty.
func WithDefault(v string) InputOption {
	return func(c *inputConfig) { c.defaultVal = v }
}

// WithKey sets the HeadlessManager default key consulted in headless mode.
func WithKey(key string) InputOption {
	return func(c *inputConfig) { c.key = key }
}

// WithValidation sets a validator run on every submitted value.
func WithValidation(fn func(string) error) InputOption {
	return func(c *inputConfig) { c.validate = fn }
}
