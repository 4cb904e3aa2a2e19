package logging

import (
	"io"
	"sync"
)

// Console is the writer every component uses for user-facing progress
// text. Redirect temporarily sends that text somewhere else, typically the
// run log, without touching os.Stdout.
type Console struct {
	mu     sync.Mutex
	target io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{target: w}
}

// Write sends p to the current target.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target.Write(p)
}

// Redirect sends subsequent writes to w until the returned restore func is
// called. restore puts back the target that was active before this call
// and is safe to call more than once.
func (c *Console) Redirect(w io.Writer) (restore func()) {
	c.mu.Lock()
	prev := c.target
	c.target = w
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			c.target = prev
			c.mu.Unlock()
		})
	}
}
