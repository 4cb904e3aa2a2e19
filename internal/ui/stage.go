package ui

import (
	"fmt"
	"io"
	"sync"
)

// StageProgress reports pipeline stages on a progress bar. The bar is
// created on the first stage and completed when the last stage finishes or
// any stage fails.
type StageProgress struct {
	progress Progress
	writer   io.Writer

	mu   sync.Mutex
	bar  ProgressBar
	done bool
}

// NewStageProgress creates a StageProgress. Failures are echoed to w when
// it is non-nil.
func NewStageProgress(p Progress, w io.Writer) *StageProgress {
	return &StageProgress{progress: p, writer: w}
}

// StageStarted shows the stage as the current bar title.
func (s *StageProgress) StageStarted(name string, index, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return
	}
	title := fmt.Sprintf("%s (%d/%d)", name, index+1, total)
	if s.bar == nil {
		s.bar = s.progress.Start(title, total)
		return
	}
	s.bar.SetTitle(title)
}

// StageFinished advances the bar. A failed or final stage completes it.
func (s *StageProgress) StageFinished(name string, index, total int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done || s.bar == nil {
		return
	}
	if err != nil {
		s.bar.SetTitle(name + " failed")
		s.finish()
		if s.writer != nil {
			_, _ = fmt.Fprintf(s.writer, "%s failed: %v\n", name, err)
		}
		return
	}
	s.bar.Increment(1)
	if index+1 >= total {
		s.finish()
	}
}

// Close completes the bar if a run ended early.
func (s *StageProgress) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bar != nil {
		s.finish()
	}
}

func (s *StageProgress) finish() {
	if s.done {
		return
	}
	s.done = true
	s.bar.Done()
}
