package ui

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// newTestProgram creates a tea.Program that needs no TTY.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

// startTestBar runs a terminal bar on a TTY-free program and returns a
// channel closed when the program exits.
func startTestBar(title string, total int) (*terminalBar, <-chan struct{}) {
	p := newTestProgram(newBarModel(testTheme(), barState{title: title, total: total}))
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	time.Sleep(10 * time.Millisecond)
	return &terminalBar{program: p}, done
}

func waitForProgram(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 seconds")
	}
}

func TestTerminalBarStages(t *testing.T) {
	bar, done := startTestBar("compile (1/3)", 3)

	bar.Increment(1)
	bar.SetTitle("generate (2/3)")
	bar.Increment(0)
	bar.Increment(1)
	bar.Done()

	waitForProgram(t, done)
}

func TestTerminalBarDoneIdempotent(t *testing.T) {
	bar, done := startTestBar("build (1/1)", 1)

	bar.Done()
	bar.Done()

	waitForProgram(t, done)
}

func TestBarModelUpdate(t *testing.T) {
	m := newBarModel(testTheme(), barState{title: "compile", total: 2})

	next, _ := m.Update(barStepMsg(5))
	m = next.(barModel)
	if m.state.current != 2 {
		t.Errorf("current = %d, want clamped to 2", m.state.current)
	}

	next, _ = m.Update(barTitleMsg("generate"))
	m = next.(barModel)
	if !strings.Contains(m.View(), "[2/2] generate") {
		t.Errorf("View() = %q", m.View())
	}

	next, cmd := m.Update(barDoneMsg{})
	m = next.(barModel)
	if !m.done || cmd == nil {
		t.Error("barDoneMsg should finish the bar and quit")
	}
	if m.View() != "" {
		t.Errorf("View() after done = %q, want empty", m.View())
	}
}

func TestBarModelFrameWithColorTheme(t *testing.T) {
	m := newBarModel(NewTheme(ThemeConfig{Mode: "dark"}), barState{title: "frame", total: 10})
	next, _ := m.Update(progress.FrameMsg{})
	if next.(barModel).done {
		t.Error("FrameMsg should not finish the bar")
	}
}

func TestBarStateRatio(t *testing.T) {
	tests := []struct {
		state barState
		want  float64
	}{
		{barState{current: 0, total: 0}, 0},
		{barState{current: 1, total: 4}, 0.25},
		{barState{current: 4, total: 4}, 1},
	}
	for _, tt := range tests {
		if got := tt.state.ratio(); got != tt.want {
			t.Errorf("ratio(%d/%d) = %v, want %v", tt.state.current, tt.state.total, got, tt.want)
		}
	}
}

func testTheme() *Theme {
	return NewTheme(ThemeConfig{NoColor: true})
}
