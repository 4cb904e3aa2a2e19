package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const barWidth = 40

// barState is the position of a bar, shared by both renderings.
type barState struct {
	title   string
	current int
	total   int
}

func (s *barState) advance(n int) {
	s.current = min(s.current+n, s.total)
}

func (s *barState) complete() {
	s.current = s.total
}

func (s barState) ratio() float64 {
	if s.total <= 0 {
		return 0
	}
	return float64(s.current) / float64(s.total)
}

func (s barState) String() string {
	return fmt.Sprintf("[%d/%d] %s", s.current, s.total, s.title)
}

// barFactory implements Progress.
type barFactory struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress backed by the given theme and headless
// manager. Line output goes to w, or os.Stdout when w is nil.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = os.Stdout
	}
	return &barFactory{theme: theme, headless: hm, writer: w}
}

// Start creates a bar of total steps. Headless or colorless runs get a
// line bar that prints every change of position.
func (f *barFactory) Start(title string, total int) ProgressBar {
	state := barState{title: title, total: total}
	if f.headless.IsHeadless() || f.theme.NoColor {
		return &lineBar{state: state, w: f.writer}
	}
	return startTerminalBar(f.theme, state)
}

// lineBar renders a bar as plain "[n/total] title" lines.
type lineBar struct {
	mu    sync.Mutex
	state barState
	w     io.Writer
	done  bool
}

func (b *lineBar) Increment(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.advance(n)
	_, _ = fmt.Fprintln(b.w, b.state)
}

func (b *lineBar) SetTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.title = title
}

// Done prints the completed bar once.
func (b *lineBar) Done() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return
	}
	b.done = true
	b.state.complete()
	_, _ = fmt.Fprintln(b.w, b.state)
}

type (
	barStepMsg  int
	barTitleMsg string
	barDoneMsg  struct{}
)

// barModel is the bubbletea model of the animated stage bar.
type barModel struct {
	bar   progress.Model
	state barState
	done  bool
}

func newBarModel(theme *Theme, state barState) barModel {
	gradient := progress.WithDefaultGradient()
	if !theme.NoColor {
		gradient = progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary)
	}
	return barModel{bar: progress.New(gradient, progress.WithWidth(barWidth)), state: state}
}

func (m barModel) Init() tea.Cmd {
	return nil
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case barStepMsg:
		m.state.advance(int(msg))
	case barTitleMsg:
		m.state.title = string(msg)
	case barDoneMsg:
		m.state.complete()
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m barModel) View() string {
	if m.done {
		return ""
	}
	return m.bar.ViewAs(m.state.ratio()) + " " + m.state.String() + "\n"
}

// terminalBar drives a barModel program running in the background.
type terminalBar struct {
	program *tea.Program
	once    sync.Once
}

// startTerminalBar runs the bar program. Done must be called to release it.
func startTerminalBar(theme *Theme, state barState) *terminalBar {
	p := tea.NewProgram(newBarModel(theme, state))
	go func() {
		_, _ = p.Run()
	}()
	return &terminalBar{program: p}
}

func (b *terminalBar) Increment(n int) {
	b.program.Send(barStepMsg(n))
}

func (b *terminalBar) SetTitle(title string) {
	b.program.Send(barTitleMsg(title))
}

// Done completes the bar and waits for the program to exit.
func (b *terminalBar) Done() {
	b.once.Do(func() {
		b.program.Send(barDoneMsg{})
		b.program.Wait()
	})
}
