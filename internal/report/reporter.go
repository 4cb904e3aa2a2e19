package report

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/epirus-io/epirus-cli/internal/core/project"
)

// Flow selects the success banner and follow-up commands.
type Flow string

// Reported flows.
const (
	FlowNew      Flow = "new"
	FlowImport   Flow = "import"
	FlowGenerate Flow = "generate"
	FlowJar      Flow = "jar"
)

// Messages printed by the reporter.
const (
	MsgProjectCreated   = "Project Created Successfully"
	MsgJarGenerated     = "JAR generated Successfully"
	MsgProjectGenerated = "Project generated Successfully"
	MsgFailed           = "Project generation Failed. Check log file for more information."
	MsgWrongPath        = "Please enter a correct file path containing Solidity code."
)

var (
	bannerSuccess = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}).
			Padding(0, 1)
	bannerFailure = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}).
			Background(lipgloss.AdaptiveColor{Light: "#FEF3C7", Dark: "#78350F"}).
			Padding(0, 1)
	instructionStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#38BDF8"})
	commandStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	headingStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
)

// LogSource is the run log shown on failure.
type LogSource interface {
	Contents() ([]byte, error)
	Path() string
}

// Instruction is one follow-up command with its description.
type Instruction struct {
	Command     string
	Description string
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithRestore sets the func that ends console redirection. It runs before
// anything is printed.
func WithRestore(restore func()) Option {
	return func(r *Reporter) { r.restore = restore }
}

// WithRunLog sets the run log printed on failure.
func WithRunLog(log LogSource) Option {
	return func(r *Reporter) { r.log = log }
}

// WithMarkdown renders instructions as markdown through glamour.
func WithMarkdown(enabled bool) Option {
	return func(r *Reporter) { r.markdown = enabled }
}

// WithNoColor prints without lipgloss styling.
func WithNoColor(noColor bool) Option {
	return func(r *Reporter) { r.noColor = noColor }
}

// WithGOOS sets the platform used for the gradle wrapper command.
func WithGOOS(goos string) Option {
	return func(r *Reporter) { r.goos = goos }
}

// Reporter prints the outcome of one run.
type Reporter struct {
	out      io.Writer
	flow     Flow
	restore  func()
	once     sync.Once
	log      LogSource
	markdown bool
	noColor  bool
	goos     string
	logger   *slog.Logger
}

// NewReporter creates a Reporter for flow writing to out.
func NewReporter(out io.Writer, flow Flow, logger *slog.Logger, opts ...Option) *Reporter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Reporter{out: out, flow: flow, goos: runtime.GOOS, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report prints the result and returns an *ExitError with code 1 for a
// failed run, nil otherwise.
func (r *Reporter) Report(result project.GenerationResult) error {
	r.restoreConsole()

	if !result.Success {
		r.printFailure()
		return &ExitError{Code: 1, Err: result.Err}
	}

	title, instructions := r.success(result)
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, r.style(bannerSuccess, title))
	_, _ = fmt.Fprintln(r.out)
	if len(instructions) > 0 {
		r.printInstructions(instructions)
	}
	return nil
}

// Fail reports an error raised outside the orchestrator, such as a failed
// artifact resolution, and returns an *ExitError with code 1.
func (r *Reporter) Fail(err error) error {
	return r.Report(project.GenerationResult{Err: err, FailureReason: project.KindOf(err)})
}

// WrongPath reports a Solidity path without sources.
func (r *Reporter) WrongPath() {
	r.restoreConsole()
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, r.style(bannerFailure, MsgWrongPath))
	_, _ = fmt.Fprintln(r.out)
}

func (r *Reporter) restoreConsole() {
	r.once.Do(func() {
		if r.restore != nil {
			r.restore()
		}
	})
}

func (r *Reporter) printFailure() {
	if r.log != nil {
		data, err := r.log.Contents()
		if err != nil {
			r.logger.Warn("read run log", "path", r.log.Path(), "error", err)
		} else {
			_, _ = r.out.Write(data)
		}
	}
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, r.style(bannerFailure, MsgFailed))
	_, _ = fmt.Fprintln(r.out)
}

// success returns the banner and follow-up commands of the flow.
func (r *Reporter) success(result project.GenerationResult) (string, []Instruction) {
	gradle := "./gradlew"
	if r.goos == "windows" {
		gradle = "./gradlew.bat"
	}

	switch r.flow {
	case FlowNew, FlowImport:
		return MsgProjectCreated, []Instruction{
			{Command: gradle + " run", Description: "Run your application manually"},
			{Command: "docker build -t " + strings.ToLower(lastElem(result.ProducedPath)) + " .", Description: "Build a docker image of your application"},
		}
	case FlowJar:
		return MsgJarGenerated, []Instruction{
			{Command: "java -jar " + result.ProducedPath, Description: "Run your Jar"},
		}
	default:
		return MsgProjectGenerated, nil
	}
}

func (r *Reporter) printInstructions(instructions []Instruction) {
	if r.markdown {
		out, err := renderMarkdown(instructions)
		if err == nil {
			_, _ = io.WriteString(r.out, out)
			return
		}
		r.logger.Debug("markdown rendering failed, printing plain", "error", err)
	}

	_, _ = fmt.Fprintln(r.out, r.style(headingStyle, "Commands"))
	for _, in := range instructions {
		_, _ = fmt.Fprintf(r.out, "%s%s\n",
			r.style(instructionStyle, fmt.Sprintf("%-40s", in.Command)),
			r.style(commandStyle, in.Description),
		)
	}
}

func (r *Reporter) style(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}

// Markdown returns the instructions as a markdown table.
func Markdown(instructions []Instruction) string {
	var b strings.Builder
	b.WriteString("## Commands\n\n| Command | Description |\n|---|---|\n")
	for _, in := range instructions {
		fmt.Fprintf(&b, "| `%s` | %s |\n", in.Command, in.Description)
	}
	return b.String()
}

func renderMarkdown(instructions []Instruction) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(Markdown(instructions))
}

func lastElem(path string) string {
	path = strings.TrimRight(strings.ReplaceAll(path, `\`, "/"), "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
