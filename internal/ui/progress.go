package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// progressImpl implements the Progress interface.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress backed by the given theme and headless
// manager, writing to w. A nil w selects os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = os.Stdout
	}
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Spinner creates an indeterminate spinner. In headless mode, or when the
// output is not a terminal, it prints the titles as log lines.
func (p *progressImpl) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor || !IsTerminal(p.writer) {
		return newHeadlessSpinner(p.theme, title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title, p.writer)
}

// --- interactiveSpinner ---

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

// newInteractiveSpinner starts the program in its own goroutine. The
// program reads no input and leaves signal handling to the caller, so an
// interrupt reaches the caller's context.
func newInteractiveSpinner(theme *Theme, title string, w io.Writer, opts ...tea.ProgramOption) *interactiveSpinner {
	opts = append([]tea.ProgramOption{
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	}, opts...)
	p := tea.NewProgram(newSpinnerModel(theme, title), opts...)

	s := &interactiveSpinner{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return s
}

// SetTitle updates the spinner title.
func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop halts the spinner.
func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// --- headlessSpinner ---

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	theme   *Theme
	title   string
	writer  io.Writer
	mu      sync.Mutex
	stopped bool
}

// newHeadlessSpinner creates a headless spinner that prints the title.
func newHeadlessSpinner(theme *Theme, title string, w io.Writer) *headlessSpinner {
	s := &headlessSpinner{
		theme:  theme,
		title:  title,
		writer: w,
	}
	s.print()
	return s
}

// SetTitle updates the spinner title and prints a log line.
func (s *headlessSpinner) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || title == s.title {
		return
	}
	s.title = title
	s.print()
}

// Stop halts the spinner.
func (s *headlessSpinner) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

func (s *headlessSpinner) print() {
	_, _ = fmt.Fprintf(s.writer, "%s %s\n", s.theme.Muted.Render("..."), s.title)
}
