package tui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type taskDoneMsg struct{ err error }

type spinnerModel struct {
	spinner spinner.Model
	title   string
	run     func() error
	cancel  context.CancelFunc
	err     error
	done    bool
}

func (m spinnerModel) Init() tea.Cmd {
	run := m.run
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return taskDoneMsg{err: run()} })
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.cancel()
			m.err = context.Canceled
			m.done = true
			return m, tea.Quit
		}
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

// RunWithSpinner runs fn while showing a spinner on out (stderr when nil).
// Pressing ctrl+c or esc cancels fn's context and returns context.Canceled
// without waiting for fn.
func RunWithSpinner(ctx context.Context, title string, st Styles, out io.Writer, fn func(ctx context.Context) error) error {
	if out == nil {
		out = os.Stderr
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.Accent

	m := spinnerModel{
		spinner: s,
		title:   title,
		run:     func() error { return fn(ctx) },
		cancel:  cancel,
	}

	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(out)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if fm, ok := final.(spinnerModel); ok && fm.done {
		return fm.err
	}
	return context.Canceled
}
