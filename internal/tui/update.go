package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/myday/internal/datekey"
	apperrors "github.com/julianstephens/myday/internal/errors"
	"github.com/julianstephens/myday/internal/journal"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/tui/components/history"
	"github.com/julianstephens/myday/internal/tui/components/todolist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Results arrive regardless of what the user is doing.
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case insightsMsg:
		m.busy = ""
		m.applyInsights(msg)
		return m, nil

	case tipsMsg:
		m.busy = ""
		if msg.err != nil {
			m.setStatus("Could not get suggestions: "+withHint(msg.err), true)
			return m, nil
		}
		m.tips = msg.tips
		m.tipsDate = msg.date
		m.setStatus("", false)
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.state {
	case StateCompose, StateAddTodo, StateConfirmDelete:
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case todolist.AddTodoMsg:
		m.todoText = ""
		return m.openForm(StateAddTodo, NewTodoForm(&m.todoText))

	case todolist.ToggleTodoMsg:
		if _, err := m.store.ToggleTodo(m.date, msg.ID); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.commit()
		m.refresh()
		return m, nil

	case todolist.DeleteTodoMsg:
		m.todoToDelete = msg.ID
		m.confirmed = false
		return m.openForm(StateConfirmDelete, NewConfirmForm("Delete \""+msg.Text+"\"?", &m.confirmed))

	case history.OpenDayMsg:
		m.setDate(msg.Date)
		m.state = StateEntry
		return m, nil

	case tea.KeyMsg:
		if m.state == StateHistory && m.history.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.PrevDay):
			m.shiftDate(-1)
			return m, nil
		case key.Matches(msg, m.keys.NextDay):
			m.shiftDate(1)
			return m, nil
		case key.Matches(msg, m.keys.Today):
			if today, err := datekey.Today(m.timezone); err == nil {
				m.setDate(today)
			}
			return m, nil
		}

		if m.state == StateEntry {
			switch {
			case key.Matches(msg, m.keys.Write):
				entry := m.store.Get(m.date)
				m.composeForm = &ComposeFormModel{Text: entry.Text, Mood: entry.Mood}
				return m.openForm(StateCompose, NewComposeForm(m.composeForm, m.date))
			case key.Matches(msg, m.keys.Analyze):
				return m.startGatewayCall(true)
			case key.Matches(msg, m.keys.Suggest):
				return m.startGatewayCall(false)
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateEntry:
		m.entryView, cmd = m.entryView.Update(msg)
	case StateTodos:
		m.todoList, cmd = m.todoList.Update(msg)
	case StateHistory:
		m.history, cmd = m.history.Update(msg)
	}
	return m, cmd
}

func (m Model) openForm(state SessionState, form *huh.Form) (tea.Model, tea.Cmd) {
	m.prevState = m.state
	m.state = state
	m.form = form
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.prevState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.state = m.prevState
		m.form = nil
		return m, nil
	case huh.StateAborted:
		m.state = m.prevState
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) applyForm() {
	switch m.state {
	case StateCompose:
		m.store.UpdateContent(m.date, m.composeForm.Content(), m.composeForm.Mood, journal.KeepImage())
		m.commit()
		m.setStatus("Entry saved.", false)
	case StateAddTodo:
		if _, err := m.store.AddTodo(m.date, m.todoText); err != nil {
			m.setStatus(err.Error(), true)
			return
		}
		m.commit()
	case StateConfirmDelete:
		if !m.confirmed {
			return
		}
		if err := m.store.DeleteTodo(m.date, m.todoToDelete); err != nil {
			m.setStatus(err.Error(), true)
			return
		}
		m.commit()
	}
	m.refresh()
}

// startGatewayCall captures the current date and text and sends them off.
// The result is merged into that date even if the user navigates away.
func (m Model) startGatewayCall(analyze bool) (tea.Model, tea.Cmd) {
	if m.busy != "" {
		return m, nil
	}
	text := m.store.Get(m.date).Text
	if err := models.ValidateEntryText(text); err != nil {
		m.setStatus("Please write an entry first.", true)
		return m, nil
	}
	gw, err := m.resolveGateway()
	if err != nil {
		m.setStatus(err.Error()+" (run 'myday key set')", true)
		return m, nil
	}

	m.setStatus("", false)
	if analyze {
		m.busy = "Analyzing your entry..."
		return m, tea.Batch(m.spinner.Tick, analyzeCmd(m.ctx, gw, m.date, text))
	}
	m.busy = "Finding wellness tips..."
	return m, tea.Batch(m.spinner.Tick, suggestCmd(m.ctx, gw, m.date, text))
}

func (m *Model) applyInsights(msg insightsMsg) {
	if msg.err == nil && !msg.insights.Complete() {
		msg.err = &apperrors.GatewayError{Op: "analyze", Err: errors.New("incomplete insights")}
	}
	if msg.err != nil {
		m.setStatus("Could not generate insights: "+withHint(msg.err), true)
		return
	}
	m.store.MergeInsights(msg.date, msg.insights)
	m.commit()
	if msg.date == m.date {
		m.setStatus("Insights ready.", false)
	} else {
		m.setStatus("Insights saved for "+msg.date+".", false)
	}
	m.refresh()
}

func withHint(err error) string {
	if hint := apperrors.Hint(err); hint != "" {
		return err.Error() + " (" + hint + ")"
	}
	return err.Error()
}

func (m *Model) shiftDate(days int) {
	if next, err := datekey.Shift(m.date, days); err == nil {
		m.setDate(next)
	}
}

func (m *Model) setDate(date string) {
	m.date = date
	m.status = ""
	m.refresh()
}

func (m *Model) resize() {
	// tabs, status line and help take the rest
	h := m.height - 6
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 1 {
		w = 1
	}
	m.entryView.SetSize(w, h)
	m.todoList.SetSize(w, h)
	m.history.SetSize(w, h)
}
