package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateEntry:
		content = m.styles.Doc.Render(m.entryView.View())
	case StateTodos:
		content = m.styles.Doc.Render(m.todoList.View())
	case StateHistory:
		content = m.styles.Doc.Render(m.history.View())
	case StateCompose, StateAddTodo, StateConfirmDelete:
		content = m.styles.Doc.Render(m.form.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active >= tabCount {
		active = m.prevState
	}

	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, m.styles.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(title))
		}
	}
	tabs = append(tabs, m.styles.Muted.Render("  "+m.date))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	switch {
	case m.busy != "":
		return m.spinner.View() + " " + m.styles.Accent.Render(m.busy)
	case m.status == "":
		return ""
	case m.statusErr:
		return m.styles.Danger.Render(m.status)
	default:
		return m.styles.Secondary.Render(m.status)
	}
}
