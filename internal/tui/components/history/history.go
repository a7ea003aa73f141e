package history

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/myday/internal/models"
)

// OpenDayMsg asks the main model to show a day.
type OpenDayMsg struct {
	Date string
}

type Item struct {
	Entry   models.JournalEntry
	Excerpt string
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s", i.Entry.Mood.Emoji(), i.Entry.Date)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d/%d to-dos", i.Entry.CompletedTodos(), len(i.Entry.Todos))
	if i.Entry.Analyzed() {
		desc += " | ✦ insights"
	}
	if i.Excerpt != "" {
		desc += " | " + i.Excerpt
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.Date + " " + i.Entry.Text }

type Model struct {
	list  list.Model
	open  key.Binding
	trunc func(string) string
}

// New builds the history list. trunc shortens entry text for the description line.
func New(entries []models.JournalEntry, trunc func(string) string, width, height int) Model {
	m := Model{
		open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open day"),
		),
		trunc: trunc,
	}
	l := list.New(m.items(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{m.open} }
	m.list = l
	return m
}

func (m Model) items(entries []models.JournalEntry) []list.Item {
	out := make([]list.Item, len(entries))
	for i, e := range entries {
		excerpt := e.Text
		if m.trunc != nil {
			excerpt = m.trunc(e.Text)
		}
		out[i] = Item{Entry: e, Excerpt: excerpt}
	}
	return out
}

// SetEntries replaces the list, newest first as given.
func (m *Model) SetEntries(entries []models.JournalEntry) {
	m.list.SetItems(m.items(entries))
}

// Filtering reports whether the user is typing a filter.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		if key.Matches(msg, m.open) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenDayMsg{Date: i.Entry.Date} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No entries yet.\n  Press 'e' on the Entry tab to write one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
