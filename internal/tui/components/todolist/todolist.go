package todolist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/myday/internal/models"
)

type AddTodoMsg struct{}

type ToggleTodoMsg struct {
	ID string
}

type DeleteTodoMsg struct {
	ID   string
	Text string
}

type Item struct {
	Todo  models.TodoItem
	Index int
}

func (i Item) Title() string {
	if i.Todo.Completed {
		return "✓ " + i.Todo.Text
	}
	return "○ " + i.Todo.Text
}

func (i Item) Description() string {
	status := "open"
	if i.Todo.Completed {
		status = "done"
	}
	return fmt.Sprintf("#%d | %s", i.Index+1, status)
}

func (i Item) FilterValue() string { return i.Todo.Text }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(todos []models.TodoItem, width, height int) Model {
	l := list.New(items(todos), list.NewDefaultDelegate(), width, height)
	l.Title = "To-dos"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered by the main model
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func items(todos []models.TodoItem) []list.Item {
	out := make([]list.Item, len(todos))
	for i, t := range todos {
		out[i] = Item{Todo: t, Index: i}
	}
	return out
}

// SetTodos replaces the list contents, keeping the cursor where possible.
func (m *Model) SetTodos(todos []models.TodoItem) {
	idx := m.list.Index()
	m.list.SetItems(items(todos))
	if idx >= len(todos) {
		idx = len(todos) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddTodoMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleTodoMsg{ID: i.Todo.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteTodoMsg{ID: i.Todo.ID, Text: i.Todo.Text} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No to-dos for this day.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
