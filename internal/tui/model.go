package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/myday/internal/datekey"
	"github.com/julianstephens/myday/internal/gateway"
	"github.com/julianstephens/myday/internal/journal"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/tui/components/entryview"
	"github.com/julianstephens/myday/internal/tui/components/history"
	"github.com/julianstephens/myday/internal/tui/components/todolist"
)

type SessionState int

const (
	StateEntry SessionState = iota
	StateTodos
	StateHistory
	StateCompose
	StateAddTodo
	StateConfirmDelete
)

const tabCount = 3

var tabTitles = []string{"Entry", "To-dos", "History"}

// GatewayFactory builds the AI gateway on first use, so browsing and writing
// work without an API key.
type GatewayFactory func() (gateway.Gateway, error)

type Options struct {
	Store    *journal.Store
	Date     string
	Timezone string
	Theme    models.Theme
	Gateway  GatewayFactory
	Context  context.Context
}

// insightsMsg and tipsMsg carry a gateway result back to the date that was
// current when the call started.
type insightsMsg struct {
	date     string
	insights models.Insights
	err      error
}

type tipsMsg struct {
	date string
	tips []string
	err  error
}

type Model struct {
	ctx          context.Context
	store        *journal.Store
	newGateway   GatewayFactory
	gw           gateway.Gateway
	timezone     string
	date         string
	state        SessionState
	prevState    SessionState
	keys         KeyMap
	help         help.Model
	styles       Styles
	entryView    entryview.Model
	todoList     todolist.Model
	history      history.Model
	spinner      spinner.Model
	form         *huh.Form
	composeForm  *ComposeFormModel
	todoText     string
	confirmed    bool
	todoToDelete string
	busy         string
	tips         []string
	tipsDate     string
	status       string
	statusErr    bool
	quitting     bool
	width        int
	height       int
}

func NewModel(opts Options) Model {
	date := opts.Date
	if date == "" {
		date, _ = datekey.Today(opts.Timezone)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	styles := NewStyles(opts.Theme)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Accent

	m := Model{
		ctx:        ctx,
		store:      opts.Store,
		newGateway: opts.Gateway,
		timezone:   opts.Timezone,
		date:       date,
		state:      StateEntry,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     styles,
		entryView:  entryview.New(0, 0),
		todoList:   todolist.New(nil, 0, 0),
		history:    history.New(nil, func(s string) string { return Excerpt(s, 40) }, 0, 0),
		spinner:    sp,
	}
	m.refresh()
	return m
}

// Run starts the full-screen journal browser.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Date returns the day being shown.
func (m Model) Date() string {
	return m.date
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.PrevDay, m.keys.NextDay, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateEntry:
		keys = append(keys, m.keys.Write, m.keys.Analyze, m.keys.Suggest)
	case StateTodos:
		tk := m.todoList.Keys()
		keys = append(keys, tk.Add, tk.Toggle, tk.Delete)
	case StateHistory:
		keys = append(keys, m.keys.Enter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	days := []key.Binding{m.keys.PrevDay, m.keys.NextDay, m.keys.Today}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateEntry:
		actions = []key.Binding{m.keys.Write, m.keys.Analyze, m.keys.Suggest}
	case StateTodos:
		tk := m.todoList.Keys()
		actions = []key.Binding{tk.Add, tk.Toggle, tk.Delete}
	}

	return [][]key.Binding{global, days, navigation, actions}
}

// refresh re-renders every pane from the store.
func (m *Model) refresh() {
	entry := m.store.Get(m.date)

	content := RenderEntry(entry, m.styles)
	if m.tipsDate == m.date && m.tips != nil {
		content += RenderTips(m.tips, m.styles)
	}
	m.entryView.SetContent(content)
	m.todoList.SetTodos(entry.Todos)

	keys := m.store.Keys()
	slices.Reverse(keys)
	entries := make([]models.JournalEntry, len(keys))
	for i, k := range keys {
		entries[i] = m.store.Get(k)
	}
	m.history.SetEntries(entries)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// commit persists the store after an edit.
func (m *Model) commit() {
	if err := m.store.Commit(); err != nil {
		m.setStatus("Could not save: "+err.Error(), true)
	}
}

func (m *Model) resolveGateway() (gateway.Gateway, error) {
	if m.gw != nil {
		return m.gw, nil
	}
	if m.newGateway == nil {
		return nil, gateway.ErrMissingAPIKey
	}
	gw, err := m.newGateway()
	if err != nil {
		return nil, err
	}
	m.gw = gw
	return gw, nil
}

func analyzeCmd(ctx context.Context, gw gateway.Gateway, date, text string) tea.Cmd {
	return func() tea.Msg {
		insights, err := gw.Analyze(ctx, text)
		return insightsMsg{date: date, insights: insights, err: err}
	}
}

func suggestCmd(ctx context.Context, gw gateway.Gateway, date, text string) tea.Cmd {
	return func() tea.Msg {
		tips, err := gw.Suggest(ctx, text)
		return tipsMsg{date: date, tips: tips, err: err}
	}
}
