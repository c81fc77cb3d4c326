// Package tui is the interactive terminal front end.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vmunix/flicks/internal/events"
	"github.com/vmunix/flicks/internal/recent"
	"github.com/vmunix/flicks/internal/render"
	"github.com/vmunix/flicks/internal/search"
)

// DefaultTimeout bounds each OMDb call made from the UI.
const DefaultTimeout = 15 * time.Second

// Focus is the pane receiving keyboard input.
type Focus int

const (
	FocusSearch Focus = iota
	FocusResults
	FocusPagination
	FocusRecent
	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusResults:
		return "results"
	case FocusPagination:
		return "pagination"
	case FocusRecent:
		return "recent"
	default:
		return "search"
	}
}

// Deps are the services the model drives.
type Deps struct {
	Context  context.Context // parent of every request; defaults to Background
	Searcher *search.Searcher
	Recent   *recent.Store
	Bus      *events.Bus
	Timeout  time.Duration
	Theme    *render.Theme
}

// Model is the Bubble Tea model.
type Model struct {
	ctx      context.Context
	searcher *search.Searcher
	recent   *recent.Store
	sub      <-chan events.Event
	timeout  time.Duration

	theme   render.Theme
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model

	state   search.State
	detail  search.DetailState
	buttons []search.Button
	queries []string

	focus        Focus
	cursor       int // selected card
	pageCursor   int // focused pagination button
	chipCursor   int // focused recent chip
	loading      bool
	confirmClear bool

	width  int
	height int
}

// New builds the model and subscribes to store changes on the bus.
func New(d Deps) Model {
	ctx := d.Context
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	theme := render.DefaultTheme()
	if d.Theme != nil {
		theme = *d.Theme
	}

	ti := textinput.New()
	ti.Placeholder = "Search movies by title..."
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = theme.Accent
	ti.PlaceholderStyle = theme.Dim
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.Accent),
	)

	var sub <-chan events.Event
	if d.Bus != nil {
		sub = d.Bus.SubscribeAll(16)
	}

	return Model{
		ctx:      ctx,
		searcher: d.Searcher,
		recent:   d.Recent,
		sub:      sub,
		timeout:  timeout,
		theme:    theme,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    ti,
		spinner:  sp,
		state:    d.Searcher.State(),
		queries:  d.Recent.All(),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, WaitForEventCmd(m.sub))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-10)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case SearchDoneMsg:
		if errors.Is(msg.Err, search.ErrSuperseded) {
			return m, nil
		}
		m.loading = false
		m.applyState(msg.State)
		return m, nil

	case DetailsDoneMsg:
		if errors.Is(msg.Err, search.ErrSuperseded) {
			return m, nil
		}
		m.detail = msg.Detail
		return m, nil

	case StoreChangedMsg:
		m.queries = m.recent.All()
		m.state = m.searcher.RefreshFavorites()
		m.clampCursor()
		return m, WaitForEventCmd(m.sub)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == FocusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyState installs a new result snapshot and resets the cursors.
func (m *Model) applyState(st search.State) {
	m.state = st
	m.queries = m.recent.All()
	m.buttons = m.searcher.Pagination()
	m.cursor = 0
	m.pageCursor = activeButton(m.buttons)
	if !st.ViewingFavorites && st.Query != "" {
		m.input.SetValue(st.Query)
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Items) {
		m.cursor = max(0, len(m.state.Items)-1)
	}
}

func activeButton(buttons []search.Button) int {
	for i, b := range buttons {
		if b.Active {
			return i
		}
	}
	return 0
}

// startSearch marks the result area as loading and issues the request.
func (m *Model) startSearch(query string, page int) tea.Cmd {
	m.state.Phase = search.PhaseLoading
	m.loading = true
	return tea.Batch(
		SearchCmd(m.ctx, m.searcher, query, page, m.timeout),
		m.spinner.Tick,
	)
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == FocusSearch {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// State returns the displayed result snapshot.
func (m Model) State() search.State { return m.state }

// Detail returns the details overlay snapshot.
func (m Model) Detail() search.DetailState { return m.detail }

// FocusedPane returns the pane receiving input.
func (m Model) FocusedPane() Focus { return m.focus }

// Loading reports whether a search is in flight.
func (m Model) Loading() bool { return m.loading }

// Confirming reports whether the clear-favorites prompt is shown.
func (m Model) Confirming() bool { return m.confirmClear }

// Cursor returns the selected card index.
func (m Model) Cursor() int { return m.cursor }

func (m Model) centered(s string) string {
	return lipgloss.Place(m.width, max(lipgloss.Height(s), m.height-2), lipgloss.Center, lipgloss.Center, s)
}
