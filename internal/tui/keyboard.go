package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmunix/flicks/internal/render"
	"github.com/vmunix/flicks/internal/search"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.confirmClear {
		return m.handleConfirmKey(msg)
	}
	if m.detail.Open {
		return m.handleDetailKey(msg)
	}
	if m.focus == FocusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.setFocus(FocusSearch)
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil

	case key.Matches(msg, m.keys.Favorites):
		return m.toggleFavoritesView()

	case key.Matches(msg, m.keys.Clear):
		m.confirmClear = true
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		return m.turnPage(-1)

	case key.Matches(msg, m.keys.NextPage):
		return m.turnPage(1)
	}

	switch m.focus {
	case FocusResults:
		return m.handleResultsKey(msg)
	case FocusPagination:
		return m.handlePaginationKey(msg)
	case FocusRecent:
		return m.handleRecentKey(msg)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			// Rejected synchronously; no request is made.
			st, _ := m.searcher.Search(m.ctx, query, 1)
			m.state = st
			m.buttons = m.searcher.Pagination()
			m.pageCursor = activeButton(m.buttons)
			m.clampCursor()
			return m, nil
		}
		m.setFocus(FocusResults)
		return m, m.startSearch(query, 1)

	case key.Matches(msg, m.keys.Tab):
		m.setFocus(FocusResults)
		return m, nil

	case msg.Type == tea.KeyEsc:
		m.setFocus(FocusResults)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.state.Items)
	if n == 0 {
		return m, nil
	}
	cols := render.Columns(m.width)

	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(msg, m.keys.Right):
		m.cursor = min(n-1, m.cursor+1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < n {
			m.cursor += cols
		}

	case key.Matches(msg, m.keys.Favorite):
		_, st, err := m.searcher.ToggleFavorite(m.state.Items[m.cursor])
		if err != nil {
			m.state.Message = err.Error()
			m.state.IsError = true
			return m, nil
		}
		m.state = st
		m.clampCursor()

	case key.Matches(msg, m.keys.Enter):
		item := m.state.Items[m.cursor]
		m.detail = search.DetailState{Open: true, Phase: search.PhaseLoading, ID: item.ID, Message: search.MsgLoadingDetails}
		return m, DetailsCmd(m.ctx, m.searcher, item.ID, m.timeout)
	}
	return m, nil
}

func (m Model) handlePaginationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.buttons) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left, m.keys.Up):
		m.pageCursor = max(0, m.pageCursor-1)
	case key.Matches(msg, m.keys.Right, m.keys.Down):
		m.pageCursor = min(len(m.buttons)-1, m.pageCursor+1)
	case key.Matches(msg, m.keys.Enter):
		b := m.buttons[m.pageCursor]
		if !b.Selectable() || b.Active {
			return m, nil
		}
		return m, m.startSearch(m.state.Query, b.Page)
	}
	return m, nil
}

func (m Model) handleRecentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.queries) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left, m.keys.Up):
		m.chipCursor = max(0, m.chipCursor-1)
	case key.Matches(msg, m.keys.Right, m.keys.Down):
		m.chipCursor = min(len(m.queries)-1, m.chipCursor+1)
	case key.Matches(msg, m.keys.Enter):
		query := m.queries[min(m.chipCursor, len(m.queries)-1)]
		m.input.SetValue(query)
		m.chipCursor = 0
		m.setFocus(FocusResults)
		return m, m.startSearch(query, 1)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.searcher.CloseDetail()
		m.detail = search.DetailState{}
	case key.Matches(msg, m.keys.Favorite):
		if m.detail.Movie == nil {
			return m, nil
		}
		if _, err := m.searcher.ToggleDetailFavorite(); err != nil {
			m.detail.Message = err.Error()
			return m, nil
		}
		m.state = m.searcher.RefreshFavorites()
		m.clampCursor()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.confirmClear = false
		st, err := m.searcher.ClearFavorites()
		if err != nil {
			m.state.Message = err.Error()
			m.state.IsError = true
			return m, nil
		}
		m.loading = false
		m.applyState(st)
	case key.Matches(msg, m.keys.Deny):
		m.confirmClear = false
	}
	return m, nil
}

func (m Model) toggleFavoritesView() (tea.Model, tea.Cmd) {
	if m.state.ViewingFavorites {
		if m.state.Query == "" {
			m.loading = false
			st, _ := m.searcher.LeaveFavorites(m.ctx)
			m.applyState(st)
			return m, nil
		}
		m.state.Phase = search.PhaseLoading
		m.loading = true
		return m, tea.Batch(LeaveFavoritesCmd(m.ctx, m.searcher, m.timeout), m.spinner.Tick)
	}

	m.loading = false
	m.applyState(m.searcher.ShowFavorites())
	return m, nil
}

func (m Model) turnPage(delta int) (tea.Model, tea.Cmd) {
	st := m.state
	if st.ViewingFavorites || st.Query == "" || st.TotalPages <= 1 {
		return m, nil
	}
	page := st.Page + delta
	if page < 1 || page > st.TotalPages {
		return m, nil
	}
	return m, m.startSearch(st.Query, page)
}
