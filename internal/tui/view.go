package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vmunix/flicks/internal/search"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.detail.Open {
		return m.centered(m.renderDetail()) + "\n" + m.help.View(m.keys)
	}

	t := m.theme
	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Title.Render("flicks"),
		"  ",
		t.FavoritesBadge(m.searcher.FavoriteCount(), m.state.ViewingFavorites),
	)
	b.WriteString(header + "\n\n")
	b.WriteString(m.input.View() + "\n")

	if chips := m.renderRecent(); chips != "" {
		b.WriteString(chips + "\n")
	}
	b.WriteString("\n")

	if m.confirmClear {
		b.WriteString(t.Error.Render("Clear all favorites? (y/n)") + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " " + t.Dim.Render("Searching...") + "\n")
	default:
		if msg := t.Message(m.state.Message, m.state.IsError); msg != "" {
			b.WriteString(msg + "\n")
		}
	}
	b.WriteString("\n")

	selected := -1
	if m.focus == FocusResults {
		selected = m.cursor
	}
	if m.state.ViewingFavorites {
		b.WriteString(t.FavoritesGrid(m.state.Favorites, selected, m.width))
	} else if m.state.Phase != search.PhaseLoading || len(m.state.Items) > 0 {
		b.WriteString(t.Grid(m.state.Items, m.searcher.IsFavorite, selected, m.width))
	}
	b.WriteString("\n")

	if !m.state.ViewingFavorites && len(m.buttons) > 0 {
		focused := -1
		if m.focus == FocusPagination {
			focused = m.pageCursor
		}
		b.WriteString("\n" + t.Pagination(m.buttons, focused) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) renderRecent() string {
	selected := -1
	if m.focus == FocusRecent {
		selected = m.chipCursor
	}
	return m.theme.RecentChips(m.queries, selected)
}

func (m Model) renderDetail() string {
	t := m.theme
	d := m.detail
	switch d.Phase {
	case search.PhaseLoaded:
		if d.Movie == nil {
			return t.DetailsMessage(search.MsgDetailsNotFound, true)
		}
		return t.Details(d.Movie, m.searcher.IsFavorite(d.Movie.ID), min(m.width-4, 80))
	case search.PhaseError:
		return t.DetailsMessage(d.Message, true)
	default:
		return t.DetailsMessage(search.MsgLoadingDetails, false)
	}
}
