package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmunix/flicks/internal/events"
	"github.com/vmunix/flicks/internal/search"
)

// SearchCmd runs one search.
func SearchCmd(ctx context.Context, s *search.Searcher, query string, page int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		st, err := s.Search(ctx, query, page)
		return SearchDoneMsg{State: st, Err: err}
	}
}

// LeaveFavoritesCmd returns to the last search.
func LeaveFavoritesCmd(ctx context.Context, s *search.Searcher, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		st, err := s.LeaveFavorites(ctx)
		return SearchDoneMsg{State: st, Err: err}
	}
}

// DetailsCmd loads the details overlay for id.
func DetailsCmd(ctx context.Context, s *search.Searcher, id string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		d, err := s.Details(ctx, id)
		return DetailsDoneMsg{Detail: d, Err: err}
	}
}

// WaitForEventCmd waits for the next store change on ch. It yields nil once
// the channel is closed, which ends the subscription loop.
func WaitForEventCmd(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return StoreChangedMsg{Event: e}
	}
}
