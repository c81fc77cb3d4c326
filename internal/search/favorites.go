package search

import (
	"context"
	"fmt"

	"github.com/vmunix/flicks/internal/favorites"
	"github.com/vmunix/flicks/internal/omdb"
)

// ShowFavorites switches the result area to the favorites view. Any search
// still in flight is superseded.
func (s *Searcher) ShowFavorites() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.showFavoritesLocked()
	return s.state.clone()
}

// RefreshFavorites re-renders the favorites view after the store changed.
// Outside the favorites view it returns the state unchanged.
func (s *Searcher) RefreshFavorites() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ViewingFavorites {
		s.showFavoritesLocked()
	}
	return s.state.clone()
}

func (s *Searcher) showFavoritesLocked() {
	records := s.favorites.All()
	items := make([]omdb.Item, len(records))
	for i, r := range records {
		items[i] = r.Item()
	}

	st := State{
		Phase:            PhaseLoaded,
		Query:            s.state.Query,
		Page:             s.state.Page,
		TotalResults:     s.state.TotalResults,
		TotalPages:       s.state.TotalPages,
		Items:            items,
		ViewingFavorites: true,
		Favorites:        records,
	}
	if len(records) == 0 {
		st.Message = MsgNoFavorites
		st.IsError = true
	} else {
		st.Message = fmt.Sprintf("%d favorite(s)", len(records))
	}
	s.state = st
}

// LeaveFavorites returns from the favorites view to the last search,
// re-running it, or to the initial prompt when nothing was searched yet.
func (s *Searcher) LeaveFavorites(ctx context.Context) (State, error) {
	s.mu.Lock()
	query, page := s.state.Query, s.state.Page
	if query == "" {
		s.seq++
		s.state = State{Phase: PhaseIdle, Message: MsgBegin}
		st := s.state.clone()
		s.mu.Unlock()
		return st, nil
	}
	s.mu.Unlock()

	return s.Search(ctx, query, page)
}

// ToggleFavorite flips the favorite status of item and reports whether it
// is now a favorite. In the favorites view the list is refreshed.
func (s *Searcher) ToggleFavorite(item omdb.Item) (bool, State, error) {
	added, err := s.favorites.Toggle(item)
	if err != nil {
		return added, s.State(), fmt.Errorf("toggle favorite %s: %w", item.ID, err)
	}
	return added, s.RefreshFavorites(), nil
}

// ClearFavorites removes every favorite and shows the (now empty) favorites
// view. With nothing to clear only the message changes.
func (s *Searcher) ClearFavorites() (State, error) {
	if s.favorites.Count() == 0 {
		s.mu.Lock()
		s.state.Message = MsgNothingToClear
		s.state.IsError = true
		st := s.state.clone()
		s.mu.Unlock()
		return st, nil
	}

	if _, err := s.favorites.Clear(); err != nil {
		return s.State(), fmt.Errorf("clear favorites: %w", err)
	}
	return s.ShowFavorites(), nil
}

// IsFavorite reports whether id is a favorite.
func (s *Searcher) IsFavorite(id string) bool {
	return s.favorites.Has(id)
}

// FavoriteCount returns the number of favorites.
func (s *Searcher) FavoriteCount() int {
	return s.favorites.Count()
}

// Favorites exposes the underlying store.
func (s *Searcher) Favorites() *favorites.Store {
	return s.favorites
}
