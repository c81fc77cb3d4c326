package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vmunix/flicks/internal/favorites"
	"github.com/vmunix/flicks/internal/omdb"
)

// Detail returns a snapshot of the details overlay.
func (s *Searcher) Detail() DetailState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detail
}

// CloseDetail dismisses the overlay. A lookup still in flight is superseded.
func (s *Searcher) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.detailSeq++
	s.detail = DetailState{}
}

// Details opens the overlay for id and fills it from the cache or OMDb.
// Error semantics mirror Search: *omdb.APIError ("Details not found" when
// OMDb gives no reason), ErrNetwork, or ErrSuperseded.
func (s *Searcher) Details(ctx context.Context, id string) (DetailState, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return s.Detail(), ErrMissingID
	}

	s.mu.Lock()
	s.detailSeq++
	seq := s.detailSeq

	if movie, ok := s.cachedDetail(id); ok {
		s.detail = DetailState{Open: true, Phase: PhaseLoaded, ID: id, Movie: movie, FromCache: true}
		d := s.detail
		s.mu.Unlock()
		s.log.Debug("details served from cache", "id", id)
		return d, nil
	}

	s.detail = DetailState{Open: true, Phase: PhaseLoading, ID: id, Message: MsgLoadingDetails}
	s.mu.Unlock()

	movie, err := s.api.Movie(ctx, id)
	if err == nil {
		s.storeDetail(id, movie)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.detailSeq {
		s.log.Debug("discarding superseded details", "id", id)
		return s.detail, ErrSuperseded
	}

	var apiErr *omdb.APIError
	switch {
	case err == nil:
		s.detail = DetailState{Open: true, Phase: PhaseLoaded, ID: id, Movie: movie}
	case errors.As(err, &apiErr):
		msg := apiErr.Message
		if msg == "" {
			msg = MsgDetailsNotFound
		}
		s.detail = DetailState{Open: true, Phase: PhaseError, ID: id, Message: msg}
		s.log.Warn("details rejected", "id", id, "error", err)
	default:
		s.detail = DetailState{Open: true, Phase: PhaseError, ID: id, Message: MsgDetailsNetwork}
		err = fmt.Errorf("%w: %w", ErrNetwork, err)
		s.log.Warn("details failed", "id", id, "error", err)
	}
	return s.detail, err
}

// ToggleDetailFavorite flips the favorite status of the movie shown in the
// overlay, storing the record built from the full details. It reports
// whether the movie is now a favorite.
func (s *Searcher) ToggleDetailFavorite() (bool, error) {
	d := s.Detail()
	if d.Movie == nil {
		return false, ErrMissingID
	}

	var err error
	added := !s.favorites.Has(d.Movie.ID)
	if added {
		err = s.favorites.Add(favorites.FromItem(d.Movie.Item()))
	} else {
		err = s.favorites.Remove(d.Movie.ID)
	}
	if err != nil {
		return !added, fmt.Errorf("toggle favorite %s: %w", d.Movie.ID, err)
	}
	s.RefreshFavorites()
	return added, nil
}

func (s *Searcher) cachedDetail(id string) (*omdb.Movie, bool) {
	raw, ok := s.cache.GetDetail(id)
	if !ok {
		return nil, false
	}
	var movie omdb.Movie
	if err := json.Unmarshal(raw, &movie); err != nil {
		s.log.Warn("ignoring undecodable cached details", "id", id, "error", err)
		return nil, false
	}
	return &movie, true
}

func (s *Searcher) storeDetail(id string, movie *omdb.Movie) {
	payload, err := json.Marshal(movie)
	if err == nil {
		err = s.cache.SetDetail(id, payload)
	}
	if err != nil {
		s.log.Warn("cache write failed", "id", id, "error", err)
	}
}
