// Package search drives query submission, pagination, details lookups and
// the favorites view, and owns the state the user-facing surfaces render.
package search

//go:generate mockgen -source=search.go -destination=mocks/mock_api.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/vmunix/flicks/internal/cache"
	"github.com/vmunix/flicks/internal/favorites"
	"github.com/vmunix/flicks/internal/omdb"
	"github.com/vmunix/flicks/internal/recent"
)

// DefaultResultsPerPage is the OMDb page size.
const DefaultResultsPerPage = 10

// API is the subset of the OMDb client the Searcher needs.
type API interface {
	Search(ctx context.Context, query string, page int) (*omdb.SearchResponse, error)
	Movie(ctx context.Context, id string) (*omdb.Movie, error)
}

// Searcher runs searches and detail lookups through the response cache and
// records their outcome in a State snapshot.
//
// Each search and each detail lookup takes a sequence number. A response is
// applied only while its number is still the latest, so a slow reply can
// never overwrite a newer one. Superseded successes are still cached.
type Searcher struct {
	api       API
	cache     *cache.Cache
	recent    *recent.Store
	favorites *favorites.Store
	perPage   int
	log       *slog.Logger

	mu        sync.Mutex
	seq       uint64
	detailSeq uint64
	state     State
	detail    DetailState
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithResultsPerPage sets the page size used to compute total pages.
func WithResultsPerPage(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.perPage = n
		}
	}
}

// NewSearcher creates a Searcher in the idle state.
func NewSearcher(api API, c *cache.Cache, rec *recent.Store, favs *favorites.Store, logger *slog.Logger, opts ...Option) *Searcher {
	s := &Searcher{
		api:       api,
		cache:     c,
		recent:    rec,
		favorites: favs,
		perPage:   DefaultResultsPerPage,
		log:       logger,
		state:     State{Phase: PhaseIdle, Message: MsgBegin},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the result area.
func (s *Searcher) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Search shows one page of results for query, from the cache when fresh and
// from OMDb otherwise. Pages below 1 are treated as 1.
//
// Errors: ErrEmptyQuery for a blank query (only the message changes, the
// favorites view stays open),
// *omdb.APIError when OMDb rejects the search (results are cleared),
// ErrNetwork for transport failures (results are kept), ErrSuperseded when
// a newer request took over the display.
func (s *Searcher) Search(ctx context.Context, query string, page int) (State, error) {
	query = strings.TrimSpace(query)
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	if query == "" {
		s.state.Phase = PhaseError
		s.state.Message = MsgEmptyQuery
		s.state.IsError = true
		st := s.state.clone()
		s.mu.Unlock()
		return st, ErrEmptyQuery
	}

	s.state.ViewingFavorites = false
	s.state.Favorites = nil

	s.seq++
	seq := s.seq

	if resp, ok := s.cached(query, page); ok {
		s.applyResults(query, page, resp, true)
		st := s.state.clone()
		s.mu.Unlock()

		s.log.Debug("search served from cache", "query", query, "page", page, "total", resp.Total())
		s.remember(query)
		return st, nil
	}

	s.state.Phase = PhaseLoading
	s.state.Message = ""
	s.state.IsError = false
	s.mu.Unlock()

	s.log.Debug("searching", "query", query, "page", page, "seq", seq)
	resp, err := s.api.Search(ctx, query, page)

	if err == nil {
		s.store(query, page, resp)
	}

	s.mu.Lock()
	if seq != s.seq {
		st := s.state.clone()
		s.mu.Unlock()
		s.log.Debug("discarding superseded search", "query", query, "page", page, "seq", seq)
		return st, ErrSuperseded
	}

	var apiErr *omdb.APIError
	switch {
	case err == nil:
		s.applyResults(query, page, resp, false)
	case errors.As(err, &apiErr):
		msg := apiErr.Message
		if msg == "" {
			msg = MsgNoResults
		}
		s.state = State{
			Phase:   PhaseError,
			Query:   query,
			Page:    page,
			Message: msg,
			IsError: true,
		}
	default:
		s.state.Phase = PhaseError
		s.state.Message = MsgNetwork
		s.state.IsError = true
		err = fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	st := s.state.clone()
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("search failed", "query", query, "page", page, "error", err)
		return st, err
	}

	s.log.Info("search completed", "query", query, "page", page, "total", st.TotalResults)
	s.remember(query)
	return st, nil
}

// Pagination lays out the pagination bar for the displayed results.
func (s *Searcher) Pagination() []Button {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ViewingFavorites || s.state.Phase == PhaseIdle {
		return nil
	}
	return Paginate(s.state.Page, s.state.TotalPages)
}

// applyResults must be called with s.mu held.
func (s *Searcher) applyResults(query string, page int, resp *omdb.SearchResponse, fromCache bool) {
	total := resp.Total()
	msg := fmt.Sprintf("%d result(s)", total)
	if fromCache {
		msg += " (from cache)"
	}
	s.state = State{
		Phase:        PhaseLoaded,
		Query:        query,
		Page:         page,
		TotalResults: total,
		TotalPages:   (total + s.perPage - 1) / s.perPage,
		Items:        resp.Search,
		Message:      msg,
		FromCache:    fromCache,
	}
}

func (s *Searcher) cached(query string, page int) (*omdb.SearchResponse, bool) {
	raw, ok := s.cache.Get(query, page)
	if !ok {
		return nil, false
	}
	var resp omdb.SearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		s.log.Warn("ignoring undecodable cache entry", "query", query, "page", page, "error", err)
		return nil, false
	}
	return &resp, true
}

func (s *Searcher) store(query string, page int, resp *omdb.SearchResponse) {
	payload, err := json.Marshal(resp)
	if err == nil {
		err = s.cache.Set(query, page, payload)
	}
	if err != nil {
		s.log.Warn("cache write failed", "query", query, "page", page, "error", err)
	}
}

func (s *Searcher) remember(query string) {
	if err := s.recent.Add(query); err != nil {
		s.log.Warn("recording recent search failed", "query", query, "error", err)
	}
}
