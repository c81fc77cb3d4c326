// Package favorites keeps the user's favorite movies, keyed by IMDb id.
package favorites

import (
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/vmunix/flicks/internal/events"
	"github.com/vmunix/flicks/internal/omdb"
	"github.com/vmunix/flicks/internal/storage"
	"github.com/vmunix/flicks/pkg/title"
)

// Record is a persisted favorite. Field names follow the OMDb item shape.
type Record struct {
	ID      string    `json:"imdbID"`
	Title   string    `json:"Title"`
	Year    string    `json:"Year"`
	Type    string    `json:"Type"`
	Poster  string    `json:"Poster"`
	AddedAt time.Time `json:"added_at,omitzero"`
}

// FromItem builds a record from a search item.
func FromItem(it omdb.Item) Record {
	return Record{ID: it.ID, Title: it.Title, Year: it.Year, Type: it.Type, Poster: it.Poster}
}

// Item converts the record back into a search item.
func (r Record) Item() omdb.Item {
	return omdb.Item{ID: r.ID, Title: r.Title, Year: r.Year, Type: r.Type, Poster: r.Poster}
}

// Match is a favorite ranked against a title lookup.
type Match struct {
	Record
	Score float64
}

// Store holds favorites in memory and writes the full set through to
// storage on every change.
type Store struct {
	mu      sync.RWMutex
	records map[string]Record
	blobs   storage.Blobs
	bus     *events.Bus
	now     func() time.Time
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithBus publishes change events on bus.
func WithBus(bus *events.Bus) Option {
	return func(s *Store) {
		s.bus = bus
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock replaces time.Now (for testing).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New loads favorites from blobs. Unreadable content starts an empty store.
func New(blobs storage.Blobs, opts ...Option) *Store {
	s := &Store{
		records: make(map[string]Record),
		blobs:   blobs,
		now:     time.Now,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := storage.LoadJSON(blobs, storage.KeyFavorites, &s.records); err != nil {
		s.log.Warn("favorites unreadable, starting empty", "error", err)
		s.records = make(map[string]Record)
	}
	if s.records == nil {
		s.records = make(map[string]Record)
	}
	return s
}

// Has reports whether id is a favorite.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[id]
	return ok
}

// Count returns the number of favorites.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns the favorite for id.
func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	return r, ok
}

// All returns every favorite in the order it was added.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].AddedAt.Before(out[j].AddedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Toggle removes the item if it is a favorite and adds it otherwise.
// It reports whether the item is a favorite afterwards. Items without an
// id are ignored.
func (s *Store) Toggle(it omdb.Item) (bool, error) {
	if it.ID == "" {
		return false, nil
	}
	if s.Has(it.ID) {
		return false, s.Remove(it.ID)
	}
	return true, s.Add(FromItem(it))
}

// Add inserts or replaces a favorite. A replaced record keeps its original
// position.
func (s *Store) Add(r Record) error {
	if r.ID == "" {
		return nil
	}

	s.mu.Lock()
	if existing, ok := s.records[r.ID]; ok && !existing.AddedAt.IsZero() {
		r.AddedAt = existing.AddedAt
	} else if r.AddedAt.IsZero() {
		r.AddedAt = s.now().UTC()
	}
	s.records[r.ID] = r
	count := len(s.records)
	err := s.persist()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.log.Debug("favorite added", "id", r.ID, "title", r.Title)
	s.bus.Publish(events.NewFavoriteAdded(r.ID, r.Title, count))
	return nil
}

// Remove deletes a favorite. Removing an unknown id does nothing.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	if _, ok := s.records[id]; !ok {
		s.mu.Unlock()
		return nil
	}
	delete(s.records, id)
	count := len(s.records)
	err := s.persist()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.log.Debug("favorite removed", "id", id)
	s.bus.Publish(events.NewFavoriteRemoved(id, count))
	return nil
}

// Clear removes every favorite and returns how many were removed.
func (s *Store) Clear() (int, error) {
	s.mu.Lock()
	removed := len(s.records)
	s.records = make(map[string]Record)
	err := s.persist()
	s.mu.Unlock()

	if err != nil {
		return removed, err
	}
	s.log.Info("favorites cleared", "removed", removed)
	s.bus.Publish(events.NewFavoritesCleared(removed))
	return removed, nil
}

// Find ranks favorites by title similarity to query, best first.
func (s *Store) Find(query string, limit int) []Match {
	all := s.All()
	titles := make([]string, len(all))
	for i, r := range all {
		titles[i] = r.Title
	}

	ranked := title.Rank(query, titles, limit)
	out := make([]Match, len(ranked))
	for i, m := range ranked {
		out[i] = Match{Record: all[m.Index], Score: m.Score}
	}
	return out
}

func (s *Store) persist() error {
	return storage.SaveJSON(s.blobs, storage.KeyFavorites, s.records)
}
