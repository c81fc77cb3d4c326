// Package recent keeps the most recent distinct search queries.
package recent

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/vmunix/flicks/internal/events"
	"github.com/vmunix/flicks/internal/storage"
)

// DefaultMax is the number of queries kept.
const DefaultMax = 8

// Store is an ordered, case-insensitively deduplicated list of queries,
// most recent first.
type Store struct {
	mu      sync.RWMutex
	queries []string
	max     int
	blobs   storage.Blobs
	bus     *events.Bus
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithMax sets the list length.
func WithMax(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.max = n
		}
	}
}

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

// New loads the list from blobs. Unreadable content starts an empty list.
func New(blobs storage.Blobs, opts ...Option) *Store {
	s := &Store{
		max:   DefaultMax,
		blobs: blobs,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := storage.LoadJSON(blobs, storage.KeyRecent, &s.queries); err != nil {
		s.log.Warn("recent searches unreadable, starting empty", "error", err)
		s.queries = nil
	}
	if len(s.queries) > s.max {
		s.queries = s.queries[:s.max]
	}
	return s
}

// All returns the queries, most recent first.
func (s *Store) All() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.queries))
	copy(out, s.queries)
	return out
}

// Add records query as the most recent search. Blank queries are ignored.
func (s *Store) Add(query string) error {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	fold := cases.Fold()
	key := fold.String(q)

	s.mu.Lock()
	next := make([]string, 0, s.max)
	next = append(next, q)
	for _, existing := range s.queries {
		if fold.String(existing) == key {
			continue
		}
		if len(next) == s.max {
			break
		}
		next = append(next, existing)
	}
	s.queries = next
	snapshot := s.snapshot()
	err := s.persist()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.bus.Publish(events.NewRecentUpdated(snapshot))
	return nil
}

// Clear forgets every query.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.queries = nil
	err := s.persist()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.log.Info("recent searches cleared")
	s.bus.Publish(events.NewRecentUpdated(nil))
	return nil
}

func (s *Store) snapshot() []string {
	out := make([]string, len(s.queries))
	copy(out, s.queries)
	return out
}

func (s *Store) persist() error {
	queries := s.queries
	if queries == nil {
		queries = []string{}
	}
	return storage.SaveJSON(s.blobs, storage.KeyRecent, queries)
}
