// Package cache stores OMDb responses keyed by query and page, bounded by age
// and entry count, and persisted as a single blob.
package cache

import (
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vmunix/flicks/internal/storage"
)

const (
	DefaultTTL        = 24 * time.Hour
	DefaultMaxEntries = 120
	DefaultEvictCount = 40

	detailSuffix = "DETAILS"
)

// Entry is one cached response. TS is the write time in Unix milliseconds.
type Entry struct {
	TS   int64           `json:"ts"`
	Data json.RawMessage `json:"data"`
}

// Stats summarizes the cache contents.
type Stats struct {
	Entries int
	Details int
	Expired int
	Oldest  time.Time
	Newest  time.Time
}

// Cache is a TTL and size bounded response cache.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry
	blobs   storage.Blobs
	ttl     time.Duration
	max     int
	evict   int
	now     func() time.Time
	log     *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets how long entries stay valid.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithLimits sets the entry ceiling and how many entries an overflow sheds.
func WithLimits(maxEntries, evictCount int) Option {
	return func(c *Cache) {
		if maxEntries > 0 {
			c.max = maxEntries
		}
		if evictCount > 0 {
			c.evict = evictCount
		}
	}
}

// WithClock replaces time.Now (for testing).
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		c.log = l
	}
}

// New loads the cache from blobs. Unreadable content starts an empty cache.
func New(blobs storage.Blobs, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]Entry),
		blobs:   blobs,
		ttl:     DefaultTTL,
		max:     DefaultMaxEntries,
		evict:   DefaultEvictCount,
		now:     time.Now,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.evict >= c.max {
		c.evict = c.max - 1
	}

	if _, err := storage.LoadJSON(blobs, storage.KeyCache, &c.entries); err != nil {
		c.log.Warn("cache unreadable, starting empty", "error", err)
		c.entries = make(map[string]Entry)
	}
	if c.entries == nil {
		c.entries = make(map[string]Entry)
	}
	return c
}

// Key builds the cache key for a search page: the trimmed, lowercased query,
// a pipe, and the page.
func Key(query string, page int) string {
	return makeKey(query, strconv.Itoa(page))
}

// DetailKey builds the cache key for a single-movie lookup.
func DetailKey(id string) string {
	return makeKey(id, detailSuffix)
}

func makeKey(query, suffix string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(query)) + "|" + suffix
}

// Get returns the payload for a search page if present and fresh.
func (c *Cache) Get(query string, page int) (json.RawMessage, bool) {
	return c.get(Key(query, page))
}

// Set stores the payload for a search page.
func (c *Cache) Set(query string, page int, payload json.RawMessage) error {
	return c.set(Key(query, page), payload)
}

// GetDetail returns the cached detail record for id if present and fresh.
func (c *Cache) GetDetail(id string) (json.RawMessage, bool) {
	return c.get(DetailKey(id))
}

// SetDetail stores the detail record for id.
func (c *Cache) SetDetail(id string, payload json.RawMessage) error {
	return c.set(DetailKey(id), payload)
}

func (c *Cache) get(key string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.expired(entry) {
		delete(c.entries, key)
		if err := c.persist(); err != nil {
			c.log.Warn("persist cache after expiry", "key", key, "error", err)
		}
		c.log.Debug("cache expired", "key", key)
		return nil, false
	}
	return entry.Data, true
}

func (c *Cache) set(key string, payload json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := make(json.RawMessage, len(payload))
	copy(data, payload)
	c.entries[key] = Entry{TS: c.now().UnixMilli(), Data: data}

	if len(c.entries) > c.max {
		c.shed(key)
	}
	return c.persist()
}

// shed drops the oldest entries until max-evict remain. keep is the entry
// just written and is never dropped.
func (c *Cache) shed(keep string) {
	target := c.max - c.evict

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		if k != keep {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := c.entries[keys[i]], c.entries[keys[j]]
		if a.TS != b.TS {
			return a.TS < b.TS
		}
		return keys[i] < keys[j]
	})

	evicted := 0
	for _, k := range keys {
		if len(c.entries) <= target {
			break
		}
		delete(c.entries, k)
		evicted++
	}
	c.log.Debug("cache evicted", "count", evicted, "remaining", len(c.entries))
}

func (c *Cache) expired(e Entry) bool {
	return c.now().UnixMilli()-e.TS > c.ttl.Milliseconds()
}

// Len returns the number of stored entries, including expired ones not yet
// purged.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Prune removes every expired entry and returns how many were removed.
func (c *Cache) Prune() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, k)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, c.persist()
}

// Clear drops every entry.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]Entry)
	return c.persist()
}

// Stats reports counts and the age range of stored entries.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var s Stats
	var oldest, newest int64
	for k, e := range c.entries {
		s.Entries++
		if strings.HasSuffix(k, "|"+detailSuffix) {
			s.Details++
		}
		if c.expired(e) {
			s.Expired++
		}
		if oldest == 0 || e.TS < oldest {
			oldest = e.TS
		}
		if e.TS > newest {
			newest = e.TS
		}
	}
	if s.Entries > 0 {
		s.Oldest = time.UnixMilli(oldest)
		s.Newest = time.UnixMilli(newest)
	}
	return s
}

func (c *Cache) persist() error {
	return storage.SaveJSON(c.blobs, storage.KeyCache, c.entries)
}
