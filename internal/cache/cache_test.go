package cache

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/flicks/internal/storage"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(t *testing.T, opts ...Option) (*Cache, *storage.Memory, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	blobs := storage.NewMemory()
	c := New(blobs, append([]Option{WithClock(clock.Now)}, opts...)...)
	return c, blobs, clock
}

func TestKey(t *testing.T) {
	assert.Equal(t, "alien|1", Key("  Alien ", 1))
	assert.Equal(t, "the matrix|3", Key("The Matrix", 3))
	assert.Equal(t, "tt0078748|DETAILS", DetailKey("tt0078748"))
}

func TestCache_GetSet(t *testing.T) {
	c, _, _ := newTestCache(t)

	payload := json.RawMessage(`{"Response":"True","totalResults":"2"}`)
	require.NoError(t, c.Set("Alien", 1, payload))

	got, ok := c.Get("alien", 1)
	require.True(t, ok, "lookup is case-insensitive")
	assert.JSONEq(t, string(payload), string(got))

	_, ok = c.Get("alien", 2)
	assert.False(t, ok, "pages are cached independently")
}

func TestCache_Overwrite(t *testing.T) {
	c, _, _ := newTestCache(t)

	require.NoError(t, c.Set("heat", 1, json.RawMessage(`{"v":1}`)))
	require.NoError(t, c.Set("HEAT", 1, json.RawMessage(`{"v":2}`)))

	got, ok := c.Get("heat", 1)
	require.True(t, ok)
	assert.JSONEq(t, `{"v":2}`, string(got))
	assert.Equal(t, 1, c.Len())
}

func TestCache_Expiry(t *testing.T) {
	c, blobs, clock := newTestCache(t)

	require.NoError(t, c.Set("alien", 1, json.RawMessage(`{}`)))

	clock.Advance(24 * time.Hour)
	_, ok := c.Get("alien", 1)
	assert.True(t, ok, "exactly at the ttl is still fresh")

	clock.Advance(time.Millisecond)
	_, ok = c.Get("alien", 1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "stale entry is purged on access")

	var persisted map[string]Entry
	_, err := storage.LoadJSON(blobs, storage.KeyCache, &persisted)
	require.NoError(t, err)
	assert.Empty(t, persisted, "purge is persisted")
}

func TestCache_Details(t *testing.T) {
	c, _, clock := newTestCache(t)

	require.NoError(t, c.SetDetail("tt0078748", json.RawMessage(`{"Title":"Alien"}`)))

	got, ok := c.GetDetail("tt0078748")
	require.True(t, ok)
	assert.JSONEq(t, `{"Title":"Alien"}`, string(got))

	clock.Advance(25 * time.Hour)
	_, ok = c.GetDetail("tt0078748")
	assert.False(t, ok, "details share the expiry rule")
}

func TestCache_EvictsOldestOnOverflow(t *testing.T) {
	c, _, clock := newTestCache(t)

	for i := 0; i < DefaultMaxEntries; i++ {
		require.NoError(t, c.Set(fmt.Sprintf("q%d", i), 1, json.RawMessage(`{}`)))
		clock.Advance(time.Second)
	}
	assert.Equal(t, DefaultMaxEntries, c.Len(), "no eviction at the ceiling")

	require.NoError(t, c.Set("newest", 1, json.RawMessage(`{}`)))
	assert.Equal(t, DefaultMaxEntries-DefaultEvictCount, c.Len())

	_, ok := c.Get("newest", 1)
	assert.True(t, ok, "entry just written survives")

	_, ok = c.Get("q0", 1)
	assert.False(t, ok, "oldest entry evicted")
	_, ok = c.Get("q40", 1)
	assert.False(t, ok)
	_, ok = c.Get("q41", 1)
	assert.True(t, ok, "younger entries kept")
	_, ok = c.Get(fmt.Sprintf("q%d", DefaultMaxEntries-1), 1)
	assert.True(t, ok)
}

func TestCache_NewEntryNeverEvictedEvenWithOldTimestamp(t *testing.T) {
	c, _, clock := newTestCache(t, WithLimits(3, 1))

	for _, q := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(q, 1, json.RawMessage(`{}`)))
		clock.Advance(time.Second)
	}

	// A clock stepping backwards gives the new write the oldest timestamp.
	clock.Advance(-time.Hour)
	require.NoError(t, c.Set("d", 1, json.RawMessage(`{}`)))

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("d", 1)
	assert.True(t, ok)
}

func TestCache_PersistsAcrossInstances(t *testing.T) {
	c, blobs, clock := newTestCache(t)
	require.NoError(t, c.Set("alien", 1, json.RawMessage(`{"Response":"True"}`)))

	reloaded := New(blobs, WithClock(clock.Now))
	got, ok := reloaded.Get("ALIEN", 1)
	require.True(t, ok)
	assert.JSONEq(t, `{"Response":"True"}`, string(got))
}

func TestCache_CorruptBlobStartsEmpty(t *testing.T) {
	blobs := storage.NewMemory()
	require.NoError(t, blobs.Put(storage.KeyCache, []byte("{not json")))

	c := New(blobs)
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.Set("alien", 1, json.RawMessage(`{}`)))
	assert.Equal(t, 1, c.Len())
}

func TestCache_PruneAndClear(t *testing.T) {
	c, _, clock := newTestCache(t)

	require.NoError(t, c.Set("old", 1, json.RawMessage(`{}`)))
	clock.Advance(23 * time.Hour)
	require.NoError(t, c.Set("fresh", 1, json.RawMessage(`{}`)))
	clock.Advance(2 * time.Hour)

	stats := c.Stats()
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, 1, stats.Expired)

	removed, err := c.Prune()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())

	require.NoError(t, c.Clear())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Stats{}, c.Stats())
}

func TestCache_StatsCountsDetails(t *testing.T) {
	c, _, clock := newTestCache(t)

	require.NoError(t, c.Set("alien", 1, json.RawMessage(`{}`)))
	clock.Advance(time.Minute)
	require.NoError(t, c.SetDetail("tt0078748", json.RawMessage(`{}`)))

	stats := c.Stats()
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, 1, stats.Details)
	assert.Equal(t, time.Minute, stats.Newest.Sub(stats.Oldest))
}

func TestCache_CopiesPayload(t *testing.T) {
	c, _, _ := newTestCache(t)

	payload := json.RawMessage(`{"a":1}`)
	require.NoError(t, c.Set("x", 1, payload))
	payload[2] = 'b'

	got, ok := c.Get("x", 1)
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(got))
}
