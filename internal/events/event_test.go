package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBaseEvent_ImplementsEvent(t *testing.T) {
	now := time.Now()
	e := BaseEvent{
		Type:      "test.event",
		Entity:    "favorite",
		ID:        "tt0078748",
		Timestamp: now,
	}

	assert.Equal(t, "test.event", e.EventType())
	assert.Equal(t, "favorite", e.EntityType())
	assert.Equal(t, "tt0078748", e.EntityID())
	assert.Equal(t, now, e.OccurredAt())
}

func TestNewBaseEvent(t *testing.T) {
	e := NewBaseEvent(EventFavoriteAdded, "favorite", "tt0090605")

	assert.Equal(t, EventFavoriteAdded, e.EventType())
	assert.Equal(t, "favorite", e.EntityType())
	assert.Equal(t, "tt0090605", e.EntityID())
	assert.False(t, e.OccurredAt().IsZero())
}

func TestFavoriteEvents(t *testing.T) {
	added := NewFavoriteAdded("tt0078748", "Alien", 3)
	assert.Equal(t, EventFavoriteAdded, added.EventType())
	assert.Equal(t, "tt0078748", added.EntityID())
	assert.Equal(t, 3, added.Count)

	removed := NewFavoriteRemoved("tt0078748", 2)
	assert.Equal(t, EventFavoriteRemoved, removed.EventType())
	assert.Equal(t, 2, removed.Count)

	cleared := NewFavoritesCleared(5)
	assert.Equal(t, EventFavoritesCleared, cleared.EventType())
	assert.Empty(t, cleared.EntityID())
	assert.Equal(t, 5, cleared.Removed)
}

func TestRecentUpdated(t *testing.T) {
	e := NewRecentUpdated([]string{"heat", "alien"})
	assert.Equal(t, EventRecentUpdated, e.EventType())
	assert.Equal(t, "heat", e.EntityID())

	empty := NewRecentUpdated(nil)
	assert.Empty(t, empty.EntityID())
}
