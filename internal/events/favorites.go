// internal/events/favorites.go
package events

// Event types for the favorites store.
const (
	EventFavoriteAdded    = "favorites.added"
	EventFavoriteRemoved  = "favorites.removed"
	EventFavoritesCleared = "favorites.cleared"
)

// FavoriteAdded is emitted when a movie is added to favorites.
type FavoriteAdded struct {
	BaseEvent
	Title string `json:"title"`
	Count int    `json:"count"`
}

// FavoriteRemoved is emitted when a movie is removed from favorites.
type FavoriteRemoved struct {
	BaseEvent
	Count int `json:"count"`
}

// FavoritesCleared is emitted when every favorite is removed at once.
type FavoritesCleared struct {
	BaseEvent
	Removed int `json:"removed"`
}

// NewFavoriteAdded builds a FavoriteAdded event.
func NewFavoriteAdded(id, title string, count int) *FavoriteAdded {
	return &FavoriteAdded{
		BaseEvent: NewBaseEvent(EventFavoriteAdded, "favorite", id),
		Title:     title,
		Count:     count,
	}
}

// NewFavoriteRemoved builds a FavoriteRemoved event.
func NewFavoriteRemoved(id string, count int) *FavoriteRemoved {
	return &FavoriteRemoved{
		BaseEvent: NewBaseEvent(EventFavoriteRemoved, "favorite", id),
		Count:     count,
	}
}

// NewFavoritesCleared builds a FavoritesCleared event.
func NewFavoritesCleared(removed int) *FavoritesCleared {
	return &FavoritesCleared{
		BaseEvent: NewBaseEvent(EventFavoritesCleared, "favorite", ""),
		Removed:   removed,
	}
}
