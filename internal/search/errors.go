package search

import "errors"

var (
	// ErrEmptyQuery indicates a search was submitted without a title.
	ErrEmptyQuery = errors.New("empty search query")

	// ErrMissingID indicates a detail lookup without an IMDb id.
	ErrMissingID = errors.New("missing imdb id")

	// ErrNetwork wraps transport and decoding failures talking to OMDb.
	ErrNetwork = errors.New("network error")

	// ErrSuperseded indicates a response arrived after a newer request was
	// issued. It was cached but not displayed.
	ErrSuperseded = errors.New("response superseded by a newer request")
)

// User-facing messages.
const (
	MsgEmptyQuery      = "Please enter a movie title to search."
	MsgNetwork         = "Network error. Try again later."
	MsgNoResults       = "No results"
	MsgDetailsNotFound = "Details not found"
	MsgDetailsNetwork  = "Network error while loading details."
	MsgLoadingDetails  = "Loading details..."
	MsgNoFavorites     = "No favorites yet. Add some movies to favorites!"
	MsgNothingToClear  = "No favorites to clear."
	MsgBegin           = "Search for movies above to begin."
)
