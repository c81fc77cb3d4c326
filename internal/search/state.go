package search

import (
	"github.com/vmunix/flicks/internal/favorites"
	"github.com/vmunix/flicks/internal/omdb"
)

// Phase is the lifecycle stage of the displayed result set.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// State is what the result area shows. It is a snapshot; mutating it does
// not affect the Searcher.
type State struct {
	Phase        Phase
	Query        string // query of the displayed results
	Page         int
	TotalResults int
	TotalPages   int
	Items        []omdb.Item
	Message      string
	IsError      bool // Message should be styled as an error
	FromCache    bool

	ViewingFavorites bool
	Favorites        []favorites.Record // set while ViewingFavorites
}

func (s State) clone() State {
	if s.Items != nil {
		s.Items = append([]omdb.Item(nil), s.Items...)
	}
	if s.Favorites != nil {
		s.Favorites = append([]favorites.Record(nil), s.Favorites...)
	}
	return s
}

// DetailState is what the details overlay shows.
type DetailState struct {
	Open      bool
	Phase     Phase
	ID        string
	Movie     *omdb.Movie
	Message   string
	FromCache bool
}
