// Package omdb provides a client for the OMDb movie API.
package omdb

import (
	"strconv"
	"strings"
)

// Item is one entry of a title search.
type Item struct {
	ID     string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// SearchResponse is the envelope returned by a title search.
// OMDb sends totalResults as a string.
type SearchResponse struct {
	Response     string `json:"Response"`
	Search       []Item `json:"Search,omitempty"`
	TotalResults string `json:"totalResults,omitempty"`
	Error        string `json:"Error,omitempty"`
}

// OK reports whether OMDb answered "True".
func (r *SearchResponse) OK() bool {
	return r.Response == "True"
}

// Total parses TotalResults, returning 0 when absent or malformed.
func (r *SearchResponse) Total() int {
	n, err := strconv.Atoi(strings.TrimSpace(r.TotalResults))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Rating is a single third-party score.
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Movie is the full record returned by an id lookup.
type Movie struct {
	Title      string   `json:"Title"`
	Year       string   `json:"Year"`
	Rated      string   `json:"Rated,omitempty"`
	Released   string   `json:"Released,omitempty"`
	Runtime    string   `json:"Runtime,omitempty"`
	Genre      string   `json:"Genre,omitempty"`
	Director   string   `json:"Director,omitempty"`
	Writer     string   `json:"Writer,omitempty"`
	Actors     string   `json:"Actors,omitempty"`
	Plot       string   `json:"Plot,omitempty"`
	Language   string   `json:"Language,omitempty"`
	Country    string   `json:"Country,omitempty"`
	Awards     string   `json:"Awards,omitempty"`
	Poster     string   `json:"Poster,omitempty"`
	Ratings    []Rating `json:"Ratings,omitempty"`
	Metascore  string   `json:"Metascore,omitempty"`
	IMDBRating string   `json:"imdbRating,omitempty"`
	IMDBVotes  string   `json:"imdbVotes,omitempty"`
	ID         string   `json:"imdbID"`
	Type       string   `json:"Type,omitempty"`
	BoxOffice  string   `json:"BoxOffice,omitempty"`
	Response   string   `json:"Response"`
	Error      string   `json:"Error,omitempty"`
}

// OK reports whether OMDb answered "True".
func (m *Movie) OK() bool {
	return m.Response == "True"
}

// Item returns the summary fields of the movie.
func (m *Movie) Item() Item {
	return Item{ID: m.ID, Title: m.Title, Year: m.Year, Type: m.Type, Poster: m.Poster}
}
