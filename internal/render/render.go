// Package render turns search results, favorites, pagination and movie
// details into terminal text. Every function is pure: the same input always
// renders the same output.
package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vmunix/flicks/internal/favorites"
	"github.com/vmunix/flicks/internal/omdb"
	"github.com/vmunix/flicks/internal/search"
)

const (
	cardWidth = 26
	cardGap   = 1

	starOn  = "★"
	starOff = "☆"

	notAvailable = "N/A"
	noPoster     = "No Poster"
)

const placeholderSVG = `<svg xmlns='http://www.w3.org/2000/svg' width='300' height='450'>
    <rect width='100%' height='100%' fill='#efefef'/>
    <text x='50%' y='50%' dominant-baseline='middle' text-anchor='middle' fill='#8a8a8a' font-size='20' font-family='Arial'>
      No Poster
    </text>
  </svg>`

// PlaceholderPoster is the image used whenever poster data is absent.
var PlaceholderPoster = "data:image/svg+xml;charset=UTF-8," +
	strings.ReplaceAll(url.QueryEscape(placeholderSVG), "+", "%20")

// HasPoster reports whether raw names a real poster.
func HasPoster(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw != "" && raw != notAvailable
}

// PosterURL returns raw, or the placeholder when raw is empty or "N/A".
func PosterURL(raw string) string {
	if !HasPoster(raw) {
		return PlaceholderPoster
	}
	return strings.TrimSpace(raw)
}

// Star returns the favorite toggle glyph.
func Star(on bool) string {
	if on {
		return starOn
	}
	return starOff
}

// Grid renders result cards. isFavorite decides each card's toggle; a nil
// func marks nothing. selected is the highlighted card index, or -1.
func (t Theme) Grid(items []omdb.Item, isFavorite func(id string) bool, selected, width int) string {
	if len(items) == 0 {
		return ""
	}
	if isFavorite == nil {
		isFavorite = func(string) bool { return false }
	}

	if t.Plain {
		lines := make([]string, len(items))
		for i, it := range items {
			marker := " "
			if i == selected {
				marker = ">"
			}
			lines[i] = fmt.Sprintf("%s %s %-10s %s (%s)", marker, Star(isFavorite(it.ID)), it.ID, it.Title, yearType(it))
		}
		return strings.Join(lines, "\n")
	}

	perRow := Columns(width)
	var rows []string
	for start := 0; start < len(items); start += perRow {
		end := min(start+perRow, len(items))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, t.card(items[i], isFavorite(items[i].ID), i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Columns is the number of cards per grid row at width.
func Columns(width int) int {
	return max(1, (width+cardGap)/(cardWidth+2+cardGap))
}

// FavoritesGrid renders the favorites view; every toggle is on.
func (t Theme) FavoritesGrid(records []favorites.Record, selected, width int) string {
	items := make([]omdb.Item, len(records))
	for i, r := range records {
		items[i] = r.Item()
	}
	return t.Grid(items, func(string) bool { return true }, selected, width)
}

func (t Theme) card(it omdb.Item, fav, selected bool) string {
	style := t.Card
	if selected {
		style = t.SelectedCard
	}

	inner := cardWidth - 2
	poster := t.Dim.Render(noPoster)
	if HasPoster(it.Poster) {
		poster = t.Dim.Render(truncate(it.Poster, inner))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		t.Star.Render(Star(fav))+" "+t.Title.Render(truncate(it.Title, inner-2)),
		t.Subtitle.Render(truncate(yearType(it), inner)),
		poster,
	)
	return style.Render(body)
}

func yearType(it omdb.Item) string {
	return it.Year + " • " + it.Type
}

// Pagination renders the pagination bar. focused is the index of the
// keyboard-focused button, or -1.
func (t Theme) Pagination(buttons []search.Button, focused int) string {
	if len(buttons) == 0 {
		return ""
	}

	parts := make([]string, len(buttons))
	for i, b := range buttons {
		label := b.Label()
		if t.Plain && b.Active {
			label = "[" + label + "]"
		}

		style := t.Page
		switch {
		case b.Kind == search.ButtonEllipsis:
			style = t.Dim
		case b.Active:
			style = t.ActivePage
		case b.Disabled:
			style = t.DisabledPage
		}
		if i == focused && b.Selectable() {
			style = t.FocusedPage
			if t.Plain {
				label = ">" + label
			}
		}
		parts[i] = style.Render(label)
	}
	if t.Plain {
		return strings.Join(parts, " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// RecentChips renders the recent-search bar, most recent first.
func (t Theme) RecentChips(queries []string, selected int) string {
	if len(queries) == 0 {
		return ""
	}
	chips := make([]string, len(queries))
	for i, q := range queries {
		if i == selected {
			chips[i] = t.SelectedChip.Render(q)
		} else {
			chips[i] = t.Chip.Render(q)
		}
	}
	if t.Plain {
		return "Recent: " + strings.Join(chips, ", ")
	}
	return t.Dim.Render("Recent ") + lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// Message renders the status line under the search box.
func (t Theme) Message(text string, isError bool) string {
	if text == "" {
		return ""
	}
	if isError {
		return t.Error.Render(text)
	}
	return t.Subtitle.Render(text)
}

// FavoritesBadge renders the favorites-view toggle with its count.
func (t Theme) FavoritesBadge(count int, viewing bool) string {
	label := "♥ Favorites"
	if viewing {
		label = "← Back"
	}
	return t.Accent.Render(label) + " " + t.Badge.Render(fmt.Sprint(count))
}

// FavoriteControl returns the details overlay toggle label.
func FavoriteControl(isFavorite bool) string {
	if isFavorite {
		return "Remove Favorite"
	}
	return "Add to Favorites"
}

// Details renders the details overlay body for m.
func (t Theme) Details(m *omdb.Movie, isFavorite bool, width int) string {
	if m == nil {
		return ""
	}

	field := func(label, value string) string {
		return t.Label.Render(label+":") + " " + orNA(value)
	}

	plot := orNA(m.Plot)
	if width > 8 && !t.Plain {
		plot = lipgloss.NewStyle().Width(width - 8).Render(plot)
	}

	lines := []string{
		t.Title.Render(fmt.Sprintf("%s (%s)", m.Title, m.Year)),
		"",
		field("Genre", m.Genre),
		field("Director", m.Director),
		field("Cast", m.Actors),
		field("Runtime", m.Runtime),
		t.Label.Render("Plot:"),
		plot,
	}

	if len(m.Ratings) > 0 {
		ratings := make([]string, len(m.Ratings))
		for i, r := range m.Ratings {
			ratings[i] = r.Source + ": " + r.Value
		}
		lines = append(lines, field("Ratings", strings.Join(ratings, " • ")))
	}

	poster := noPoster
	if HasPoster(m.Poster) {
		poster = m.Poster
	}
	lines = append(lines,
		t.Dim.Render("Poster: "+poster),
		t.Dim.Render(fmt.Sprintf("Released: %s • Language: %s", orNA(m.Released), orNA(m.Language))),
		"",
		t.Button.Render(FavoriteControl(isFavorite)),
	)

	body := strings.Join(lines, "\n")
	if t.Plain {
		return body
	}
	return t.Modal.Render(body)
}

// DetailsMessage renders a loading or error line inside the overlay frame.
func (t Theme) DetailsMessage(text string, isError bool) string {
	msg := t.Message(text, isError)
	if t.Plain {
		return msg
	}
	return t.Modal.Render(msg)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func truncate(s string, n int) string {
	if n <= 0 || lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
