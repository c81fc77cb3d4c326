package search

import "strconv"

// maxPageButtons is the width of the numbered window.
const maxPageButtons = 7

// ButtonKind distinguishes pagination controls.
type ButtonKind int

const (
	ButtonPrev ButtonKind = iota
	ButtonPage
	ButtonEllipsis
	ButtonNext
)

// Button is one pagination control. Page is the page it navigates to;
// ellipses navigate nowhere.
type Button struct {
	Kind     ButtonKind
	Page     int
	Active   bool
	Disabled bool
}

// Label returns the button text.
func (b Button) Label() string {
	switch b.Kind {
	case ButtonPrev:
		return "Prev"
	case ButtonNext:
		return "Next"
	case ButtonEllipsis:
		return "..."
	default:
		return strconv.Itoa(b.Page)
	}
}

// Selectable reports whether activating the button navigates.
func (b Button) Selectable() bool {
	return b.Kind != ButtonEllipsis && !b.Disabled
}

// Paginate lays out the pagination bar for current of totalPages.
// Nothing is shown for a single page. Otherwise the bar is Prev, a window of
// up to seven pages around current (with shortcuts to the first and last
// page, separated by an ellipsis when not adjacent), then Next.
func Paginate(current, totalPages int) []Button {
	if totalPages <= 1 {
		return nil
	}

	buttons := []Button{{Kind: ButtonPrev, Page: max(1, current-1), Disabled: current == 1}}

	start := max(1, current-maxPageButtons/2)
	end := start + maxPageButtons - 1
	if end > totalPages {
		end = totalPages
		start = max(1, end-maxPageButtons+1)
	}

	if start > 1 {
		buttons = append(buttons, Button{Kind: ButtonPage, Page: 1})
		if start > 2 {
			buttons = append(buttons, Button{Kind: ButtonEllipsis})
		}
	}

	for p := start; p <= end; p++ {
		buttons = append(buttons, Button{Kind: ButtonPage, Page: p, Active: p == current})
	}

	if end < totalPages {
		if end < totalPages-1 {
			buttons = append(buttons, Button{Kind: ButtonEllipsis})
		}
		buttons = append(buttons, Button{Kind: ButtonPage, Page: totalPages})
	}

	return append(buttons, Button{Kind: ButtonNext, Page: min(totalPages, current+1), Disabled: current == totalPages})
}
