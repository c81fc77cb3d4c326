package tui

import (
	"github.com/vmunix/flicks/internal/events"
	"github.com/vmunix/flicks/internal/search"
)

// SearchDoneMsg carries the outcome of a search or of leaving the
// favorites view.
type SearchDoneMsg struct {
	State search.State
	Err   error
}

// DetailsDoneMsg carries the outcome of a details lookup.
type DetailsDoneMsg struct {
	Detail search.DetailState
	Err    error
}

// StoreChangedMsg signals that favorites or recent searches changed.
type StoreChangedMsg struct {
	Event events.Event
}
