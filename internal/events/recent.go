// internal/events/recent.go
package events

// EventRecentUpdated is emitted whenever the recent-searches list changes.
const EventRecentUpdated = "recent.updated"

// RecentUpdated carries the new list, most recent first.
type RecentUpdated struct {
	BaseEvent
	Queries []string `json:"queries"`
}

// NewRecentUpdated builds a RecentUpdated event for the given list.
func NewRecentUpdated(queries []string) *RecentUpdated {
	var latest string
	if len(queries) > 0 {
		latest = queries[0]
	}
	return &RecentUpdated{
		BaseEvent: NewBaseEvent(EventRecentUpdated, "recent", latest),
		Queries:   queries,
	}
}
