package schedule

import (
	"encoding/json"

	"google.golang.org/api/calendar/v3"
)

// DefaultSummary stands in for events the backend returned without one.
const DefaultSummary = "(No title)"

// Sanitize returns a detached deep copy of ev with the backend-assigned
// identity fields (id, etag, iCalUID, recurringEventId,
// originalStartTime) cleared. The backend rejects inserts that still
// carry an id, so every event goes through here before re-submission.
// The input is never touched, and sanitizing an already-detached event
// is a no-op beyond the copy.
func Sanitize(ev *calendar.Event) *calendar.Event {
	clone := cloneEvent(ev)
	clone.Id = ""
	clone.Etag = ""
	clone.ICalUID = ""
	clone.RecurringEventId = ""
	clone.OriginalStartTime = nil
	return clone
}

// SanitizeAll sanitizes a slice of events, preserving order.
func SanitizeAll(events []*calendar.Event) []*calendar.Event {
	detached := make([]*calendar.Event, 0, len(events))
	for _, ev := range events {
		detached = append(detached, Sanitize(ev))
	}
	return detached
}

// cloneEvent deep-copies an event through its JSON form. calendar.Event
// is plain tagged data, so the round trip is lossless for every field
// the backend speaks.
func cloneEvent(ev *calendar.Event) *calendar.Event {
	b, _ := json.Marshal(ev)
	clone := &calendar.Event{}
	_ = json.Unmarshal(b, clone)
	return clone
}

// Summary returns the event summary, or DefaultSummary when absent.
func Summary(ev *calendar.Event) string {
	if ev.Summary == "" {
		return DefaultSummary
	}
	return ev.Summary
}
