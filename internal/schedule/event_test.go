package schedule

import (
	"reflect"
	"testing"

	"google.golang.org/api/calendar/v3"
)

func backendEvent() *calendar.Event {
	return &calendar.Event{
		Id:               "abc123",
		Etag:             `"3181161784712000"`,
		ICalUID:          "abc123@google.com",
		RecurringEventId: "parent456",
		OriginalStartTime: &calendar.EventDateTime{
			DateTime: "2019-03-08T09:00:00Z",
		},
		Summary:     "Standup",
		Description: "Daily standup",
		Location:    "Room 2",
		ColorId:     "4",
		Start:       &calendar.EventDateTime{DateTime: "2019-03-08T09:00:00Z"},
		End:         &calendar.EventDateTime{DateTime: "2019-03-08T09:15:00Z"},
	}
}

func TestSanitizeStripsIdentityFields(t *testing.T) {
	detached := Sanitize(backendEvent())

	if detached.Id != "" {
		t.Errorf("Id = %q, want empty", detached.Id)
	}
	if detached.Etag != "" {
		t.Errorf("Etag = %q, want empty", detached.Etag)
	}
	if detached.ICalUID != "" {
		t.Errorf("ICalUID = %q, want empty", detached.ICalUID)
	}
	if detached.RecurringEventId != "" {
		t.Errorf("RecurringEventId = %q, want empty", detached.RecurringEventId)
	}
	if detached.OriginalStartTime != nil {
		t.Errorf("OriginalStartTime = %v, want nil", detached.OriginalStartTime)
	}
}

func TestSanitizeLeavesOtherFields(t *testing.T) {
	detached := Sanitize(backendEvent())

	if detached.Summary != "Standup" || detached.Description != "Daily standup" ||
		detached.Location != "Room 2" || detached.ColorId != "4" {
		t.Errorf("non-identity fields changed: %+v", detached)
	}
	if detached.Start.DateTime != "2019-03-08T09:00:00Z" || detached.End.DateTime != "2019-03-08T09:15:00Z" {
		t.Errorf("start/end changed: %v %v", detached.Start, detached.End)
	}
}

func TestSanitizeDoesNotMutateInput(t *testing.T) {
	ev := backendEvent()
	Sanitize(ev)

	if !reflect.DeepEqual(ev, backendEvent()) {
		t.Errorf("input mutated: %+v", ev)
	}
}

func TestSanitizeDetachesNestedFields(t *testing.T) {
	ev := backendEvent()
	detached := Sanitize(ev)

	detached.Start.DateTime = "changed"
	if ev.Start.DateTime != "2019-03-08T09:00:00Z" {
		t.Error("clone shares Start with the input")
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	once := Sanitize(backendEvent())
	twice := Sanitize(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("sanitizing a detached event changed it: %+v vs %+v", once, twice)
	}
}

func TestSummaryDefault(t *testing.T) {
	if got := Summary(&calendar.Event{}); got != DefaultSummary {
		t.Errorf("Summary = %q, want %q", got, DefaultSummary)
	}
	if got := Summary(&calendar.Event{Summary: "Lunch"}); got != "Lunch" {
		t.Errorf("Summary = %q, want Lunch", got)
	}
}
