package ics

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/api/calendar/v3"

	"github.com/iCodeCoolStuff/gcalendar/internal/schedule"
)

func TestExport(t *testing.T) {
	events := []*calendar.Event{
		{
			Summary:  "Standup",
			Location: "Room 2",
			Start:    &calendar.EventDateTime{DateTime: "2019-03-08T09:00:00Z"},
			End:      &calendar.EventDateTime{DateTime: "2019-03-08T09:15:00Z"},
		},
		{
			Start: &calendar.EventDateTime{Date: "2019-03-08"},
			End:   &calendar.EventDateTime{Date: "2019-03-09"},
		},
	}

	var sb strings.Builder
	if err := Export("workday", events, &sb); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"SUMMARY:Standup",
		"SUMMARY:" + schedule.DefaultSummary,
		"LOCATION:Room 2",
		"DTSTART:20190308T090000Z",
		"DTEND:20190308T091500Z",
		"UID:workday-1@gcalendar",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("output has %d VEVENTs, want 2", got)
	}
}

func TestExportMalformedTimestamp(t *testing.T) {
	events := []*calendar.Event{
		{
			Summary: "bad",
			Start:   &calendar.EventDateTime{DateTime: "not-a-timestamp"},
		},
	}

	var sb strings.Builder
	err := Export("workday", events, &sb)
	if !errors.Is(err, schedule.ErrMalformedTimestamp) {
		t.Errorf("error = %v, want ErrMalformedTimestamp", err)
	}
}
