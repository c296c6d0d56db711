package schedule

import (
	"fmt"
	"math"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/iCodeCoolStuff/gcalendar/internal/dates"
)

const day = 24 * time.Hour

// ParseStamp reads an RFC-3339 timestamp and re-anchors its wall-clock
// components in UTC, discarding the offset. Saved schedules and the
// backend both speak the caller's single fixed offset, so timestamps
// are compared by their components alone.
func ParseStamp(stamp string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, stamp)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

func formatStamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ShiftTo relocates every timestamped event in events onto the target
// date, preserving each event's time of day and exact duration. The
// inputs are never mutated; results are fresh copies. All-day events
// (date without a dateTime) are not time-shifted but still appear in
// the output so relocation forwards them unchanged.
//
// The batch is all-or-nothing: the first malformed timestamp fails the
// whole call so a partially shifted schedule never reaches the backend.
func ShiftTo(events []*calendar.Event, target time.Time) ([]*calendar.Event, error) {
	target = dates.Midnight(target)
	shifted := make([]*calendar.Event, 0, len(events))
	for _, ev := range events {
		clone := cloneEvent(ev)
		if clone.Start == nil || clone.Start.DateTime == "" {
			shifted = append(shifted, clone)
			continue
		}
		if clone.End == nil || clone.End.DateTime == "" {
			return nil, fmt.Errorf("%w: event %q has a start time but no end time",
				ErrMalformedTimestamp, Summary(clone))
		}

		start, err := ParseStamp(clone.Start.DateTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseStamp(clone.End.DateTime)
		if err != nil {
			return nil, err
		}

		delta := shiftDelta(start, target)
		if end.After(target) {
			start, end = start.Add(-delta), end.Add(-delta)
		} else {
			start, end = start.Add(delta), end.Add(delta)
		}

		clone.Start.DateTime = formatStamp(start)
		clone.End.DateTime = formatStamp(end)
		shifted = append(shifted, clone)
	}
	return shifted, nil
}

// shiftDelta is the whole-day distance an event starting at start must
// move to land on target. A midnight start shifts by the plain
// calendar-day difference. Any other start has already consumed part of
// its own day, so flooring the instant difference comes up one day
// short of the calendar difference; the +1 restores it. Existing saved
// schedules depend on this exact placement.
func shiftDelta(start, target time.Time) time.Duration {
	startDay := dates.Midnight(start)
	var days int
	if start.Equal(startDay) {
		days = int(target.Sub(startDay) / day)
	} else {
		days = int(math.Floor(target.Sub(start).Hours()/24)) + 1
	}
	if days < 0 {
		days = -days
	}
	return time.Duration(days) * day
}
