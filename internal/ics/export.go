// Package ics renders saved schedules as iCalendar files for use
// outside the Google backend.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"google.golang.org/api/calendar/v3"

	"github.com/iCodeCoolStuff/gcalendar/internal/schedule"
)

// Export writes events as a single VCALENDAR. Timestamped events keep
// their stored times; all-day events become all-day VEVENTs.
func Export(name string, events []*calendar.Event, w io.Writer) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//gcalendar//schedule export//EN")
	cal.SetName(name)

	now := time.Now().UTC()
	for i, ev := range events {
		ve := cal.AddEvent(fmt.Sprintf("%s-%d@gcalendar", name, i+1))
		ve.SetDtStampTime(now)
		ve.SetSummary(schedule.Summary(ev))
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}

		if err := setTimes(ve, ev); err != nil {
			return err
		}
	}

	return cal.SerializeTo(w)
}

func setTimes(ve *ical.VEvent, ev *calendar.Event) error {
	switch {
	case ev.Start != nil && ev.Start.DateTime != "":
		start, err := schedule.ParseStamp(ev.Start.DateTime)
		if err != nil {
			return err
		}
		ve.SetStartAt(start)
		if ev.End != nil && ev.End.DateTime != "" {
			end, err := schedule.ParseStamp(ev.End.DateTime)
			if err != nil {
				return err
			}
			ve.SetEndAt(end)
		}
	case ev.Start != nil && ev.Start.Date != "":
		start, err := time.Parse(time.DateOnly, ev.Start.Date)
		if err != nil {
			return fmt.Errorf("%w: %q", schedule.ErrMalformedTimestamp, ev.Start.Date)
		}
		ve.SetAllDayStartAt(start)
		if ev.End != nil && ev.End.Date != "" {
			end, err := time.Parse(time.DateOnly, ev.End.Date)
			if err != nil {
				return fmt.Errorf("%w: %q", schedule.ErrMalformedTimestamp, ev.End.Date)
			}
			ve.SetAllDayEndAt(end)
		}
	}
	return nil
}
