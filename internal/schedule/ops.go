package schedule

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/iCodeCoolStuff/gcalendar/internal/auth"
	"github.com/iCodeCoolStuff/gcalendar/internal/config"
	"github.com/iCodeCoolStuff/gcalendar/internal/dates"
)

// Client composes the date resolver, the sanitizer/shifter, and the
// schedule store with the calendar backend. Operations run strictly
// sequentially; every backend call is a blocking round trip.
type Client struct {
	Service    CalendarEventsService
	CalendarID string
	Store      *Store

	// UTCOffset is the fixed local offset used to convert a date's
	// local-midnight-to-midnight window into the UTC bounds the
	// backend expects.
	UTCOffset time.Duration

	// Now supplies the reference date for relative expressions.
	Now func() time.Time

	// Confirm asks the user a yes/no question before a destructive
	// step. A false answer cancels the operation.
	Confirm func(prompt string) bool
}

// NewClient wires a Client from the configuration and the stored OAuth
// token.
func NewClient(cfg *config.Config) (*Client, error) {
	httpClient, err := auth.Client()
	if err != nil {
		return nil, err
	}

	srv, err := calendar.NewService(context.Background(), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create calendar client: %w", err)
	}

	return &Client{
		Service:    NewGoogleEventsService(srv),
		CalendarID: cfg.CalendarID,
		Store:      &Store{Dir: cfg.SchedulesDir},
		UTCOffset:  cfg.UTCOffset(),
		Now:        time.Now,
		Confirm:    askYesNo,
	}, nil
}

func askYesNo(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("%s [y/N] ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
		fmt.Println("Please answer yes or no.")
	}
}

// dayWindow converts a date's local 00:00:00-23:59:59 window into UTC
// bounds using the fixed offset.
func (c *Client) dayWindow(date time.Time) (time.Time, time.Time) {
	min := date.Add(-c.UTCOffset)
	max := date.Add(24*time.Hour - time.Second).Add(-c.UTCOffset)
	return min, max
}

func (c *Client) resolve(expr string) (time.Time, error) {
	return dates.ResolveAt(expr, c.Now())
}

// resolveTargets resolves a single target date, or the inclusive range
// from dayExpr to untilExpr when the latter is non-empty. Ranges must
// run forward.
func (c *Client) resolveTargets(dayExpr, untilExpr string) ([]time.Time, error) {
	day, err := c.resolve(dayExpr)
	if err != nil {
		return nil, err
	}
	if untilExpr == "" {
		return []time.Time{day}, nil
	}

	until, err := c.resolve(untilExpr)
	if err != nil {
		return nil, err
	}
	if !day.Before(until) {
		return nil, fmt.Errorf("%w: %s is not after %s",
			dates.ErrInvalidRange, until.Format(time.DateOnly), day.Format(time.DateOnly))
	}
	return dates.DayRange(day, until)
}

// listDay fetches the backend events for date's full-day window.
func (c *Client) listDay(date time.Time) ([]*calendar.Event, error) {
	min, max := c.dayWindow(date)
	return c.Service.List(c.CalendarID, min, max)
}

// SaveSchedule snapshots the resolved day's events into the named
// schedule file.
func (c *Client) SaveSchedule(dayExpr, name string) error {
	date, err := c.resolve(dayExpr)
	if err != nil {
		return err
	}

	events, err := c.listDay(date)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("%w on %s", ErrNoEventsFound, date.Format(time.DateOnly))
	}

	if err := c.Store.Save(name, events); err != nil {
		return err
	}
	log.Printf("Saved %d events to %s", len(events), c.Store.Path(name))
	return nil
}

// UploadSchedule replays the named schedule onto the resolved target
// date, or onto every date from dayExpr through untilExpr. With confirm
// set, existing events on a target date are deleted after the user
// agrees; declining cancels the whole operation.
func (c *Client) UploadSchedule(name, dayExpr, untilExpr string, confirm bool) error {
	events, err := c.Store.Load(name)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("%w in schedule %q", ErrNoEventsFound, name)
	}

	targets, err := c.resolveTargets(dayExpr, untilExpr)
	if err != nil {
		return err
	}

	for _, target := range targets {
		if confirm {
			if err := c.clearTarget(target); err != nil {
				return err
			}
		}
		if err := c.uploadTo(events, target); err != nil {
			return err
		}
	}
	return nil
}

// uploadTo shifts detached events onto target and inserts them one by
// one, in schedule order.
func (c *Client) uploadTo(events []*calendar.Event, target time.Time) error {
	shifted, err := ShiftTo(events, target)
	if err != nil {
		return err
	}
	for _, ev := range shifted {
		if _, err := c.Service.Insert(c.CalendarID, ev); err != nil {
			return fmt.Errorf("inserting %q on %s: %w", Summary(ev), target.Format(time.DateOnly), err)
		}
	}
	log.Printf("Uploaded %d events to %s", len(shifted), target.Format(time.DateOnly))
	return nil
}

// clearTarget deletes any events already on target, asking first. A
// target with no events needs no confirmation.
func (c *Client) clearTarget(target time.Time) error {
	existing, err := c.listDay(target)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return nil
	}

	prompt := fmt.Sprintf("%d events already exist on %s. Delete them?",
		len(existing), target.Format(time.DateOnly))
	if !c.Confirm(prompt) {
		return fmt.Errorf("%w: %s left untouched", ErrCancelled, target.Format(time.DateOnly))
	}

	for _, ev := range existing {
		if err := c.Service.Delete(c.CalendarID, ev.Id); err != nil {
			return fmt.Errorf("deleting event %s: %w", ev.Id, err)
		}
	}
	return nil
}

// MoveSchedule relocates the events of one day onto another. The
// originals are deleted only after every insertion has succeeded, so a
// partial failure can duplicate events but never lose them.
func (c *Client) MoveSchedule(dayExpr, newDayExpr string) error {
	date, err := c.resolve(dayExpr)
	if err != nil {
		return err
	}
	newDate, err := c.resolve(newDayExpr)
	if err != nil {
		return err
	}

	events, err := c.listDay(date)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("%w on %s", ErrNoEventsFound, date.Format(time.DateOnly))
	}

	if err := c.uploadTo(SanitizeAll(events), newDate); err != nil {
		return err
	}

	for _, ev := range events {
		if err := c.Service.Delete(c.CalendarID, ev.Id); err != nil {
			return fmt.Errorf("deleting original event %s: %w", ev.Id, err)
		}
	}
	log.Printf("Moved %d events from %s to %s",
		len(events), date.Format(time.DateOnly), newDate.Format(time.DateOnly))
	return nil
}

// CopySchedule replays one day's events onto another date, or onto
// every date from newDayExpr through untilExpr. The source date itself
// is skipped if it falls inside the target range.
func (c *Client) CopySchedule(dayExpr, newDayExpr, untilExpr string, confirm bool) error {
	date, err := c.resolve(dayExpr)
	if err != nil {
		return err
	}

	events, err := c.listDay(date)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("%w on %s", ErrNoEventsFound, date.Format(time.DateOnly))
	}
	detached := SanitizeAll(events)

	targets, err := c.resolveTargets(newDayExpr, untilExpr)
	if err != nil {
		return err
	}

	for _, target := range targets {
		if target.Equal(date) {
			continue
		}
		if confirm {
			if err := c.clearTarget(target); err != nil {
				return err
			}
		}
		if err := c.uploadTo(detached, target); err != nil {
			return err
		}
	}
	return nil
}

// ListDay returns the backend events of the resolved day. An empty day
// is not an error here; callers decide how to report it.
func (c *Client) ListDay(dayExpr string) ([]*calendar.Event, error) {
	date, err := c.resolve(dayExpr)
	if err != nil {
		return nil, err
	}
	return c.listDay(date)
}

// ClearDay deletes every event on the resolved day after confirmation.
func (c *Client) ClearDay(dayExpr string) error {
	date, err := c.resolve(dayExpr)
	if err != nil {
		return err
	}

	events, err := c.listDay(date)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("%w on %s", ErrNoEventsFound, date.Format(time.DateOnly))
	}

	prompt := fmt.Sprintf("Delete %d events on %s?", len(events), date.Format(time.DateOnly))
	if !c.Confirm(prompt) {
		return fmt.Errorf("%w: %s left untouched", ErrCancelled, date.Format(time.DateOnly))
	}

	for _, ev := range events {
		if err := c.Service.Delete(c.CalendarID, ev.Id); err != nil {
			return fmt.Errorf("deleting event %s: %w", ev.Id, err)
		}
	}
	log.Printf("Deleted %d events on %s", len(events), date.Format(time.DateOnly))
	return nil
}
