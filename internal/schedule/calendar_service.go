package schedule

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

// CalendarEventsService is the backend contract the orchestration layer
// consumes. Listing returns single (recurrence-expanded) events ordered
// by start time; a zero from or to leaves that bound open.
type CalendarEventsService interface {
	List(calendarID string, from, to time.Time) ([]*calendar.Event, error)
	Insert(calendarID string, event *calendar.Event) (*calendar.Event, error)
	Delete(calendarID string, eventID string) error
}

// googleEventsService implements CalendarEventsService on the Google
// Calendar API client.
type googleEventsService struct {
	service *calendar.Service
}

func NewGoogleEventsService(service *calendar.Service) CalendarEventsService {
	return &googleEventsService{service: service}
}

func (g *googleEventsService) List(calendarID string, from, to time.Time) ([]*calendar.Event, error) {
	call := g.service.Events.List(calendarID).
		SingleEvents(true).
		OrderBy("startTime")

	if !from.IsZero() {
		call = call.TimeMin(from.UTC().Format(time.RFC3339))
	}
	if !to.IsZero() {
		call = call.TimeMax(to.UTC().Format(time.RFC3339))
	}

	allEvents := []*calendar.Event{}
	err := call.Pages(context.Background(), func(events *calendar.Events) error {
		allEvents = append(allEvents, events.Items...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return allEvents, nil
}

func (g *googleEventsService) Insert(calendarID string, event *calendar.Event) (*calendar.Event, error) {
	inserted, err := g.service.Events.Insert(calendarID, event).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateIdentifier, err)
		}
		return nil, err
	}
	return inserted, nil
}

func (g *googleEventsService) Delete(calendarID string, eventID string) error {
	return g.service.Events.Delete(calendarID, eventID).Do()
}
