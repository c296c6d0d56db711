package schedule

import "errors"

var (
	ErrNoEventsFound       = errors.New("no events found")
	ErrMalformedTimestamp  = errors.New("malformed timestamp")
	ErrDuplicateIdentifier = errors.New("duplicate event identifier")
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrMalformedSchedule   = errors.New("malformed schedule file")
	ErrCancelled           = errors.New("operation cancelled")
)
