// Package dates turns human-friendly date expressions ("today",
// "next friday", "2019-3-8") into concrete calendar dates and provides
// Sunday-anchored week and date-range helpers.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDateExpression = errors.New("invalid date expression")
	ErrInvalidRange          = errors.New("invalid date range")
)

var (
	datePattern     = regexp.MustCompile(`^(\d{4})[:/.-](\d{1,2})[:/.-](\d{1,2})$`)
	relativePattern = regexp.MustCompile(`^(next|last)\s+([a-z]+)$`)
)

// weekdayIndex maps weekday names to their position in a Week.
var weekdayIndex = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// Week is the seven dates of a Sunday-anchored week, index 0 = Sunday
// through index 6 = Saturday.
type Week [7]time.Time

// Midnight truncates t to its calendar date. Dates are anchored in UTC
// regardless of t's zone; the rest of the program works in a single
// fixed local offset and compares wall-clock components only.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysOfWeek returns the Sunday-anchored week containing d. The Sunday
// is found by walking backward one day at a time so month and year
// boundaries are handled by the calendar, not by modular arithmetic.
func DaysOfWeek(d time.Time) Week {
	day := Midnight(d)
	for day.Weekday() != time.Sunday {
		day = day.AddDate(0, 0, -1)
	}
	var w Week
	for i := range w {
		w[i] = day.AddDate(0, 0, i)
	}
	return w
}

// CurrentWeek returns the week containing today. It is recomputed on
// every call; week membership depends on the wall clock.
func CurrentWeek() Week {
	return DaysOfWeek(time.Now())
}

// DayRange returns every date from from to to inclusive, ascending.
func DayRange(from, to time.Time) ([]time.Time, error) {
	from, to = Midnight(from), Midnight(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s is before %s",
			ErrInvalidRange, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	days := []time.Time{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// Resolve parses a date expression relative to the current date.
func Resolve(expr string) (time.Time, error) {
	return ResolveAt(expr, time.Now())
}

// ResolveAt parses a date expression relative to now. Recognized forms,
// in precedence order: the literals today/tomorrow/yesterday, "next" or
// "last" plus a weekday name, a bare weekday name within the current
// week, and a YYYY-MM-DD literal with any of ":/.-" as separator.
func ResolveAt(expr string, now time.Time) (time.Time, error) {
	today := Midnight(now)
	day := strings.ToLower(strings.TrimSpace(expr))

	switch day {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if m := relativePattern.FindStringSubmatch(day); m != nil {
		idx, ok := weekdayIndex[m[2]]
		if !ok {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateExpression, expr)
		}
		base := DaysOfWeek(now)[idx]
		if m[1] == "next" {
			return base.AddDate(0, 0, 7), nil
		}
		return base.AddDate(0, 0, -7), nil
	}

	if idx, ok := weekdayIndex[day]; ok {
		return DaysOfWeek(now)[idx], nil
	}

	if m := datePattern.FindStringSubmatch(day); m != nil {
		return dateFromLiteral(expr, m)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateExpression, expr)
}

func dateFromLiteral(expr string, groups []string) (time.Time, error) {
	year, _ := strconv.Atoi(groups[1])
	month, _ := strconv.Atoi(groups[2])
	day, _ := strconv.Atoi(groups[3])

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components ("2019-13-40"); a
	// literal that does not survive the round trip is not a real date.
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateExpression, expr)
	}
	return d, nil
}
