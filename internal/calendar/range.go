package calendar

import (
	"time"

	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
)

// View is the calendar zoom level determining the visible range and
// bucketing resolution.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// ParseView validates a raw view string, defaulting empty input to month.
func ParseView(raw string) (View, error) {
	switch View(raw) {
	case ViewMonth, ViewWeek, ViewDay:
		return View(raw), nil
	case "":
		return ViewMonth, nil
	}
	return "", appErrors.Clone(appErrors.ErrValidation, "view must be one of month, week, day")
}

// Range is the inclusive visible interval of a calendar view.
type Range struct {
	Start time.Time
	End   time.Time
}

// ComputeRange returns the visible interval containing reference for the
// given view. Weeks begin on Sunday. Both bounds are inclusive instants; the
// end sits a nanosecond before the following period begins.
func ComputeRange(reference time.Time, view View) Range {
	switch view {
	case ViewWeek:
		start := StartOfWeek(reference)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
	case ViewDay:
		start := StartOfDay(reference)
		return Range{Start: start, End: endOfDay(start)}
	default:
		start := StartOfMonth(reference)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 1, -1))}
	}
}

// MonthGridRange is the fetch interval of the six-week month grid. It is
// wider than the month itself whenever the grid leads or trails into the
// neighbouring months, so those cells can carry their own sessions and
// holidays.
func MonthGridRange(reference time.Time) Range {
	start := StartOfWeek(StartOfMonth(reference))
	return Range{Start: start, End: endOfDay(start.AddDate(0, 0, 41))}
}

// Next advances reference by one unit of the view.
func Next(reference time.Time, view View) time.Time {
	return step(reference, view, 1)
}

// Previous moves reference back by one unit of the view.
func Previous(reference time.Time, view View) time.Time {
	return step(reference, view, -1)
}

func step(reference time.Time, view View, direction int) time.Time {
	switch view {
	case ViewWeek:
		return reference.AddDate(0, 0, 7*direction)
	case ViewDay:
		return reference.AddDate(0, 0, direction)
	default:
		return reference.AddDate(0, direction, 0)
	}
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
