package datemath

import (
	"fmt"
	"time"
)

// DateFormat is the calendar date layout used for due dates.
const DateFormat = "2006-01-02"

// TimeFormat is the 24-hour clock layout used for due times.
const TimeFormat = "15:04"

// Calendar performs calendar-day arithmetic in a fixed location.
// All results are derived from the year/month/day fields of the local date,
// never from UTC instants, so a date cannot drift across midnight.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a calendar for the given IANA timezone string.
// An empty timezone means the process-local zone.
func NewCalendar(timezone string) (*Calendar, error) {
	if timezone == "" || timezone == "Local" {
		return &Calendar{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// NewCalendarIn creates a calendar bound to an already loaded location.
func NewCalendarIn(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{location: loc}
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// Today returns midnight of the local day containing now.
func (c *Calendar) Today(now time.Time) time.Time {
	return c.startOfDay(now)
}

// AddDays moves day by n calendar days, keeping it at local midnight.
func (c *Calendar) AddDays(day time.Time, n int) time.Time {
	day = day.In(c.location)
	return time.Date(day.Year(), day.Month(), day.Day()+n, 0, 0, 0, 0, c.location)
}

// AddMonths moves day by n calendar months. Overflowing days normalize the way
// time.Date does (Jan 31 + 1 month = Mar 3 in non-leap years).
func (c *Calendar) AddMonths(day time.Time, n int) time.Time {
	day = day.In(c.location)
	return time.Date(day.Year(), day.Month()+time.Month(n), day.Day(), 0, 0, 0, 0, c.location)
}

// NextWeekday returns the next date on or after day falling on target.
// When skipToday is set and day already is target, a full week is added.
func (c *Calendar) NextWeekday(day time.Time, target time.Weekday, skipToday bool) time.Time {
	day = day.In(c.location)
	diff := (int(target) - int(day.Weekday()) + 7) % 7
	if diff == 0 && skipToday {
		diff = 7
	}
	return c.AddDays(day, diff)
}

// Weekend returns the Saturday of the current weekend. If day already is a
// Saturday or Sunday the day itself is returned.
func (c *Calendar) Weekend(day time.Time) time.Time {
	day = day.In(c.location)
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return c.startOfDay(day)
	}
	return c.NextWeekday(day, time.Saturday, false)
}

// Date builds a local midnight from calendar fields. ok is false when the
// fields do not name a real date (Feb 30, month 13).
func (c *Calendar) Date(year int, month time.Month, dayOfMonth int) (time.Time, bool) {
	t := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, c.location)
	if t.Year() != year || t.Month() != month || t.Day() != dayOfMonth {
		return time.Time{}, false
	}
	return t, true
}

// ParseDate reads a YYYY-MM-DD string as a local calendar date.
func (c *Calendar) ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, value, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// FormatDate renders the local calendar date of t.
func (c *Calendar) FormatDate(t time.Time) string {
	return t.In(c.location).Format(DateFormat)
}

// FormatClock renders the local wall-clock time of t as HH:MM.
func (c *Calendar) FormatClock(t time.Time) string {
	return t.In(c.location).Format(TimeFormat)
}

// DaysBetween counts calendar days from a to b (negative when b is earlier).
func (c *Calendar) DaysBetween(a, b time.Time) int {
	a = c.startOfDay(a)
	b = c.startOfDay(b)
	// Compare as UTC dates so DST shifts never produce a fractional day.
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// startOfDay returns midnight at the start of the given day in the calendar's timezone.
func (c *Calendar) startOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}
