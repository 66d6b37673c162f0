package datemath

import "time"

// Section is the list bucket a due date falls into relative to today.
type Section string

const (
	SectionOverdue  Section = "overdue"
	SectionToday    Section = "today"
	SectionTomorrow Section = "tomorrow"
	SectionThisWeek Section = "this_week"
	SectionLater    Section = "later"
)

// thisWeekHorizon is the last day offset still shown under "this week".
const thisWeekHorizon = 6

// Section buckets a YYYY-MM-DD due date against the local day of now.
func (c *Calendar) Section(dueDate string, now time.Time) (Section, error) {
	due, err := c.ParseDate(dueDate)
	if err != nil {
		return "", err
	}
	return SectionFor(c.DaysBetween(now, due)), nil
}

// SectionFor maps a day offset from today to its section.
func SectionFor(daysFromToday int) Section {
	switch {
	case daysFromToday < 0:
		return SectionOverdue
	case daysFromToday == 0:
		return SectionToday
	case daysFromToday == 1:
		return SectionTomorrow
	case daysFromToday <= thisWeekHorizon:
		return SectionThisWeek
	default:
		return SectionLater
	}
}
