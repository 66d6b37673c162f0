package ics

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"smart-reminders/pkg/nlparse"
)

var freqByUnit = map[nlparse.RecurrenceUnit]rrule.Frequency{
	nlparse.UnitDays:   rrule.DAILY,
	nlparse.UnitWeeks:  rrule.WEEKLY,
	nlparse.UnitMonths: rrule.MONTHLY,
	nlparse.UnitYears:  rrule.YEARLY,
}

// 0 = Sunday, matching ParsedReminder.RecurrenceDays.
var weekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// RuleFor converts the reminder's repeat rule into an RRULE option set.
// ok is false for non-recurring reminders.
func RuleFor(r nlparse.ParsedReminder) (opt *rrule.ROption, ok bool) {
	if !r.IsRecurring() {
		return nil, false
	}
	freq, known := freqByUnit[r.RecurrenceUnit]
	if !known {
		return nil, false
	}

	opt = &rrule.ROption{
		Freq:     freq,
		Interval: r.RecurrenceInterval,
	}
	for _, d := range r.RecurrenceDays {
		if d >= 0 && d < len(weekdays) {
			opt.Byweekday = append(opt.Byweekday, weekdays[d])
		}
	}
	return opt, true
}

// Start returns the instant the reminder is first due in loc: the due date at
// the due time, or at midnight when there is no time.
func Start(r nlparse.ParsedReminder, loc *time.Location) (time.Time, error) {
	if r.HasTime() {
		t, err := time.ParseInLocation("2006-01-02 15:04", r.DueDate+" "+r.DueTime, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("ics: invalid due date/time %q %q: %w", r.DueDate, r.DueTime, err)
		}
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", r.DueDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("ics: invalid due date %q: %w", r.DueDate, err)
	}
	return t, nil
}

// Occurrences lists the first n due instants of r in loc. A non-recurring
// reminder yields only its due instant.
func Occurrences(r nlparse.ParsedReminder, loc *time.Location, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}
	start, err := Start(r, loc)
	if err != nil {
		return nil, err
	}

	opt, ok := RuleFor(r)
	if !ok {
		return []time.Time{start}, nil
	}
	opt.Dtstart = start
	opt.Count = n

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("ics: build rrule: %w", err)
	}
	return rule.All(), nil
}
