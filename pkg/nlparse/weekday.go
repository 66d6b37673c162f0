package nlparse

import (
	"regexp"
	"time"
)

// weekdayAlternation matches full weekday names and their common
// abbreviations. Longer spellings come first.
const weekdayAlternation = `sunday|monday|tuesday|wednesday|thursday|friday|saturday|` +
	`tues|thurs|thur|sun|mon|tue|wed|thu|fri|sat`

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tues":      time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thurs":     time.Thursday,
	"thur":      time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

var weekdayToken = regexp.MustCompile(`\b(` + weekdayAlternation + `)\b`)

// weekdaySet collects the distinct weekdays named in text, ascending 0(Sun)..6(Sat).
func weekdaySet(text string) []int {
	var seen [7]bool
	for _, name := range weekdayToken.FindAllString(text, -1) {
		seen[weekdayByName[name]] = true
	}
	days := make([]int, 0, 7)
	for d, ok := range seen {
		if ok {
			days = append(days, d)
		}
	}
	return days
}
