package nlparse

import (
	"regexp"
	"strconv"
	"time"
)

// dateRule resolves one date phrase. apply returns false when the match turns
// out to be unusable, letting the next rule try.
type dateRule struct {
	name    string
	pattern *regexp.Regexp
	apply   func(s *parseState, m []string) bool
	score   int
}

// dateRules run top to bottom, first match wins.
var dateRules = []dateRule{
	{
		name:    "today",
		pattern: regexp.MustCompile(`\btoday\b`),
		apply: func(s *parseState, _ []string) bool {
			s.setDate(s.today)
			return true
		},
		score: 20,
	},
	{
		name:    "tonight",
		pattern: tonightPattern,
		apply: func(s *parseState, _ []string) bool {
			s.setDate(s.today)
			s.defaultTime("20:00")
			return true
		},
		score: 20,
	},
	{
		name:    "tomorrow",
		pattern: regexp.MustCompile(`\btomorrow\b`),
		apply: func(s *parseState, _ []string) bool {
			s.setDate(s.parser.calendar.AddDays(s.today, 1))
			return true
		},
		score: 20,
	},
	{
		name:    "next week",
		pattern: regexp.MustCompile(`\bnext\s+week\b`),
		apply: func(s *parseState, _ []string) bool {
			s.setDate(s.parser.calendar.AddDays(s.today, 7))
			return true
		},
		score: 15,
	},
	{
		name:    "this weekend",
		pattern: regexp.MustCompile(`\bthis\s+weekend\b`),
		apply: func(s *parseState, _ []string) bool {
			s.setDate(s.parser.calendar.Weekend(s.today))
			return true
		},
		score: 15,
	},
	{
		name:    "this part of day",
		pattern: regexp.MustCompile(`\bthis\s+(morning|afternoon|evening)\b`),
		apply: func(s *parseState, m []string) bool {
			s.setDate(s.today)
			s.defaultTime(partOfDayClock[m[1]])
			return true
		},
		score: 15,
	},
	{
		name:    "in n days",
		pattern: regexp.MustCompile(`\bin\s+(\d+|an?)\s+days?\b`),
		apply: func(s *parseState, m []string) bool {
			n, ok := countWord(m[1])
			if !ok {
				return false
			}
			s.setDate(s.parser.calendar.AddDays(s.today, n))
			return true
		},
		score: 15,
	},
	{
		name:    "in n hours",
		pattern: regexp.MustCompile(`\bin\s+(\d+|an?)\s+hours?\b`),
		apply: func(s *parseState, m []string) bool {
			n, ok := countWord(m[1])
			if !ok {
				return false
			}
			at := s.now.Add(time.Duration(n) * time.Hour)
			s.result.DueDate = s.parser.calendar.FormatDate(at)
			s.result.DueTime = s.parser.calendar.FormatClock(at)
			return true
		},
		score: 15,
	},
	{
		name:    "in n weeks",
		pattern: regexp.MustCompile(`\bin\s+(\d+|an?)\s+weeks?\b`),
		apply: func(s *parseState, m []string) bool {
			n, ok := countWord(m[1])
			if !ok {
				return false
			}
			s.setDate(s.parser.calendar.AddDays(s.today, 7*n))
			return true
		},
		score: 15,
	},
	{
		name:    "in n months",
		pattern: regexp.MustCompile(`\bin\s+(\d+|an?)\s+months?\b`),
		apply: func(s *parseState, m []string) bool {
			n, ok := countWord(m[1])
			if !ok {
				return false
			}
			s.setDate(s.parser.calendar.AddMonths(s.today, n))
			return true
		},
		score: 15,
	},
	{
		name:    "weekday",
		pattern: regexp.MustCompile(`\b(?:on\s+)?(` + weekdayAlternation + `)\b`),
		apply: func(s *parseState, m []string) bool {
			target := weekdayByName[m[1]]
			skipToday := nextPattern.MatchString(s.text)
			s.setDate(s.parser.calendar.NextWeekday(s.today, target, skipToday))
			return true
		},
		score: 15,
	},
	{
		name:    "iso date",
		pattern: regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
		apply: func(s *parseState, m []string) bool {
			year, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			date, ok := s.parser.calendar.Date(year, time.Month(month), day)
			if !ok {
				return false
			}
			s.setDate(date)
			return true
		},
		score: 15,
	},
}

var nextPattern = regexp.MustCompile(`\bnext\b`)

var partOfDayClock = map[string]string{
	"morning":   "09:00",
	"afternoon": "14:00",
	"evening":   "18:00",
}

// extractDate sets DueDate from the first matching date rule. Without a match
// the due date stays today.
func (s *parseState) extractDate() {
	for _, rule := range dateRules {
		m := rule.pattern.FindStringSubmatch(s.text)
		if m == nil {
			continue
		}
		if !rule.apply(s, m) {
			continue
		}
		s.dateFound = true
		s.score(rule.score)
		return
	}
}

func (s *parseState) setDate(day time.Time) {
	s.result.DueDate = s.parser.calendar.FormatDate(day)
}

// defaultTime fills DueTime only when no explicit time was recognized.
func (s *parseState) defaultTime(clock string) {
	if s.result.DueTime == "" {
		s.result.DueTime = clock
	}
}

// maxCount bounds "in N <unit>" counts so results stay four-digit years.
const maxCount = 9999

// countWord reads a numeric count, treating "a"/"an" as one.
func countWord(word string) (int, bool) {
	switch word {
	case "a", "an":
		return 1, true
	}
	n, err := strconv.Atoi(word)
	if err != nil || n > maxCount {
		return 0, false
	}
	return n, true
}
