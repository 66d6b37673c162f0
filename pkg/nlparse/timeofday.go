package nlparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timeRule resolves one time-of-day phrase. resolve receives the lowercased
// text and the submatch indexes of pattern; it returns ok=false to let the
// next rule try.
type timeRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(text string, m []int) (clock string, ok bool)
	score   int
}

// timeRules run top to bottom, first match wins. Named moments come first
// because they are unambiguous; numeric patterns go from most to least
// specific so a bare "3pm" never shadows "at 3:30pm".
var timeRules = []timeRule{
	{
		name:    "midnight",
		pattern: regexp.MustCompile(`\bmidnight\b`),
		resolve: fixedClock("00:00"),
		score:   15,
	},
	{
		name:    "noon",
		pattern: regexp.MustCompile(`\b(?:noon|midday)\b`),
		resolve: fixedClock("12:00"),
		score:   15,
	},
	{
		name:    "morning",
		pattern: regexp.MustCompile(`\b(early\s+)?morning\b`),
		resolve: func(text string, m []int) (string, bool) {
			if precededByWord(text, m[0], "this") {
				return "", false
			}
			if m[2] >= 0 {
				return "06:00", true
			}
			return "09:00", true
		},
		score: 10,
	},
	{
		name:    "evening",
		pattern: regexp.MustCompile(`\bevening\b`),
		resolve: fixedClock("18:00"),
		score:   10,
	},
	{
		name:    "afternoon",
		pattern: regexp.MustCompile(`\bafternoon\b`),
		resolve: fixedClock("14:00"),
		score:   10,
	},
	{
		name:    "night",
		pattern: regexp.MustCompile(`\bnight\b`),
		resolve: func(text string, _ []int) (string, bool) {
			if tonightPattern.MatchString(text) {
				return "", false
			}
			return "21:00", true
		},
		score: 10,
	},
	{
		name:    "end of day",
		pattern: regexp.MustCompile(`\b(?:end\s+of\s+(?:the\s+)?day|eod)\b`),
		resolve: fixedClock("17:00"),
		score:   15,
	},
	{
		name:    "at h:mm am/pm",
		pattern: regexp.MustCompile(`\bat\s+(\d{1,2}):(\d{2})\s*(am|pm)\b`),
		resolve: meridiemClock,
		score:   20,
	},
	{
		name:    "at h am/pm",
		pattern: regexp.MustCompile(`\bat\s+(\d{1,2})()\s*(am|pm)\b`),
		resolve: meridiemClock,
		score:   20,
	},
	{
		name:    "h:mm am/pm",
		pattern: regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)\b`),
		resolve: meridiemClock,
		score:   20,
	},
	{
		name:    "ham/pm",
		pattern: regexp.MustCompile(`\b(\d{1,2})()\s?(am|pm)\b`),
		resolve: meridiemClock,
		score:   20,
	},
	{
		name:    "at hh:mm",
		pattern: regexp.MustCompile(`\bat\s+(\d{1,2}):(\d{2})\b`),
		resolve: func(text string, m []int) (string, bool) {
			hour, _ := strconv.Atoi(text[m[2]:m[3]])
			minute, _ := strconv.Atoi(text[m[4]:m[5]])
			if hour > 23 || minute > 59 {
				return "", false
			}
			return formatClock(hour, minute), true
		},
		score: 20,
	},
}

var tonightPattern = regexp.MustCompile(`\btonight\b`)

// extractTime sets DueTime from the first matching time rule.
func (s *parseState) extractTime() {
	for _, rule := range timeRules {
		m := rule.pattern.FindStringSubmatchIndex(s.text)
		if m == nil {
			continue
		}
		clock, ok := rule.resolve(s.text, m)
		if !ok {
			continue
		}
		s.result.DueTime = clock
		s.score(rule.score)
		return
	}
}

func fixedClock(clock string) func(string, []int) (string, bool) {
	return func(string, []int) (string, bool) {
		return clock, true
	}
}

// meridiemClock converts a 12-hour match (hour, optional minute, am/pm) to HH:MM.
// The minute group may be empty.
func meridiemClock(text string, m []int) (string, bool) {
	hour, err := strconv.Atoi(text[m[2]:m[3]])
	if err != nil || hour < 1 || hour > 12 {
		return "", false
	}
	minute := 0
	if m[4] >= 0 && m[5] > m[4] {
		minute, _ = strconv.Atoi(text[m[4]:m[5]])
		if minute > 59 {
			return "", false
		}
	}
	switch text[m[6]:m[7]] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return formatClock(hour, minute), true
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// precededByWord reports whether the word immediately before offset is word.
func precededByWord(text string, offset int, word string) bool {
	before := strings.TrimRight(text[:offset], " \t")
	if !strings.HasSuffix(before, word) {
		return false
	}
	rest := before[:len(before)-len(word)]
	if rest == "" {
		return true
	}
	last := rest[len(rest)-1]
	return !isWordByte(last)
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
