package nlparse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// stripRule removes one family of recognized tokens from the title.
type stripRule struct {
	name    string
	pattern *regexp.Regexp
}

const (
	// dateLead is the connector words that may precede a date phrase.
	dateLead = `(?:(?:on|by|due|starting|beginning|from|until|before|this|next)\s+)*`
	// clockLead is the connector words that may precede a time phrase.
	clockLead = `(?:(?:by|around|before|after|until|from)\s+)?`
	// partLead is the connector words that may precede a named part of day.
	partLead = `(?:(?:at|by|around|before|after|until|from|in\s+the|this)\s+)?`
)

// titleStripRules run in order over the original-cased text. Within each
// family the most specific pattern runs first: "every 3 days" has to go
// before the bare "every day" strip, otherwise "3 days" leaks into the title.
var titleStripRules = []stripRule{
	{"filler", regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:remind\s+me\s+to|remind\s+me\s+about|remind\s+me|don[’']?t\s+forget\s+to|do\s+not\s+forget\s+to|remember\s+to|i\s+need\s+to|need\s+to|i\s+have\s+to|have\s+to|i\s+should)\b`)},

	{"every n units", regexp.MustCompile(`(?i)\bevery\s+\d+\s+(?:day|week|month|year)s?\b`)},
	{"every weekday list", regexp.MustCompile(`(?i)\bevery\s+` + weekdayList + `(?:(?:\s*,\s*(?:and\s+)?|\s+and\s+)` + weekdayList + `)+\b`)},
	{"every weekday or weekend", regexp.MustCompile(`(?i)\bevery\s+week(?:day|end)s?\b`)},
	{"every weekday name", regexp.MustCompile(`(?i)\bevery\s+` + weekdayList + `\b`)},
	{"every other", regexp.MustCompile(`(?i)\b(?:every\s+other\s+(?:day|week|month|year)|bi-?weekly|bi-?monthly)\b`)},
	{"every unit", regexp.MustCompile(`(?i)\b(?:every\s+(?:day|week|month|year)|daily|weekly|monthly|yearly|annually)\b`)},

	{"at h:mm am/pm", regexp.MustCompile(`(?i)\b` + clockLead + `at\s+\d{1,2}:\d{2}\s*[ap]m\b`)},
	{"at h am/pm", regexp.MustCompile(`(?i)\b` + clockLead + `at\s+\d{1,2}\s*[ap]m\b`)},
	{"h:mm am/pm", regexp.MustCompile(`(?i)\b` + clockLead + `\d{1,2}:\d{2}\s*[ap]m\b`)},
	{"ham/pm", regexp.MustCompile(`(?i)\b` + clockLead + `\d{1,2}\s?[ap]m\b`)},
	{"at hh:mm", regexp.MustCompile(`(?i)\b` + clockLead + `at\s+\d{1,2}:\d{2}\b`)},
	{"part of day", regexp.MustCompile(`(?i)\b` + partLead + `(?:midnight|noon|midday|end\s+of\s+(?:the\s+)?day|eod|(?:early\s+)?morning|afternoon|evening|tonight|night)\b`)},

	{"relative day", regexp.MustCompile(`(?i)\b` + dateLead + `(?:today|tomorrow|next\s+week|this\s+weekend)\b`)},
	{"in n units", regexp.MustCompile(`(?i)\b` + dateLead + `in\s+(?:\d+|an?)\s+(?:day|hour|week|month)s?\b`)},
	{"weekday", regexp.MustCompile(`(?i)\b` + dateLead + weekdayList + `\b`)},
	{"iso date", regexp.MustCompile(`(?i)\b` + dateLead + `\d{4}-\d{2}-\d{2}\b`)},

	{"priority", regexp.MustCompile(`(?i)\b(?:(?:high|top|low|medium|normal)[\s-]priority|not\s+(?:that\s+|very\s+)?(?:urgent|important)|no\s+rush|urgent|urgently|asap|immediately|critical|emergency|important|crucial|whenever|someday|eventually)\b`)},

	{"leading connector", regexp.MustCompile(`(?i)^\s*(?:to|and)\s+`)},
	{"trailing connector", regexp.MustCompile(`(?i)(?:\s+(?:to|at|on|by|due|starting|beginning|and))+\s*$`)},
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	spaceBeforeP  = regexp.MustCompile(`\s+([,;:!?])`)
)

const titleTrimSet = " \t,;:-–—"

// extractTitle strips every recognized token and keeps what is left as the
// label. When stripping leaves nothing, or removes nothing at all, the raw
// input is used as the title verbatim and no confidence is added.
func (s *parseState) extractTitle() {
	title := s.raw
	for _, rule := range titleStripRules {
		title = rule.pattern.ReplaceAllString(title, " ")
	}
	title = tidy(title)

	if title == "" || title == tidy(s.raw) {
		s.result.Title = s.raw
		return
	}
	s.result.Title = capitalize(title)
	s.score(25)
}

// tidy collapses whitespace and trims stray separators.
func tidy(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = spaceBeforeP.ReplaceAllString(text, "$1")
	return strings.Trim(text, titleTrimSet)
}

func capitalize(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}
