package nlparse

import (
	"strings"
	"time"

	"smart-reminders/pkg/datemath"
)

// Parser turns free-text phrases into ParsedReminder values.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	calendar        *datemath.Calendar
	dueDatePriority bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithDueDatePriority enables the legacy policy of inferring priority from how
// close the due date is when no explicit priority keyword is present.
func WithDueDatePriority(enabled bool) Option {
	return func(p *Parser) {
		p.dueDatePriority = enabled
	}
}

// NewParser creates a parser resolving dates in the given IANA timezone.
// An empty timezone uses the process-local zone.
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	cal, err := datemath.NewCalendar(timezone)
	if err != nil {
		return nil, err
	}
	return NewParserWithCalendar(cal, opts...), nil
}

// NewParserWithCalendar creates a parser on an existing calendar.
func NewParserWithCalendar(cal *datemath.Calendar, opts ...Option) *Parser {
	p := &Parser{calendar: cal}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Calendar returns the calendar the parser resolves dates with.
func (p *Parser) Calendar() *datemath.Calendar {
	return p.calendar
}

// Parse extracts a reminder from text. now is the reference instant "today"
// and relative phrases are resolved against. Parse never fails: anything it
// cannot recognize falls back to a default and simply scores lower.
func (p *Parser) Parse(text string, now time.Time) ParsedReminder {
	s := &parseState{
		parser: p,
		raw:    text,
		text:   strings.ToLower(text),
		now:    now.In(p.calendar.Location()),
		result: ParsedReminder{
			Priority:   PriorityMedium,
			Category:   CategoryOther,
			Recurrence: RecurrenceNone,
		},
	}
	s.today = p.calendar.Today(s.now)
	s.result.DueDate = p.calendar.FormatDate(s.today)

	// Order matters: date phrases like "tonight" only fill the time when the
	// time extractor left it empty.
	s.extractTime()
	s.extractDate()
	s.inferRecurrence()
	s.classifyCategory()
	s.classifyPriority()
	s.extractTitle()

	if s.result.Confidence > MaxConfidence {
		s.result.Confidence = MaxConfidence
	}
	return s.result
}

// parseState is the per-call accumulator shared by the extraction steps.
type parseState struct {
	parser *Parser
	raw    string
	text   string // lowercased raw
	now    time.Time
	today  time.Time
	result ParsedReminder

	dateFound bool
}

func (s *parseState) score(points int) {
	s.result.Confidence += points
}
