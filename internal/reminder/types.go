package reminder

import (
	"time"

	"smart-reminders/pkg/datemath"
	"smart-reminders/pkg/nlparse"
)

// --- Domain Model ---

// Reminder is a parsed phrase together with where it sits on the agenda.
type Reminder struct {
	ID       string
	Text     string
	Parsed   nlparse.ParsedReminder
	Section  datemath.Section
	ParsedAt time.Time
}

// Export formats.
const (
	FormatICS  = "ics"
	FormatJSON = "json"
)

// --- UseCase Inputs ---

// ParseInput is one phrase. A zero Now means the use case clock.
type ParseInput struct {
	Text string
	Now  time.Time
}

type BulkInput struct {
	Text string
	Now  time.Time
}

type ExportInput struct {
	Text   string
	Format string
	Now    time.Time
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Reminder Reminder
}

type BulkOutput struct {
	Reminders []Reminder
}

type ExportOutput struct {
	Reminders   []Reminder
	ContentType string
	Body        []byte
}
