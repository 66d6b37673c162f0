package http

import (
	"strings"
	"time"

	"smart-reminders/internal/reminder"
	"smart-reminders/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text          string `json:"text"           binding:"max=10000"`
	ReferenceTime string `json:"reference_time"` // optional RFC 3339 instant, defaults to now
}

func (r parseReq) validate() error {
	_, err := parseReferenceTime(r.ReferenceTime)
	return err
}

func (r parseReq) toInput() reminder.ParseInput {
	now, _ := parseReferenceTime(r.ReferenceTime)
	return reminder.ParseInput{Text: r.Text, Now: now}
}

func (r parseReq) toBulkInput() reminder.BulkInput {
	now, _ := parseReferenceTime(r.ReferenceTime)
	return reminder.BulkInput{Text: r.Text, Now: now}
}

// ---

type exportReq struct {
	parseReq
	Format string `json:"format" binding:"omitempty,oneof=ics json ICS JSON"`
}

func (r exportReq) toInput() reminder.ExportInput {
	now, _ := parseReferenceTime(r.ReferenceTime)
	return reminder.ExportInput{Text: r.Text, Format: r.Format, Now: now}
}

func parseReferenceTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errInvalidReferenceTime
	}
	return t, nil
}

// --- Response DTOs ---

type reminderResp struct {
	ID                 string            `json:"id"`
	Text               string            `json:"text"`
	Title              string            `json:"title"`
	DueDate            string            `json:"due_date"`
	DueTime            string            `json:"due_time,omitempty"`
	Priority           string            `json:"priority"`
	Category           string            `json:"category"`
	Recurrence         string            `json:"recurrence"`
	RecurrenceInterval int               `json:"recurrence_interval,omitempty"`
	RecurrenceUnit     string            `json:"recurrence_unit,omitempty"`
	RecurrenceDays     []int             `json:"recurrence_days,omitempty"`
	Confidence         int               `json:"confidence"`
	Section            string            `json:"section"`
	ParsedAt           response.DateTime `json:"parsed_at" swaggertype:"string"`
}

func newReminderResp(r reminder.Reminder) reminderResp {
	p := r.Parsed
	return reminderResp{
		ID:                 r.ID,
		Text:               r.Text,
		Title:              p.Title,
		DueDate:            p.DueDate,
		DueTime:            p.DueTime,
		Priority:           string(p.Priority),
		Category:           string(p.Category),
		Recurrence:         string(p.Recurrence),
		RecurrenceInterval: p.RecurrenceInterval,
		RecurrenceUnit:     string(p.RecurrenceUnit),
		RecurrenceDays:     p.RecurrenceDays,
		Confidence:         p.Confidence,
		Section:            string(r.Section),
		ParsedAt:           response.DateTime(r.ParsedAt),
	}
}

type parseResp struct {
	Reminder reminderResp `json:"reminder"`
}

func (h *handler) newParseResp(out reminder.ParseOutput) parseResp {
	return parseResp{Reminder: newReminderResp(out.Reminder)}
}

type bulkResp struct {
	Reminders []reminderResp            `json:"reminders"`
	Sections  map[string][]reminderResp `json:"sections"`
	Total     int                       `json:"total"`
}

// newBulkResp lists reminders in input order and also grouped by agenda
// section.
func (h *handler) newBulkResp(out reminder.BulkOutput) bulkResp {
	resp := bulkResp{
		Reminders: make([]reminderResp, len(out.Reminders)),
		Sections:  make(map[string][]reminderResp),
		Total:     len(out.Reminders),
	}
	for i, r := range out.Reminders {
		item := newReminderResp(r)
		resp.Reminders[i] = item
		resp.Sections[item.Section] = append(resp.Sections[item.Section], item)
	}
	return resp
}
