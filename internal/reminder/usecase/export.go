package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smart-reminders/internal/model"
	"smart-reminders/internal/reminder"
	"smart-reminders/pkg/ics"
	"smart-reminders/pkg/nlparse"
)

const uidDomain = "smart-reminders"

// Export parses the phrases in input and renders them in the requested
// format. An empty format means iCalendar.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input reminder.ExportInput) (reminder.ExportOutput, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = reminder.FormatICS
	}
	if format != reminder.FormatICS && format != reminder.FormatJSON {
		uc.metrics.observeRejected(reasonUnsupportedFormat)
		return reminder.ExportOutput{}, fmt.Errorf("%w: %q", reminder.ErrUnsupportedFormat, input.Format)
	}

	now := uc.now(input.Now)
	bulk, err := uc.ParseBulk(ctx, sc, reminder.BulkInput{Text: input.Text, Now: now})
	if err != nil {
		return reminder.ExportOutput{}, err
	}

	out := reminder.ExportOutput{Reminders: bulk.Reminders}
	switch format {
	case reminder.FormatICS:
		entries := make([]ics.Entry, len(bulk.Reminders))
		for i, r := range bulk.Reminders {
			entries[i] = ics.Entry{
				UID:         r.ID + "@" + uidDomain,
				Reminder:    r.Parsed,
				Description: r.Text,
			}
		}
		out.Body, err = uc.encoder.EncodeBytes(entries, now)
		if err != nil {
			uc.l.Errorf(ctx, "reminder.usecase.Export.EncodeBytes: %v", err)
			return reminder.ExportOutput{}, err
		}
		out.ContentType = ics.ContentType

	case reminder.FormatJSON:
		parsed := make([]nlparse.ParsedReminder, len(bulk.Reminders))
		for i, r := range bulk.Reminders {
			parsed[i] = r.Parsed
		}
		out.Body, err = json.Marshal(parsed)
		if err != nil {
			uc.l.Errorf(ctx, "reminder.usecase.Export.Marshal: %v", err)
			return reminder.ExportOutput{}, err
		}
		out.ContentType = "application/json; charset=utf-8"
	}

	return out, nil
}
