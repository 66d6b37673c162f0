package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"smart-reminders/internal/model"
	"smart-reminders/internal/reminder"
	"smart-reminders/pkg/datemath"
)

// Parse parses one phrase into a reminder.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input reminder.ParseInput) (reminder.ParseOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		uc.metrics.observeRejected(reasonEmpty)
		return reminder.ParseOutput{}, reminder.ErrEmptyInput
	}

	r := uc.build(ctx, sc, text, uc.now(input.Now))
	return reminder.ParseOutput{Reminder: r}, nil
}

// Preview parses text for the live preview. Input shorter than the configured
// minimum is rejected.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input reminder.ParseInput) (reminder.ParseOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		uc.metrics.observeRejected(reasonEmpty)
		return reminder.ParseOutput{}, reminder.ErrEmptyInput
	}
	if utf8.RuneCountInString(text) < uc.cfg.MinPreviewLength {
		uc.metrics.observeRejected(reasonTooShort)
		return reminder.ParseOutput{}, reminder.ErrInputTooShort
	}

	r := uc.build(ctx, sc, text, uc.now(input.Now))
	return reminder.ParseOutput{Reminder: r}, nil
}

// build runs the parser and places the result on the agenda.
func (uc *implUseCase) build(ctx context.Context, sc model.Scope, text string, now time.Time) reminder.Reminder {
	started := time.Now()
	parsed := uc.parser.Parse(text, now)
	uc.metrics.observeParsed(sc.Source, parsed, time.Since(started))

	section, err := uc.parser.Calendar().Section(parsed.DueDate, now)
	if err != nil {
		uc.l.Warnf(ctx, "reminder.usecase.build.Section: %v", err)
		section = datemath.SectionToday
	}

	uc.l.Debugf(ctx, "reminder.usecase.build: %q -> title=%q due=%s %s category=%s priority=%s recurrence=%s confidence=%d",
		text, parsed.Title, parsed.DueDate, parsed.DueTime, parsed.Category, parsed.Priority, parsed.Recurrence, parsed.Confidence)

	return reminder.Reminder{
		ID:       uc.newID(),
		Text:     text,
		Parsed:   parsed,
		Section:  section,
		ParsedAt: now,
	}
}
