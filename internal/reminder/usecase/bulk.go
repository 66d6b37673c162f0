package usecase

import (
	"context"
	"fmt"

	"smart-reminders/internal/model"
	"smart-reminders/internal/reminder"
	"smart-reminders/pkg/nlparse"
)

// ParseBulk parses every comma-separated phrase against the same instant.
func (uc *implUseCase) ParseBulk(ctx context.Context, sc model.Scope, input reminder.BulkInput) (reminder.BulkOutput, error) {
	segments := nlparse.SplitSegments(input.Text)
	if len(segments) == 0 {
		uc.metrics.observeRejected(reasonEmpty)
		return reminder.BulkOutput{}, reminder.ErrEmptyInput
	}
	if uc.cfg.MaxBulkSegments > 0 && len(segments) > uc.cfg.MaxBulkSegments {
		uc.metrics.observeRejected(reasonTooManySegments)
		return reminder.BulkOutput{}, fmt.Errorf("%w: %d segments, limit is %d",
			reminder.ErrTooManySegments, len(segments), uc.cfg.MaxBulkSegments)
	}

	now := uc.now(input.Now)
	reminders := make([]reminder.Reminder, 0, len(segments))
	for _, segment := range segments {
		reminders = append(reminders, uc.build(ctx, sc, segment, now))
	}

	uc.l.Infof(ctx, "reminder.usecase.ParseBulk: parsed %d reminders", len(reminders))
	return reminder.BulkOutput{Reminders: reminders}, nil
}
