package reminder

import (
	"context"

	"smart-reminders/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns one phrase into a reminder.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
	// Preview parses while the user is still typing; short input is rejected.
	Preview(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
	// ParseBulk parses every comma-separated phrase independently.
	ParseBulk(ctx context.Context, sc model.Scope, input BulkInput) (BulkOutput, error)
	// Export parses phrases and renders them as a calendar feed.
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}
