package usecase

import (
	"context"
	"errors"
	"testing"

	"smart-reminders/internal/model"
	"smart-reminders/internal/reminder"
	"smart-reminders/pkg/datemath"
)

func TestParseBulk(t *testing.T) {
	uc, reg := newTestUseCase(t, Config{MaxBulkSegments: 3})
	ctx := context.Background()
	sc := model.Scope{Source: model.SourceCLI}

	t.Run("Success", func(t *testing.T) {
		out, err := uc.ParseBulk(ctx, sc, reminder.BulkInput{Text: "Buy milk, Call mom tomorrow 5pm, , pay rent next week"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Reminders) != 3 {
			t.Fatalf("expected 3 reminders, got %d", len(out.Reminders))
		}

		wantTitles := []string{"Buy milk", "Call mom", "Pay rent"}
		wantSections := []datemath.Section{datemath.SectionToday, datemath.SectionTomorrow, datemath.SectionLater}
		seen := map[string]bool{}
		for i, r := range out.Reminders {
			if r.Parsed.Title != wantTitles[i] {
				t.Errorf("reminder %d Title = %q, want %q", i, r.Parsed.Title, wantTitles[i])
			}
			if r.Section != wantSections[i] {
				t.Errorf("reminder %d Section = %s, want %s", i, r.Section, wantSections[i])
			}
			if seen[r.ID] {
				t.Errorf("duplicate ID %q", r.ID)
			}
			seen[r.ID] = true
		}

		if got := counterValue(t, reg, "smart_reminders_parser_reminders_parsed_total",
			map[string]string{"source": "cli"}); got != 3 {
			t.Errorf("parsed_total{cli} = %v, want 3", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := uc.ParseBulk(ctx, sc, reminder.BulkInput{Text: " , ,"})
		if !errors.Is(err, reminder.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Too Many Segments", func(t *testing.T) {
		_, err := uc.ParseBulk(ctx, sc, reminder.BulkInput{Text: "a, b, c, d"})
		if !errors.Is(err, reminder.ErrTooManySegments) {
			t.Errorf("expected ErrTooManySegments, got %v", err)
		}
	})

	t.Run("No Cap", func(t *testing.T) {
		unbounded, _ := newTestUseCase(t, Config{})
		out, err := unbounded.ParseBulk(ctx, sc, reminder.BulkInput{Text: "a, b, c, d, e"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Reminders) != 5 {
			t.Errorf("expected 5 reminders, got %d", len(out.Reminders))
		}
	})
}
