package usecase

import (
	"context"
	"errors"
	"testing"

	"smart-reminders/internal/model"
	"smart-reminders/internal/reminder"
	"smart-reminders/pkg/datemath"
	"smart-reminders/pkg/nlparse"
)

func TestParse(t *testing.T) {
	uc, reg := newTestUseCase(t, Config{MinPreviewLength: 3})
	ctx := context.Background()
	sc := model.Scope{Source: model.SourceHTTP}

	t.Run("Empty", func(t *testing.T) {
		_, err := uc.Parse(ctx, sc, reminder.ParseInput{Text: "   "})
		if !errors.Is(err, reminder.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		out, err := uc.Parse(ctx, sc, reminder.ParseInput{Text: "  Call mom tomorrow at 5pm  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		r := out.Reminder
		if r.ID == "" {
			t.Errorf("expected an ID")
		}
		if r.Text != "Call mom tomorrow at 5pm" {
			t.Errorf("Text = %q, want trimmed input", r.Text)
		}
		if r.Parsed.Title != "Call mom" || r.Parsed.DueDate != "2024-05-08" || r.Parsed.DueTime != "17:00" {
			t.Errorf("unexpected parse: %+v", r.Parsed)
		}
		if r.Parsed.Category != nlparse.CategoryFamily {
			t.Errorf("Category = %s, want family", r.Parsed.Category)
		}
		if r.Section != datemath.SectionTomorrow {
			t.Errorf("Section = %s, want tomorrow", r.Section)
		}
		if !r.ParsedAt.Equal(testNow) {
			t.Errorf("ParsedAt = %v, want clock time %v", r.ParsedAt, testNow)
		}
	})

	t.Run("Explicit Now", func(t *testing.T) {
		now := testNow.AddDate(0, 0, 3)
		out, err := uc.Parse(ctx, sc, reminder.ParseInput{Text: "water plants today", Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reminder.Parsed.DueDate != "2024-05-10" {
			t.Errorf("DueDate = %s, want 2024-05-10", out.Reminder.Parsed.DueDate)
		}
		if out.Reminder.Section != datemath.SectionToday {
			t.Errorf("Section = %s, want today", out.Reminder.Section)
		}
	})

	t.Run("Metrics", func(t *testing.T) {
		got := counterValue(t, reg, "smart_reminders_parser_reminders_parsed_total",
			map[string]string{"source": "http", "category": "family"})
		if got != 1 {
			t.Errorf("parsed_total{family} = %v, want 1", got)
		}
		if rejected := counterValue(t, reg, "smart_reminders_parser_requests_rejected_total",
			map[string]string{"reason": "empty"}); rejected != 1 {
			t.Errorf("rejected_total{empty} = %v, want 1", rejected)
		}
	})
}

func TestPreview(t *testing.T) {
	uc, reg := newTestUseCase(t, Config{MinPreviewLength: 3})
	ctx := context.Background()
	sc := model.Scope{Source: model.SourceHTTP}

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"empty", "", reminder.ErrEmptyInput},
		{"too short", " ab ", reminder.ErrInputTooShort},
		{"multibyte counts runes", "día", nil},
		{"long enough", "gym", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Preview(ctx, sc, reminder.ParseInput{Text: tt.text})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Preview(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
		})
	}

	if got := counterValue(t, reg, "smart_reminders_parser_requests_rejected_total",
		map[string]string{"reason": "too_short"}); got != 1 {
		t.Errorf("rejected_total{too_short} = %v, want 1", got)
	}
}

func TestNilMetrics(t *testing.T) {
	parser, err := nlparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	uc := New(&mockLogger{}, parser, nil, Config{})

	if _, err := uc.Parse(context.Background(), model.Scope{}, reminder.ParseInput{Text: "buy milk", Now: testNow}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Parse(context.Background(), model.Scope{}, reminder.ParseInput{Text: ""}); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
