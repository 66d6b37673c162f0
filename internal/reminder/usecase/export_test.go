package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"smart-reminders/internal/model"
	"smart-reminders/internal/reminder"
	"smart-reminders/pkg/ics"
	"smart-reminders/pkg/nlparse"
)

func TestExport(t *testing.T) {
	uc, _ := newTestUseCase(t, Config{MaxBulkSegments: 10})
	ctx := context.Background()
	sc := model.Scope{Source: model.SourceHTTP}
	text := "Pay rent every month starting Friday urgent, gym every monday and wednesday"

	t.Run("ICS", func(t *testing.T) {
		out, err := uc.Export(ctx, sc, reminder.ExportInput{Text: text})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ContentType != ics.ContentType {
			t.Errorf("ContentType = %q", out.ContentType)
		}

		body := string(out.Body)
		if strings.Count(body, "BEGIN:VEVENT") != 2 {
			t.Errorf("expected 2 events:\n%s", body)
		}
		for _, want := range []string{
			"UID:id-1@smart-reminders",
			"SUMMARY:Pay rent",
			"DTSTART;VALUE=DATE:20240510",
			"PRIORITY:1",
			"BYDAY=MO,WE",
		} {
			if !strings.Contains(body, want) {
				t.Errorf("body missing %q:\n%s", want, body)
			}
		}
		if len(out.Reminders) != 2 {
			t.Errorf("expected 2 reminders, got %d", len(out.Reminders))
		}
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := uc.Export(ctx, sc, reminder.ExportInput{Text: text, Format: "JSON"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed []nlparse.ParsedReminder
		if err := json.Unmarshal(out.Body, &parsed); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if len(parsed) != 2 || parsed[1].Title != "Gym" {
			t.Errorf("unexpected export: %+v", parsed)
		}
	})

	t.Run("Unsupported Format", func(t *testing.T) {
		_, err := uc.Export(ctx, sc, reminder.ExportInput{Text: text, Format: "pdf"})
		if !errors.Is(err, reminder.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := uc.Export(ctx, sc, reminder.ExportInput{Text: ""})
		if !errors.Is(err, reminder.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})
}
