package datemath_test

import (
	"testing"
	"time"

	"smart-reminders/pkg/datemath"
)

func TestNewCalendar(t *testing.T) {
	if _, err := datemath.NewCalendar("Asia/Ho_Chi_Minh"); err != nil {
		t.Fatalf("unexpected error creating valid calendar: %v", err)
	}

	if _, err := datemath.NewCalendar("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	cal, err := datemath.NewCalendar("")
	if err != nil {
		t.Fatalf("empty timezone should fall back to local: %v", err)
	}
	if cal.Location() != time.Local {
		t.Errorf("Location() = %v, want Local", cal.Location())
	}
}

func TestCalendarArithmetic(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"Today", cal.Today(base), startOfBase},
		{"Tomorrow", cal.AddDays(base, 1), startOfBase.AddDate(0, 0, 1)},
		{"Month rollover", cal.AddDays(base, 31), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"In 1 month", cal.AddMonths(base, 1), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"Next Monday (from Wed)", cal.NextWeekday(base, time.Monday, false), startOfBase.AddDate(0, 0, 5)},
		{"Wednesday same day", cal.NextWeekday(base, time.Wednesday, false), startOfBase},
		{"Next Wednesday skip today", cal.NextWeekday(base, time.Wednesday, true), startOfBase.AddDate(0, 0, 7)},
		{"Weekend from Wed", cal.Weekend(base), startOfBase.AddDate(0, 0, 3)},
		{"Weekend on Sunday", cal.Weekend(time.Date(2024, 5, 5, 10, 0, 0, 0, time.UTC)), time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestCalendarUsesLocalFields(t *testing.T) {
	// 23:30 in New York is already the next day in UTC.
	cal, err := datemath.NewCalendar("America/New_York")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	now := time.Date(2024, 3, 9, 23, 30, 0, 0, cal.Location())

	if got := cal.FormatDate(cal.Today(now.UTC())); got != "2024-03-09" {
		t.Errorf("Today = %s, want 2024-03-09", got)
	}
	// Spans the spring-forward transition on 2024-03-10.
	if got := cal.FormatDate(cal.AddDays(now, 1)); got != "2024-03-10" {
		t.Errorf("AddDays(1) = %s, want 2024-03-10", got)
	}
	if got := cal.FormatDate(cal.AddDays(now, 2)); got != "2024-03-11" {
		t.Errorf("AddDays(2) = %s, want 2024-03-11", got)
	}
	if got := cal.DaysBetween(now, cal.AddDays(now, 2)); got != 2 {
		t.Errorf("DaysBetween = %d, want 2", got)
	}
}

func TestCalendarDate(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")

	if _, ok := cal.Date(2024, time.February, 29); !ok {
		t.Errorf("2024-02-29 should be valid")
	}
	if _, ok := cal.Date(2023, time.February, 29); ok {
		t.Errorf("2023-02-29 should be invalid")
	}
	if _, ok := cal.Date(2024, 13, 1); ok {
		t.Errorf("month 13 should be invalid")
	}
}

func TestSection(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		due  string
		want datemath.Section
	}{
		{"2024-04-30", datemath.SectionOverdue},
		{"2024-05-01", datemath.SectionToday},
		{"2024-05-02", datemath.SectionTomorrow},
		{"2024-05-07", datemath.SectionThisWeek},
		{"2024-05-08", datemath.SectionLater},
	}

	for _, tt := range tests {
		t.Run(tt.due, func(t *testing.T) {
			got, err := cal.Section(tt.due, now)
			if err != nil {
				t.Fatalf("Section() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Section(%s) = %s, want %s", tt.due, got, tt.want)
			}
		})
	}

	if _, err := cal.Section("not-a-date", now); err == nil {
		t.Errorf("expected error for malformed date")
	}
}
