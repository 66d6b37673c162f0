package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"smart-reminders/internal/reminder"
	"smart-reminders/pkg/datemath"
	"smart-reminders/pkg/nlparse"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

var sectionTitles = map[datemath.Section]string{
	datemath.SectionOverdue:  "Overdue",
	datemath.SectionToday:    "Today",
	datemath.SectionTomorrow: "Tomorrow",
	datemath.SectionThisWeek: "This week",
	datemath.SectionLater:    "Later",
}

var sectionOrder = []datemath.Section{
	datemath.SectionOverdue,
	datemath.SectionToday,
	datemath.SectionTomorrow,
	datemath.SectionThisWeek,
	datemath.SectionLater,
}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// reminderView is the JSON shape printed by --json.
type reminderView struct {
	nlparse.ParsedReminder
	Text        string      `json:"text"`
	Section     string      `json:"section"`
	Occurrences []time.Time `json:"occurrences,omitempty"`
}

func newReminderView(r reminder.Reminder, next []time.Time) reminderView {
	return reminderView{
		ParsedReminder: r.Parsed,
		Text:           r.Text,
		Section:        string(r.Section),
		Occurrences:    next,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printReminder(w io.Writer, r reminder.Reminder, next []time.Time) {
	p := r.Parsed
	due := p.DueDate
	if p.HasTime() {
		due += " " + p.DueTime
	}

	fmt.Fprintf(w, "%s\n", bold(p.Title))
	fmt.Fprintf(w, "  Due:        %s %s\n", due, gray("("+sectionTitles[r.Section]+")"))
	fmt.Fprintf(w, "  Priority:   %s\n", colorPriority(p.Priority))
	fmt.Fprintf(w, "  Category:   %s\n", p.Category)
	fmt.Fprintf(w, "  Repeats:    %s\n", describeRecurrence(p))
	fmt.Fprintf(w, "  Confidence: %d%%\n", p.Confidence)

	if len(next) > 0 {
		fmt.Fprintf(w, "  Next:\n")
		for _, t := range next {
			if p.HasTime() {
				fmt.Fprintf(w, "    %s\n", t.Format("Mon 2006-01-02 15:04"))
			} else {
				fmt.Fprintf(w, "    %s\n", t.Format("Mon 2006-01-02"))
			}
		}
	}
}

// printAgenda lists reminders under their section headings, keeping input
// order within a section.
func printAgenda(w io.Writer, reminders []reminder.Reminder) error {
	bySection := make(map[datemath.Section][]reminder.Reminder)
	for _, r := range reminders {
		bySection[r.Section] = append(bySection[r.Section], r)
	}

	for _, section := range sectionOrder {
		items := bySection[section]
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(w, "%s (%d)\n", cyan(sectionTitles[section]), len(items))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, r := range items {
			p := r.Parsed
			when := p.DueDate
			if p.HasTime() {
				when += " " + p.DueTime
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", p.Title, when, colorPriority(p.Priority), p.Category, describeRecurrence(p))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func colorPriority(p nlparse.Priority) string {
	switch p {
	case nlparse.PriorityUrgent:
		return red(string(p))
	case nlparse.PriorityHigh:
		return yellow(string(p))
	}
	return string(p)
}

// describeRecurrence renders the repeat rule as a short phrase, e.g.
// "every 2 weeks on Mon, Wed".
func describeRecurrence(p nlparse.ParsedReminder) string {
	if !p.IsRecurring() {
		return "-"
	}

	unit := strings.TrimSuffix(string(p.RecurrenceUnit), "s")
	desc := "every " + unit
	if p.RecurrenceInterval > 1 {
		desc = fmt.Sprintf("every %d %s", p.RecurrenceInterval, p.RecurrenceUnit)
	}

	if len(p.RecurrenceDays) > 0 {
		names := make([]string, 0, len(p.RecurrenceDays))
		for _, d := range p.RecurrenceDays {
			if d >= 0 && d < len(weekdayNames) {
				names = append(names, weekdayNames[d])
			}
		}
		desc += " on " + strings.Join(names, ", ")
	}
	return desc
}
