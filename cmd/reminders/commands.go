package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smart-reminders/internal/reminder"
	"smart-reminders/pkg/ics"
)

func newParseCmd(c *cli) *cobra.Command {
	var occurrences int

	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse one phrase into a reminder",
		Long: `Parse one phrase into a reminder.

Examples:
  reminders parse call mom tomorrow at 5pm
  reminders parse --tz Europe/Berlin "pay rent every month starting Friday urgent"
  echo "gym every monday and wednesday" | reminders parse --occurrences 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			now, err := c.referenceTime()
			if err != nil {
				return err
			}

			ctx, sc := c.scope(cmd.Context())
			out, err := c.uc.Parse(ctx, sc, reminder.ParseInput{Text: text, Now: now})
			if err != nil {
				return err
			}

			next, err := ics.Occurrences(out.Reminder.Parsed, c.parser.Calendar().Location(), occurrences)
			if err != nil {
				return err
			}

			if c.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), newReminderView(out.Reminder, next))
			}
			printReminder(cmd.OutOrStdout(), out.Reminder, next)
			return nil
		},
	}
	cmd.Flags().IntVarP(&occurrences, "occurrences", "n", 0, "also list the next N due times")
	return cmd
}

func newBulkCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk [text...]",
		Short: "Parse comma-separated phrases and show them as an agenda",
		Long: `Parse comma-separated phrases and show them grouped by agenda section
(overdue, today, tomorrow, this week, later).

Examples:
  reminders bulk "buy milk, call mom tomorrow, dentist next friday at 9am"
  cat todo.txt | reminders bulk --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			now, err := c.referenceTime()
			if err != nil {
				return err
			}

			ctx, sc := c.scope(cmd.Context())
			out, err := c.uc.ParseBulk(ctx, sc, reminder.BulkInput{Text: text, Now: now})
			if err != nil {
				return err
			}

			if c.jsonOutput {
				views := make([]reminderView, len(out.Reminders))
				for i, r := range out.Reminders {
					views[i] = newReminderView(r, nil)
				}
				return writeJSON(cmd.OutOrStdout(), views)
			}
			return printAgenda(cmd.OutOrStdout(), out.Reminders)
		},
	}
}

func newExportCmd(c *cli) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [text...]",
		Short: "Export comma-separated phrases as iCalendar or JSON",
		Long: `Export comma-separated phrases as an iCalendar feed or a JSON array.

Examples:
  reminders export "standup every weekday at 9am, pay rent every month" > reminders.ics
  reminders export --format json -o reminders.json "water plants every 3 days"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.jsonOutput && format == reminder.FormatICS {
				format = reminder.FormatJSON
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			now, err := c.referenceTime()
			if err != nil {
				return err
			}

			ctx, sc := c.scope(cmd.Context())
			out, err := c.uc.Export(ctx, sc, reminder.ExportInput{Text: text, Format: format, Now: now})
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out.Body)
				return err
			}
			if err := os.WriteFile(output, out.Body, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d reminder(s) to %s\n", len(out.Reminders), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", reminder.FormatICS, "export format: ics or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
