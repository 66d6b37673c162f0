package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"smart-reminders/internal/model"
	"smart-reminders/internal/reminder"
	reminderUC "smart-reminders/internal/reminder/usecase"
	"smart-reminders/pkg/log"
	"smart-reminders/pkg/nlparse"
)

// cli holds flag values shared by every subcommand.
type cli struct {
	timezone       string
	now            string
	legacyPriority bool
	maxSegments    int
	jsonOutput     bool
	noColor        bool
	verbose        bool

	parser *nlparse.Parser
	uc     reminder.UseCase
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "reminders",
		Short: "Turn natural-language phrases into structured reminders",
		Long: `reminders parses free-text phrases such as "call mom tomorrow at 5pm"
into reminders with a due date, time, priority, category and repeat rule.

Text is taken from the arguments, or from stdin when no arguments are
given or the only argument is "-".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.timezone, "tz", "", "IANA timezone dates are resolved in (default: local)")
	flags.StringVar(&c.now, "now", "", "reference time as RFC 3339 (default: current time)")
	flags.BoolVar(&c.legacyPriority, "due-date-priority", false, "infer priority from how soon the reminder is due")
	flags.IntVar(&c.maxSegments, "max-segments", 50, "maximum phrases per bulk or export call (0 = no limit)")
	flags.BoolVar(&c.jsonOutput, "json", false, "print results as JSON")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log parser decisions to stdout")

	root.AddCommand(newParseCmd(c))
	root.AddCommand(newBulkCmd(c))
	root.AddCommand(newExportCmd(c))
	return root
}

func (c *cli) setup() error {
	if c.noColor {
		color.NoColor = true
	}

	parser, err := nlparse.NewParser(c.timezone, nlparse.WithDueDatePriority(c.legacyPriority))
	if err != nil {
		return fmt.Errorf("invalid --tz %q: %w", c.timezone, err)
	}
	c.parser = parser

	logger := log.NewNop()
	if c.verbose {
		logger = log.Init(log.ZapConfig{
			Level:        "debug",
			Mode:         log.ModeDevelopment,
			Encoding:     log.EncodingConsole,
			ColorEnabled: !c.noColor,
		})
	}

	c.uc = reminderUC.New(logger, parser, nil, reminderUC.Config{MaxBulkSegments: c.maxSegments})
	return nil
}

func (c *cli) referenceTime() (time.Time, error) {
	if c.now == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, c.now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: must be RFC 3339", c.now)
	}
	return t, nil
}

func (c *cli) scope(ctx context.Context) (context.Context, model.Scope) {
	id := uuid.NewString()
	return log.WithRequestID(ctx, id), model.Scope{RequestID: id, Source: model.SourceCLI}
}

// readText joins args, or reads stdin when there are none or args is "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return strings.Join(args, " "), nil
}
