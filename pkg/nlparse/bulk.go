package nlparse

import (
	"strings"
	"time"
)

// SplitSegments splits bulk input on commas, trimming each piece and dropping
// empty ones.
func SplitSegments(text string) []string {
	parts := strings.Split(text, ",")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// ParseBulk parses every comma-separated segment of text independently
// against the same reference instant.
func (p *Parser) ParseBulk(text string, now time.Time) []ParsedReminder {
	segments := SplitSegments(text)
	reminders := make([]ParsedReminder, 0, len(segments))
	for _, segment := range segments {
		reminders = append(reminders, p.Parse(segment, now))
	}
	return reminders
}
