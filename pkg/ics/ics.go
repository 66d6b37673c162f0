// Package ics renders parsed reminders as an iCalendar (RFC 5545) feed.
package ics

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/emersion/go-ical"

	"smart-reminders/pkg/nlparse"
)

const (
	ProductID   = "-//smart-reminders//reminder export//EN"
	ContentType = "text/calendar; charset=utf-8"
)

// Entry is one reminder to export.
type Entry struct {
	UID         string
	Reminder    nlparse.ParsedReminder
	Description string
}

// Encoder writes reminders as VEVENTs of a single VCALENDAR.
type Encoder struct {
	location *time.Location
}

// NewEncoder creates an encoder that places due dates and times in loc.
func NewEncoder(loc *time.Location) *Encoder {
	if loc == nil {
		loc = time.UTC
	}
	return &Encoder{location: loc}
}

// Encode writes entries to w. stamp is used for every DTSTAMP.
func (e *Encoder) Encode(w io.Writer, entries []Entry, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, entry := range entries {
		event, err := e.event(entry, stamp)
		if err != nil {
			return err
		}
		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("ics: encode calendar: %w", err)
	}
	return nil
}

// EncodeBytes is Encode into a byte slice.
func (e *Encoder) EncodeBytes(entries []Entry, stamp time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Encode(&buf, entries, stamp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Encoder) event(entry Entry, stamp time.Time) (*ical.Event, error) {
	r := entry.Reminder
	if entry.UID == "" {
		return nil, fmt.Errorf("ics: entry %q has no UID", r.Title)
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, entry.UID)
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	event.Props.SetText(ical.PropSummary, r.Title)
	if entry.Description != "" {
		event.Props.SetText(ical.PropDescription, entry.Description)
	}

	start, err := Start(r, e.location)
	if err != nil {
		return nil, err
	}
	if r.HasTime() {
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
	} else {
		event.Props.SetDate(ical.PropDateTimeStart, start)
	}

	if opt, ok := RuleFor(r); ok {
		event.Props.SetRecurrenceRule(opt)
	}

	priority := ical.NewProp(ical.PropPriority)
	priority.Value = strconv.Itoa(Priority(r.Priority))
	event.Props.Set(priority)

	event.Props.SetText(ical.PropCategories, string(r.Category))

	return event, nil
}

// Priority maps a reminder priority onto the iCalendar 1 (highest) to 9
// (lowest) scale.
func Priority(p nlparse.Priority) int {
	switch p {
	case nlparse.PriorityUrgent:
		return 1
	case nlparse.PriorityHigh:
		return 3
	case nlparse.PriorityLow:
		return 9
	}
	return 5
}
