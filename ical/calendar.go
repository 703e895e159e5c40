// Package ical serializes month buckets into iCalendar documents.
//
// References:
// - RFC 5545: https://datatracker.ietf.org/doc/html/rfc5545
//
// Only serialization is supported; the YAML documents under storage remain
// the source of truth and nothing is ever read back from an .ics file.
package ical

import (
	"fmt"
	"os"
	"strings"

	"moncal/calendar"

	"github.com/google/uuid"
)

// Calendar wraps a set of month buckets for export.
type Calendar struct {
	// id shows up as X-WR-RELCALID so repeated imports replace instead of
	// duplicate.
	id     string
	prodID string
	name   string
	months []*calendar.Month
}

// FromMonths returns an exportable calendar over months. The bucket slice
// is referenced, not copied; marshal before mutating the controller again.
func FromMonths(name string, months []*calendar.Month) *Calendar {
	return &Calendar{
		id:     uuid.NewString(),
		prodID: "-//moncal//moncal//EN",
		name:   name,
		months: months,
	}
}

// #region Getters

func (c *Calendar) GetID() string {
	return c.id
}

func (c *Calendar) GetName() string {
	return c.name
}

// #endregion

// Marshal renders the whole calendar as one iCalendar document, every event
// of every bucket in order.
func (c *Calendar) Marshal() (string, error) {
	var sb strings.Builder
	writer := split75(sb.WriteString)

	writer("BEGIN:VCALENDAR\n")
	writer(fmt.Sprintf("PRODID:%s\n", c.prodID))
	writer("VERSION:2.0\n")
	writer("CALSCALE:GREGORIAN\n")
	writer(fmt.Sprintf("X-WR-RELCALID:%s\n", c.id))
	if c.name != "" {
		writer(fmt.Sprintf("X-WR-CALNAME:%s\n", c.name))
	}
	for _, month := range c.months {
		for _, event := range month.Events() {
			eventStr, err := marshalEvent(event)
			if err != nil {
				return "", fmt.Errorf("(*Calendar).Marshal: event %d in %d/%d: %w",
					event.ID, month.Month(), month.Year(), err)
			}
			writer(eventStr)
		}
	}
	writer("END:VCALENDAR\n")

	return sb.String(), nil
}

// WriteFile marshals the calendar into the file at path.
func (c *Calendar) WriteFile(path string) error {
	out, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("(*Calendar).WriteFile: %w", err)
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("(*Calendar).WriteFile: %w", err)
	}
	return nil
}
