// Package calendar holds the event model, the per-month buckets and the
// DataController that routes between them. Persistence and export live in
// the storage and ical packages; everything here is plain in-memory state.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Event is one calendar entry. Events are plain values constructed with a
// struct literal, all fields up front; fields are not range-checked. The
// zero value of Time, Priority and Reminder means "not set".
//
// Ids are only unique within one (month, year) bucket, never globally.
type Event struct {
	ID          int
	Name        string
	Description string

	// Date is the day the event falls on; only its year, month and day
	// matter. Time, when set, carries the clock time and nothing else.
	Date time.Time
	Time time.Time

	Location string
	Type     string
	Status   string
	Priority int
	Notes    string

	// Reminder is an absolute date and clock time; zero means no reminder.
	Reminder time.Time
}

// Month the event falls in (1-12), derived from Date.
func (e Event) Month() int {
	return int(e.Date.Month())
}

// Year the event falls in, derived from Date.
func (e Event) Year() int {
	return e.Date.Year()
}

// HasTime reports whether the event carries a clock time.
func (e Event) HasTime() bool {
	return !e.Time.IsZero()
}

// HasReminder reports whether the event carries a reminder.
func (e Event) HasReminder() bool {
	return !e.Reminder.IsZero()
}

// FormatDate renders the event date as "YYYY-MM-DD".
func (e Event) FormatDate() string {
	return e.Date.Format("2006-01-02")
}

// FormatTime renders the event time as "HH:MM", or "" when no time is set.
func (e Event) FormatTime() string {
	if !e.HasTime() {
		return ""
	}
	return e.Time.Format("15:04")
}

// FormatReminder renders the reminder as "YYYY-MM-DD HH:MM", or "" when no
// reminder is set.
func (e Event) FormatReminder() string {
	if !e.HasReminder() {
		return ""
	}
	return e.Reminder.Format("2006-01-02 15:04")
}

// String returns a one-line human-readable summary. Display only, never
// identity.
func (e Event) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Event: %s, Description: %s, Date: %s", e.Name, e.Description, e.FormatDate())
	if e.HasTime() {
		fmt.Fprintf(&sb, ", Time: %s", e.FormatTime())
	}
	if e.Location != "" {
		fmt.Fprintf(&sb, ", Location: %s", e.Location)
	}
	if e.Notes != "" {
		fmt.Fprintf(&sb, ", Notes: %s", e.Notes)
	}
	return sb.String()
}
