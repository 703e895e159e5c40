package ical

import (
	"fmt"
	"strings"
	"time"

	"moncal/calendar"
)

// marshalEvent renders one VEVENT block. Events without a clock time become
// all-day events (exclusive next-day DTEND); timed events get a one-hour
// slot. A reminder turns into an absolute-trigger display alarm.
//
// The UID derives from the event's id and bucket, not from a random value,
// so re-exporting the same calendar updates events instead of duplicating
// them.
func marshalEvent(event calendar.Event) (string, error) {
	switch {
	case event.Date.IsZero():
		return "", fmt.Errorf("marshalEvent: event %d: %w", event.ID, ErrDateNotSet)
	case event.Name == "":
		return "", fmt.Errorf("marshalEvent: event %d: %w", event.ID, ErrNameNotSet)
	}

	var sb strings.Builder
	writer := split75(sb.WriteString)

	writer("BEGIN:VEVENT\n")
	writer(fmt.Sprintf("UID:event-%d-%04d%02d@moncal\n", event.ID, event.Year(), event.Month()))
	writer(fmt.Sprintf("DTSTAMP:%s\n", time.Now().UTC().Format("20060102T150405Z")))

	switch event.HasTime() {
	case true:
		hh, mm, _ := event.Time.Clock()
		start := time.Date(event.Date.Year(), event.Date.Month(), event.Date.Day(), hh, mm, 0, 0, time.UTC)
		writer(fmt.Sprintf("DTSTART:%s\n", start.Format("20060102T150405Z")))
		writer(fmt.Sprintf("DTEND:%s\n", start.Add(time.Hour).Format("20060102T150405Z")))
	case false:
		writer(fmt.Sprintf("DTSTART;VALUE=DATE:%s\n", event.Date.Format("20060102")))
		writer(fmt.Sprintf("DTEND;VALUE=DATE:%s\n", event.Date.AddDate(0, 0, 1).Format("20060102")))
	}

	writer(fmt.Sprintf("SUMMARY:%s\n", event.Name))
	if event.Description != "" {
		writer(fmt.Sprintf("DESCRIPTION:%s\n", event.Description))
	}
	if event.Location != "" {
		writer(fmt.Sprintf("LOCATION:%s\n", event.Location))
	}
	if event.Type != "" {
		writer(fmt.Sprintf("CATEGORIES:%s\n", event.Type))
	}
	if event.Status != "" {
		writer(fmt.Sprintf("STATUS:%s\n", strings.ToUpper(event.Status)))
	}
	if event.Priority != 0 {
		writer(fmt.Sprintf("PRIORITY:%d\n", event.Priority))
	}
	if event.Notes != "" {
		writer(fmt.Sprintf("COMMENT:%s\n", event.Notes))
	}
	if event.HasReminder() {
		writer("BEGIN:VALARM\n")
		writer("ACTION:DISPLAY\n")
		writer(fmt.Sprintf("DESCRIPTION:%s\n", event.Name))
		writer(fmt.Sprintf("TRIGGER;VALUE=DATE-TIME:%s\n", event.Reminder.UTC().Format("20060102T150405Z")))
		writer("END:VALARM\n")
	}
	writer("END:VEVENT\n")

	return sb.String(), nil
}
