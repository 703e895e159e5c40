package calendar

import (
	"slices"
	"time"
)

// UpcomingReminders returns every loaded event whose reminder falls inside
// [from, from+within), ordered by reminder time. Events without a reminder
// never show up.
func (c *DataController) UpcomingReminders(from time.Time, within time.Duration) []Event {
	horizon := from.Add(within)

	var due []Event
	for _, month := range c.months {
		for _, event := range month.Events() {
			if !event.HasReminder() {
				continue
			}
			if event.Reminder.Before(from) || !event.Reminder.Before(horizon) {
				continue
			}
			due = append(due, event)
		}
	}
	slices.SortStableFunc(due, func(a, b Event) int {
		return a.Reminder.Compare(b.Reminder)
	})
	return due
}
