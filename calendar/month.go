package calendar

import (
	"fmt"
	"slices"
)

// Month is one (month, year) bucket of events. Events keep insertion order
// and are unique by id within the bucket; every lookup keys on the id. The
// invariant is that each contained event's derived month and year equal the
// bucket's own.
type Month struct {
	month  int
	year   int
	events []Event
}

// NewMonth returns an empty bucket for month (1-12) and year. The pair is
// not range-checked; the DataController only derives buckets from event
// dates.
func NewMonth(month, year int) *Month {
	return &Month{month: month, year: year}
}

// Month returns the bucket's month (1-12).
func (m *Month) Month() int {
	return m.month
}

// Year returns the bucket's year.
func (m *Month) Year() int {
	return m.year
}

// Events returns the bucket's events in insertion order. The slice is the
// bucket's backing store; callers must not modify it.
func (m *Month) Events() []Event {
	return m.events
}

// ContainsID reports whether the bucket holds an event with the given id.
func (m *Month) ContainsID(id int) bool {
	return m.indexOf(id) >= 0
}

func (m *Month) indexOf(id int) int {
	return slices.IndexFunc(m.events, func(e Event) bool { return e.ID == id })
}

func (m *Month) matches(event Event) bool {
	return event.Month() == m.month && event.Year() == m.year
}

// AddEvent appends event to the bucket. It fails with ErrMonthMismatch when
// the event's date falls outside the bucket's month/year, and with
// ErrDuplicateEvent when the id is already taken. A failed add leaves the
// bucket untouched.
func (m *Month) AddEvent(event Event) error {
	if !m.matches(event) {
		return fmt.Errorf("(*Month).AddEvent: event %d is on %s, bucket is %d/%d: %w",
			event.ID, event.FormatDate(), m.month, m.year, ErrMonthMismatch)
	}
	if m.ContainsID(event.ID) {
		return fmt.Errorf("(*Month).AddEvent: event %d: %w", event.ID, ErrDuplicateEvent)
	}
	m.events = append(m.events, event)
	return nil
}

// RemoveEvent removes the stored event carrying event's id. Only the id is
// consulted; the other fields of event are ignored. It fails with
// ErrEventNotFound when the id is absent.
func (m *Month) RemoveEvent(event Event) error {
	i := m.indexOf(event.ID)
	if i < 0 {
		return fmt.Errorf("(*Month).RemoveEvent: event %d: %w", event.ID, ErrEventNotFound)
	}
	m.events = slices.Delete(m.events, i, i+1)
	return nil
}

// UpdateEvent replaces the stored event carrying event's id, keeping its
// position. The replacement must still belong to this bucket; an update
// cannot move an event across months, remove and re-add instead. It fails
// with ErrEventNotFound when the id is absent and ErrMonthMismatch when the
// new date falls outside the bucket.
func (m *Month) UpdateEvent(event Event) error {
	if !m.matches(event) {
		return fmt.Errorf("(*Month).UpdateEvent: event %d is on %s, bucket is %d/%d: %w",
			event.ID, event.FormatDate(), m.month, m.year, ErrMonthMismatch)
	}
	i := m.indexOf(event.ID)
	if i < 0 {
		return fmt.Errorf("(*Month).UpdateEvent: event %d: %w", event.ID, ErrEventNotFound)
	}
	m.events[i] = event
	return nil
}
