package calendar

import (
	"fmt"
	"time"

	"moncal/storage"
)

// DataController owns every loaded Month bucket and routes event operations
// to the right one by the event's derived (month, year). Buckets are found
// by linear scan; at most one bucket exists per pair. All persistence goes
// through the injected store, nothing is read or written implicitly.
type DataController struct {
	store  *storage.Store
	months []*Month
}

// NewDataController returns an empty controller persisting through store.
func NewDataController(store *storage.Store) *DataController {
	return &DataController{store: store}
}

// Months returns the loaded buckets in creation order. The slice is the
// controller's backing store; callers must not modify it.
func (c *DataController) Months() []*Month {
	return c.months
}

func (c *DataController) findMonth(month, year int) *Month {
	for _, m := range c.months {
		if m.Month() == month && m.Year() == year {
			return m
		}
	}
	return nil
}

// AddEvent routes event to the bucket matching its date, creating the
// bucket first when none exists. Buckets are never removed again, even once
// emptied. It fails with ErrDuplicateEvent when the target bucket already
// holds the event's id.
func (c *DataController) AddEvent(event Event) error {
	if bucket := c.findMonth(event.Month(), event.Year()); bucket != nil {
		if err := bucket.AddEvent(event); err != nil {
			return fmt.Errorf("(*DataController).AddEvent: %w", err)
		}
		return nil
	}

	bucket := NewMonth(event.Month(), event.Year())
	if err := bucket.AddEvent(event); err != nil {
		return fmt.Errorf("(*DataController).AddEvent: %w", err)
	}
	c.months = append(c.months, bucket)
	return nil
}

// RemoveEvent removes the stored event carrying event's id from the bucket
// matching event's date. It fails with ErrEventNotFound when no bucket
// matches or the bucket holds no such id.
func (c *DataController) RemoveEvent(event Event) error {
	bucket := c.findMonth(event.Month(), event.Year())
	if bucket == nil {
		return fmt.Errorf("(*DataController).RemoveEvent: event %d, no bucket for %d/%d: %w",
			event.ID, event.Month(), event.Year(), ErrEventNotFound)
	}
	if err := bucket.RemoveEvent(event); err != nil {
		return fmt.Errorf("(*DataController).RemoveEvent: %w", err)
	}
	return nil
}

// UpdateEvent replaces the stored event carrying event's id in the bucket
// matching event's date. It fails with ErrEventNotFound when no bucket
// matches or the bucket holds no such id.
func (c *DataController) UpdateEvent(event Event) error {
	bucket := c.findMonth(event.Month(), event.Year())
	if bucket == nil {
		return fmt.Errorf("(*DataController).UpdateEvent: event %d, no bucket for %d/%d: %w",
			event.ID, event.Month(), event.Year(), ErrEventNotFound)
	}
	if err := bucket.UpdateEvent(event); err != nil {
		return fmt.Errorf("(*DataController).UpdateEvent: %w", err)
	}
	return nil
}

// GetEvents returns the events stored for (month, year) in insertion order.
// An absent bucket yields an empty slice, never an error.
func (c *DataController) GetEvents(month, year int) []Event {
	if bucket := c.findMonth(month, year); bucket != nil {
		return bucket.Events()
	}
	return nil
}

// NextEventID returns the next free event id for the (month, year) bucket:
// one past the highest id stored there, 1 when the bucket is empty or
// absent. Ids are only unique per bucket, reusing one across months is
// fine.
func (c *DataController) NextEventID(month, year int) int {
	next := 1
	if bucket := c.findMonth(month, year); bucket != nil {
		for _, event := range bucket.Events() {
			if event.ID >= next {
				next = event.ID + 1
			}
		}
	}
	return next
}

// QuickAdd parses text with q relative to ref, assigns the event the next
// free id in its target bucket and adds it. The stored event is returned.
func (c *DataController) QuickAdd(q *QuickAdder, text string, ref time.Time) (Event, error) {
	event, err := q.Parse(text, ref)
	if err != nil {
		return Event{}, fmt.Errorf("(*DataController).QuickAdd: %w", err)
	}
	event.ID = c.NextEventID(event.Month(), event.Year())
	if err := c.AddEvent(event); err != nil {
		return Event{}, fmt.Errorf("(*DataController).QuickAdd: %w", err)
	}
	return event, nil
}
