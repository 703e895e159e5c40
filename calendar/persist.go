package calendar

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"moncal/storage"
)

// WindowRadius is the number of months loaded on each side of the reference
// month at startup, an inclusive five-month span in total.
const WindowRadius = 2

// monthKey flattens a (year, month) pair onto a single integer axis so that
// window membership survives year boundaries.
func monthKey(year, month int) int {
	return year*12 + (month - 1)
}

func keyMonth(key int) (year, month int) {
	return key / 12, key%12 + 1
}

// LoadOnStartup loads the persisted months falling in the five-month window
// centered on today.
func (c *DataController) LoadOnStartup() error {
	return c.LoadWindow(time.Now())
}

// LoadWindow loads every persisted month whose (month, year) falls in the
// five-month window centered on ref. Loading is best-effort per record:
// records outside the window, records without an events field, records with
// an unreadable event and duplicates of an already-loaded month are skipped
// with a log line. Events from admitted records go through AddEvent, whose
// failures abort the load.
func (c *DataController) LoadWindow(ref time.Time) error {
	records, err := c.store.ReadAll()
	if err != nil {
		return fmt.Errorf("(*DataController).LoadWindow: %w", err)
	}

	center := monthKey(ref.Year(), int(ref.Month()))
	start, end := center-WindowRadius, center+WindowRadius
	startYear, startMonth := keyMonth(start)
	endYear, endMonth := keyMonth(end)
	slog.Info("loading persisted months",
		"from", fmt.Sprintf("%02d/%d", startMonth, startYear),
		"to", fmt.Sprintf("%02d/%d", endMonth, endYear),
	)

	for _, rec := range records {
		switch key := monthKey(rec.Year, rec.Month); {
		case key < start || key > end:
			slog.Debug("month outside window", "month", rec.Month, "year", rec.Year)
			continue
		case rec.Events == nil:
			slog.Warn("month record has no events field", "month", rec.Month, "year", rec.Year)
			continue
		case c.findMonth(rec.Month, rec.Year) != nil:
			slog.Warn("duplicate month record, keeping the first", "month", rec.Month, "year", rec.Year)
			continue
		}

		events, ok := eventsFromRecord(rec)
		if !ok {
			continue
		}
		bucket := NewMonth(rec.Month, rec.Year)
		for _, event := range events {
			if err := bucket.AddEvent(event); err != nil {
				return fmt.Errorf("(*DataController).LoadWindow: %w", err)
			}
		}
		c.months = append(c.months, bucket)
	}
	return nil
}

// SaveOnShutdown writes every loaded bucket back through the store, one
// document per month, emptied buckets included. A failed write does not
// stop the remaining months; all write errors are joined into the returned
// error.
func (c *DataController) SaveOnShutdown() error {
	var errs []error
	for _, month := range c.months {
		rec := storage.MonthRecord{
			Month:  month.Month(),
			Year:   month.Year(),
			Events: make([]storage.EventRecord, 0, len(month.Events())),
		}
		for _, event := range month.Events() {
			rec.Events = append(rec.Events, eventToRecord(event))
		}
		if err := c.store.Write(rec); err != nil {
			errs = append(errs, fmt.Errorf("(*DataController).SaveOnShutdown: %d/%d: %w",
				month.Month(), month.Year(), err))
		}
	}
	return errors.Join(errs...)
}

// eventsFromRecord decodes every event in rec, reporting ok=false when any
// of them fails so the whole record can be skipped.
func eventsFromRecord(rec storage.MonthRecord) ([]Event, bool) {
	events := make([]Event, 0, len(rec.Events))
	for _, er := range rec.Events {
		event, err := eventFromRecord(er)
		if err != nil {
			slog.Warn("month record has an unreadable event, skipping the record",
				"month", rec.Month, "year", rec.Year, "event_id", er.EventID, "error", err)
			return nil, false
		}
		events = append(events, event)
	}
	return events, true
}

func eventFromRecord(rec storage.EventRecord) (Event, error) {
	date, err := time.Parse("2006-01-02", rec.EventDate)
	if err != nil {
		return Event{}, fmt.Errorf("eventFromRecord: %w", err)
	}

	event := Event{
		ID:          rec.EventID,
		Name:        rec.EventName,
		Description: rec.EventDescription,
		Date:        date,
		Location:    rec.EventLocation,
		Type:        rec.EventType,
		Status:      rec.EventStatus,
		Priority:    rec.EventPriority,
		Notes:       rec.EventNotes,
	}
	if rec.EventTime != "" {
		t, err := time.Parse("15:04", rec.EventTime)
		if err != nil {
			return Event{}, fmt.Errorf("eventFromRecord: %w", err)
		}
		event.Time = t
	}
	if rec.EventReminder != "" {
		r, err := time.Parse("2006-01-02 15:04", rec.EventReminder)
		if err != nil {
			return Event{}, fmt.Errorf("eventFromRecord: %w", err)
		}
		event.Reminder = r
	}
	return event, nil
}

func eventToRecord(event Event) storage.EventRecord {
	return storage.EventRecord{
		EventID:          event.ID,
		EventName:        event.Name,
		EventDescription: event.Description,
		EventDate:        event.FormatDate(),
		EventTime:        event.FormatTime(),
		EventLocation:    event.Location,
		EventType:        event.Type,
		EventStatus:      event.Status,
		EventPriority:    event.Priority,
		EventNotes:       event.Notes,
		EventReminder:    event.FormatReminder(),
	}
}
