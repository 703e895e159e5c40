// Package storage reads and writes the per-month YAML documents the
// calendar persists to. It only deals in wire records; mapping them onto
// live events is the DataController's job.
package storage

// MonthRecord is one persisted month document. The field names and the
// date/time string formats are a compatibility contract with files written
// by earlier versions; do not rename them.
type MonthRecord struct {
	Month  int           `yaml:"month"`
	Year   int           `yaml:"year"`
	Events []EventRecord `yaml:"events"`
}

// EventRecord is one event inside a MonthRecord, all display-format
// strings. The optional fields (time, priority, reminder) are omitted when
// unset; nulls written by other producers decode to the same zero values.
type EventRecord struct {
	EventID          int    `yaml:"event_id"`
	EventName        string `yaml:"event_name"`
	EventDescription string `yaml:"event_description"`
	EventDate        string `yaml:"event_date"`
	EventTime        string `yaml:"event_time,omitempty"`
	EventLocation    string `yaml:"event_location"`
	EventType        string `yaml:"event_type"`
	EventStatus      string `yaml:"event_status"`
	EventPriority    int    `yaml:"event_priority,omitempty"`
	EventNotes       string `yaml:"event_notes"`
	EventReminder    string `yaml:"event_reminder,omitempty"`
}
