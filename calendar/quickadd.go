package calendar

import (
	"fmt"
	"time"

	"moncal/utils"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// QuickAdder turns one-line descriptions like "Dentist appointment next
// friday at 9:30" into events: the recognized date fragment becomes the
// event's date and time, the rest of the line becomes its name.
type QuickAdder struct {
	parser *when.Parser
}

// NewQuickAdder returns a parser loaded with the English and common rule
// sets.
func NewQuickAdder() *QuickAdder {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &QuickAdder{parser: w}
}

// Parse extracts a date, and a clock time when one is spelled out, from
// text relative to ref. The base is ref's midnight, so a text without a
// clock time yields an event without one. The returned event carries no id;
// assign one before adding it to a controller.
func (q *QuickAdder) Parse(text string, ref time.Time) (Event, error) {
	base := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	result, err := q.parser.Parse(text, base)
	if err != nil {
		return Event{}, fmt.Errorf("(*QuickAdder).Parse: %w", err)
	}
	if result == nil {
		return Event{}, fmt.Errorf("(*QuickAdder).Parse: no date in %q", text)
	}

	name := utils.CleanupString(text[:result.Index] + text[result.Index+len(result.Text):])
	if name == "" {
		return Event{}, fmt.Errorf("(*QuickAdder).Parse: no event name in %q", text)
	}

	event := Event{
		Name: name,
		Date: time.Date(result.Time.Year(), result.Time.Month(), result.Time.Day(), 0, 0, 0, 0, time.UTC),
	}
	if hh, mm, ss := result.Time.Clock(); hh != 0 || mm != 0 || ss != 0 {
		event.Time = time.Date(0, time.January, 1, hh, mm, 0, 0, time.UTC)
	}
	return event, nil
}
