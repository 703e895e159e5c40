package ical

import "errors"

// Validation failures surfaced while marshaling events.
var (
	ErrDateNotSet = errors.New("event date not set")
	ErrNameNotSet = errors.New("event name not set")
)
