package calendar

import "errors"

// Sentinel errors returned by Month and DataController operations. Callers
// match them with errors.Is; the wrapped message carries the offending id
// and date.
var (
	// ErrMonthMismatch reports an event whose derived month/year disagree
	// with the bucket it was offered to.
	ErrMonthMismatch = errors.New("event does not belong to this month")

	// ErrDuplicateEvent reports an id that is already taken in the target
	// bucket.
	ErrDuplicateEvent = errors.New("event already exists in the month")

	// ErrEventNotFound reports an id with no matching event in the expected
	// bucket.
	ErrEventNotFound = errors.New("event not found")
)
