package dateutils

import "time"

// DateOnly strips the time-of-day component of t in UTC, returning the UTC
// midnight of the same calendar day. This is the override partition key and
// must be applied identically everywhere an item's date participates in
// override lookup (create, update, and the override admin endpoints).
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
