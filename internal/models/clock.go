package models

import "time"

// Timestamp returns the current time in UTC at millisecond precision, the
// resolution every stored timestamp keeps across a JSON round trip.
func Timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
