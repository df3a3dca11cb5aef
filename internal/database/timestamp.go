package database

import "time"

// TimeFormat is the layout used for every persisted timestamp. Timestamps are
// stored as text so that rows read back identically under both supported
// drivers, and so the value matches the wire format without reformatting.
const TimeFormat = time.RFC3339

// Timestamp returns the current time in the stored text representation.
func Timestamp() string {
	return time.Now().UTC().Format(TimeFormat)
}
