package core

import "time"

// TimeProvider abstracts time operations for the domain so tests can pin
// the clock when asserting soft-delete markers and ledger timestamps.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
