package services

import "time"

// Clock returns the current time.
type Clock func() time.Time

// utcMicros is the default Clock. Timestamps are kept at microsecond
// precision so they survive a round trip through either store unchanged.
func utcMicros() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
