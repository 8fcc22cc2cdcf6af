package dbx

import "time"

// UnixNano converts t for storage in an INTEGER column.
func UnixNano(t time.Time) int64 {
	return t.UTC().UnixNano()
}

// FromUnixNano is the inverse of UnixNano. The result is in UTC.
func FromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
