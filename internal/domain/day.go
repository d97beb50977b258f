package domain

import "time"

// DayIndex returns the number of whole 24h buckets between the Unix epoch and t.
// Two timestamps belong to the same calendar day iff their indexes match.
func DayIndex(t time.Time) int64 {
	return t.UnixMilli() / (24 * time.Hour).Milliseconds()
}

// SameDay reports whether two instants fall in the same 24h bucket,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	return DayIndex(a) == DayIndex(b)
}
