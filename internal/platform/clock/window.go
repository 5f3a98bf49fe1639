package clock

import "time"

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns 00:00 of the most recent Monday (t's own day when t is a Monday).
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last millisecond before the next local midnight.
func EndOfDay(dayStart time.Time) time.Time {
	return StartOfDay(dayStart).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// Epoch is the all-time window start.
func Epoch() time.Time {
	return time.UnixMilli(0)
}
