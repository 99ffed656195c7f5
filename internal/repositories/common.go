package repositories

import "time"

// DayCount количество визитов за одни сутки.
type DayCount struct {
	// Day полночь суток в UTC.
	Day   time.Time
	Count int64
}

// TruncateDay отбрасывает время суток, приводя момент к полуночи UTC.
func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
