package utils

import "time"

// DayStart truncates t to midnight UTC. Schedules are built from day
// boundaries so slot math stays stable across DST-free UTC dates.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AtHour returns the given day at hour:minute.
func AtHour(day time.Time, hour, minute int) time.Time {
	base := DayStart(day)
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// FormatISODate renders a wire-friendly date, e.g. 2026-03-14.
func FormatISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
