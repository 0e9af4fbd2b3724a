package resolution

import "time"

// StartOfDay truncates t to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday UTC midnight of the week containing t.
// Sundays belong to the week that started the previous Monday.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	diff := 1 - int(day.Weekday())
	if day.Weekday() == time.Sunday {
		diff = -6
	}
	return day.AddDate(0, 0, diff)
}

// PeriodStart normalizes t to the start of the period matching the cadence.
// Every other computation in this package goes through here rather than
// truncating dates itself.
func PeriodStart(cadence Cadence, t time.Time) time.Time {
	if cadence == CadenceWeekly {
		return StartOfWeek(t)
	}
	return StartOfDay(t)
}
