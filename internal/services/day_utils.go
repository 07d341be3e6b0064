package services

import "time"

// CalendarDay returns the calendar date of value as seen in location, as UTC midnight.
// Stored dates use the same representation, so the two compare directly.
func CalendarDay(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	year, month, day := value.In(location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseDay(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}
