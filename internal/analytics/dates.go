package analytics

import (
	"math"
	"time"
)

const isoDateLayout = "2006-01-02"

// DateOnly truncates value to midnight in its own location.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

// DaysBetween counts calendar days from a to b, ignoring clock time and DST shifts.
// It works on day numbers so that spans beyond time.Duration's range stay exact.
func DaysBetween(a time.Time, b time.Time) int {
	return dayNumber(b) - dayNumber(a)
}

// dayNumber returns the days since 1970-01-01 of value's calendar date in the proleptic
// Gregorian calendar.
func dayNumber(value time.Time) int {
	year, month, day := value.Date()
	m := int(month)
	if m <= 2 {
		year--
	}
	era := year / 400
	if year < 0 && year%400 != 0 {
		era--
	}
	yearOfEra := year - era*400
	shifted := m - 3
	if m <= 2 {
		shifted = m + 9
	}
	dayOfYear := (153*shifted+2)/5 + day - 1
	dayOfEra := yearOfEra*365 + yearOfEra/4 - yearOfEra/100 + dayOfYear
	return era*146097 + dayOfEra - 719468
}

// WithinDays reports whether day falls in the closed range [start, start+days].
func WithinDays(day time.Time, start time.Time, days int) bool {
	offset := DaysBetween(start, day)
	return offset >= 0 && offset <= days
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	return a.Format(isoDateLayout) == b.Format(isoDateLayout)
}

// roundHalfUp rounds .5 toward positive infinity so that -2.5 becomes -2.
func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
