package domain

import "time"

// ParseDate parses a YYYY-MM-DD calendar day at midnight in time.Local,
// the single zone all booking wall times are read in.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}

// WallTime places minutes since midnight of the calendar day of date in loc.
// Only the year, month and day of date are used.
func WallTime(date time.Time, minutes int, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
}
