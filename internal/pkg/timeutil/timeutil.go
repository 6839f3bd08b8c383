package timeutil

import (
	"fmt"
	"time"
)

// DateOf truncates t to midnight of its calendar day, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay extends t to 23:59:59.999 of the same calendar day. Query ranges
// given as whole dates are inclusive of the end date.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

// ParseDMY parses a date in the dd-mm-yyyy wire format used by query
// parameters.
func ParseDMY(s string) (time.Time, error) {
	t, err := time.Parse("02-01-2006", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected dd-mm-yyyy", s)
	}
	return t, nil
}

// FormatDMY renders t in the dd-mm-yyyy wire format.
func FormatDMY(t time.Time) string {
	return t.Format("02-01-2006")
}

// MonthRange returns the first instant of (month, year) and the first
// instant of the following month.
func MonthRange(month time.Month, year int) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// DaysInMonth reports the number of calendar days in the month containing t.
func DaysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

// WholeMinutes converts d to whole minutes via floor division. Negative
// durations floor toward zero, matching integer division on milliseconds.
func WholeMinutes(d time.Duration) int {
	return int(d / time.Minute)
}

// FormatHMS decomposes d into "H hours M minutes S seconds" for status
// responses.
func FormatHMS(d time.Duration) string {
	totalSeconds := int(d / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%d hours %d minutes %d seconds", hours, minutes, seconds)
}

// FormatHM decomposes whole minutes into "H hours M minutes".
func FormatHM(minutes int) string {
	return fmt.Sprintf("%d hours %d minutes", minutes/60, minutes%60)
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
