package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDMY(t *testing.T) {
	parsed, err := ParseDMY("05-03-2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 5, parsed.Day())

	// Month and day must not be swapped
	parsed, err = ParseDMY("31-01-2025")
	require.NoError(t, err)
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 31, parsed.Day())

	_, err = ParseDMY("2025-03-05")
	assert.Error(t, err)

	_, err = ParseDMY("not-a-date")
	assert.Error(t, err)
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2025, 3, 5, 10, 30, 0, 0, time.UTC)
	end := EndOfDay(d)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, SameDate(d, end))
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(time.January, 2025)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls into the next year
	start, end = MonthRange(time.December, 2024)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, DaysInMonth(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, DaysInMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, DaysInMonth(time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)))
}

func TestWholeMinutes(t *testing.T) {
	assert.Equal(t, 90, WholeMinutes(90*time.Minute))
	// Partial minutes floor
	assert.Equal(t, 90, WholeMinutes(90*time.Minute+59*time.Second))
	assert.Equal(t, 0, WholeMinutes(59*time.Second))
}

func TestFormatHMS(t *testing.T) {
	assert.Equal(t, "2 hours 15 minutes 30 seconds", FormatHMS(2*time.Hour+15*time.Minute+30*time.Second))
	assert.Equal(t, "0 hours 0 minutes 0 seconds", FormatHMS(0))
	assert.Equal(t, "0 hours 59 minutes 59 seconds", FormatHMS(59*time.Minute+59*time.Second+900*time.Millisecond))
}

func TestFormatHM(t *testing.T) {
	assert.Equal(t, "8 hours 5 minutes", FormatHM(485))
	assert.Equal(t, "0 hours 0 minutes", FormatHM(0))
}
