package attendance

import (
	"fmt"
	"time"
)

// GracePeriod is the tolerance window after the scheduled check-in time.
// A check-in is late only when its whole-minute delay exceeds the window.
const GracePeriod = 20 * time.Minute

// EvaluateLateness compares an actual check-in against the employee's
// scheduled "HH:MM" time on the same calendar day. When an employee is late,
// minutes are counted from the scheduled time, not from the end of the grace
// window, and are floored to whole minutes.
func EvaluateLateness(scheduled string, actual time.Time) (bool, int, error) {
	parsed, err := time.Parse("15:04", scheduled)
	if err != nil {
		return false, 0, fmt.Errorf("failed to parse scheduled check-in time %q: %w", scheduled, err)
	}

	scheduledAt := time.Date(
		actual.Year(), actual.Month(), actual.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		actual.Location(),
	)

	// Whole minutes decide; a check-in at scheduled+20m59s still floors
	// to 20 minutes and stays inside the grace window.
	minutes := int(actual.Sub(scheduledAt) / time.Minute)
	if minutes <= int(GracePeriod/time.Minute) {
		return false, 0, nil
	}

	return true, minutes, nil
}
