package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn  = errors.New("already checked in for today")
	ErrNotCheckedIn      = errors.New("cannot proceed without checking in first")
	ErrAlreadyCheckedOut = errors.New("already checked out for today")

	// Recess errors
	ErrRecessAlreadyActive = errors.New("recess is already ongoing")
	ErrNoActiveRecess      = errors.New("no ongoing recess to end")
	ErrRecessActive        = errors.New("cannot check out during an ongoing recess")

	// General errors
	ErrNoRecordToday      = errors.New("no attendance record found for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
