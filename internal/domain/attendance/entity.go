package attendance

import (
	"time"
)

type Status string

const (
	StatusCheckedIn  Status = "Checked In"
	StatusInRecess   Status = "In Recess"
	StatusCheckedOut Status = "Checked Out"
)

// Attendance is one employee's record for one calendar day. Durations are
// carried as time.Duration and persisted as whole milliseconds; minute
// figures are derived by floor division at presentation boundaries.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // calendar day, midnight

	CheckInTime  *time.Time
	CheckOutTime *time.Time

	IsRecess            bool
	RecessStartTime     *time.Time
	TotalRecessDuration time.Duration

	// Set at check-out or by admin correction; zero until then.
	TotalWorkingTime time.Duration

	LateCheckIn   bool
	LateMinutes   int
	CurrentStatus Status

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	EmployeeName  *string
	EmployeeEmail *string
}

// WorkingMinutes returns the stored working time as whole minutes.
func (a *Attendance) WorkingMinutes() int {
	return int(a.TotalWorkingTime / time.Minute)
}

// LiveWorkingTime computes the working time as of now. While a recess is
// active the value stays frozen at the pre-recess figure; recess time is
// never counted as work.
func (a *Attendance) LiveWorkingTime(now time.Time) time.Duration {
	if a.CheckInTime == nil {
		return 0
	}
	end := now
	switch {
	case a.CheckOutTime != nil:
		end = *a.CheckOutTime
	case a.IsRecess && a.RecessStartTime != nil:
		end = *a.RecessStartTime
	}
	d := end.Sub(*a.CheckInTime) - a.TotalRecessDuration
	if d < 0 {
		return 0
	}
	return d
}

// LateCheckIn records one late check-in event. Immutable once created.
type LateCheckIn struct {
	ID                    string
	EmployeeID            string
	Date                  time.Time
	LateByMinutes         int
	PredefinedCheckInTime string // "HH:MM"
	ActualCheckInTime     time.Time
	CreatedAt             time.Time

	// DTO / Join
	EmployeeName  *string
	EmployeeEmail *string
}
