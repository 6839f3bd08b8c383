package attendance

import (
	"context"
)

// AttendanceService drives the per-employee-per-day session state machine:
// NotCheckedIn -> CheckedIn <-> InRecess -> ... -> CheckedOut.
type AttendanceService interface {
	// CheckIn opens today's session and evaluates lateness against the
	// employee's predefined check-in time
	CheckIn(ctx context.Context, employeeID string) (CheckInResponse, error)

	// StartRecess pauses working-time accumulation
	StartRecess(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// EndRecess accumulates the finished recess into the day's total
	EndRecess(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes the session and stores the total working time
	CheckOut(ctx context.Context, employeeID string) (CheckOutResponse, error)

	// CurrentStatus reports today's session with a live working-time estimate
	CurrentStatus(ctx context.Context, employeeID string) (StatusResponse, error)

	// UpdateAttendance is the admin correction path; it recomputes the
	// working time with the same formula the state machine uses
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// ListLateCheckIns returns the late check-in report
	ListLateCheckIns(ctx context.Context, filter LateCheckInFilter) ([]LateCheckInResponse, error)
}
