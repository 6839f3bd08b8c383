package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. The store enforces a unique key on
	// (employee_id, date); a conflicting insert returns ErrAlreadyCheckedIn
	// so duplicate check-ins fail atomically instead of racing a pre-check.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by record ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// calendar day
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// ListByDate retrieves all records for a calendar day joined to the
	// employee roster
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByEmployeeBetween retrieves an employee's records with date in
	// [start, end], ordered by date ascending
	ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// ListBetween retrieves every record with date in [start, end]
	ListBetween(ctx context.Context, start, end time.Time) ([]Attendance, error)
}

type LateCheckInFilter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
}

// LateCheckInRepository stores late check-in events. Records are immutable
// once created.
type LateCheckInRepository interface {
	Create(ctx context.Context, record LateCheckIn) (LateCheckIn, error)

	// List retrieves records matching the filter, newest first
	List(ctx context.Context, filter LateCheckInFilter) ([]LateCheckIn, error)

	// ListLateByEmployeeBetween retrieves an employee's records with
	// lateByMinutes > 0 and date in [start, end], oldest first
	ListLateByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]LateCheckIn, error)
}
