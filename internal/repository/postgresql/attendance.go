package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peopledesk/hrops-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	at.id, at.employee_id, at.date,
	at.check_in_time, at.check_out_time,
	at.is_recess, at.recess_start_time,
	at.total_recess_ms, at.total_working_ms,
	at.late_check_in, at.late_minutes, at.current_status,
	at.created_at, at.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var recessMS, workingMS int64
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckInTime, &att.CheckOutTime,
		&att.IsRecess, &att.RecessStartTime,
		&recessMS, &workingMS,
		&att.LateCheckIn, &att.LateMinutes, &att.CurrentStatus,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	att.TotalRecessDuration = time.Duration(recessMS) * time.Millisecond
	att.TotalWorkingTime = time.Duration(workingMS) * time.Millisecond
	return att, nil
}

func scanAttendanceWithEmployee(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var recessMS, workingMS int64
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckInTime, &att.CheckOutTime,
		&att.IsRecess, &att.RecessStartTime,
		&recessMS, &workingMS,
		&att.LateCheckIn, &att.LateMinutes, &att.CurrentStatus,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeeEmail,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	att.TotalRecessDuration = time.Duration(recessMS) * time.Millisecond
	att.TotalWorkingTime = time.Duration(workingMS) * time.Millisecond
	return att, nil
}

// Create implements attendance.AttendanceRepository. The UNIQUE
// (employee_id, date) constraint makes the duplicate check atomic; there is
// no separate existence pre-check to race against.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, check_in_time, check_out_time,
			is_recess, recess_start_time, total_recess_ms, total_working_ms,
			late_check_in, late_minutes, current_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.CheckInTime,
		att.CheckOutTime,
		att.IsRecess,
		att.RecessStartTime,
		att.TotalRecessDuration.Milliseconds(),
		att.TotalWorkingTime.Milliseconds(),
		att.LateCheckIn,
		att.LateMinutes,
		att.CurrentStatus,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances at
		WHERE at.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances at
		WHERE at.employee_id = $1 AND at.date = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoRecordToday
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository. Each state-machine
// transition is a single record write.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendances SET
			check_in_time = $2, check_out_time = $3,
			is_recess = $4, recess_start_time = $5,
			total_recess_ms = $6, total_working_ms = $7,
			late_check_in = $8, late_minutes = $9, current_status = $10,
			updated_at = NOW()
		WHERE id = $1
	`, att.ID, att.CheckInTime, att.CheckOutTime,
		att.IsRecess, att.RecessStartTime,
		att.TotalRecessDuration.Milliseconds(), att.TotalWorkingTime.Milliseconds(),
		att.LateCheckIn, att.LateMinutes, att.CurrentStatus)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, a.name, a.email
		FROM attendances at
		JOIN accounts a ON a.id = at.employee_id
		WHERE at.date = $1
		ORDER BY a.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by date: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendanceWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	return result, rows.Err()
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances at
		WHERE at.employee_id = $1 AND at.date >= $2 AND at.date <= $3
		ORDER BY at.date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	return result, rows.Err()
}

// ListBetween implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListBetween(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances at
		WHERE at.date >= $1 AND at.date <= $2
		ORDER BY at.date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	return result, rows.Err()
}
