package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hrops-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/database"
)

type lateCheckInRepository struct {
	db *database.DB
}

func NewLateCheckInRepository(db *database.DB) attendance.LateCheckInRepository {
	return &lateCheckInRepository{db: db}
}

// Create implements attendance.LateCheckInRepository.
func (r *lateCheckInRepository) Create(ctx context.Context, record attendance.LateCheckIn) (attendance.LateCheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO late_check_ins (
			employee_id, date, late_by_minutes,
			predefined_check_in_time, actual_check_in_time
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.LateByMinutes,
		record.PredefinedCheckInTime,
		record.ActualCheckInTime,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return attendance.LateCheckIn{}, fmt.Errorf("failed to create late check-in record: %w", err)
	}

	return record, nil
}

// List implements attendance.LateCheckInRepository.
func (r *lateCheckInRepository) List(ctx context.Context, filter attendance.LateCheckInFilter) ([]attendance.LateCheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lc.id, lc.employee_id, lc.date, lc.late_by_minutes,
			lc.predefined_check_in_time, lc.actual_check_in_time, lc.created_at,
			a.name, a.email
		FROM late_check_ins lc
		JOIN accounts a ON a.id = lc.employee_id
		WHERE 1=1
	`

	args := []any{}
	argPos := 1
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND lc.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND lc.date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND lc.date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}
	query += " ORDER BY lc.date DESC, lc.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list late check-ins: %w", err)
	}
	defer rows.Close()

	var result []attendance.LateCheckIn
	for rows.Next() {
		var rec attendance.LateCheckIn
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.LateByMinutes,
			&rec.PredefinedCheckInTime, &rec.ActualCheckInTime, &rec.CreatedAt,
			&rec.EmployeeName, &rec.EmployeeEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan late check-in: %w", err)
		}
		result = append(result, rec)
	}

	return result, rows.Err()
}

// ListLateByEmployeeBetween implements attendance.LateCheckInRepository.
func (r *lateCheckInRepository) ListLateByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.LateCheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lc.id, lc.employee_id, lc.date, lc.late_by_minutes,
			lc.predefined_check_in_time, lc.actual_check_in_time, lc.created_at
		FROM late_check_ins lc
		WHERE lc.employee_id = $1
			AND lc.late_by_minutes > 0
			AND lc.date >= $2 AND lc.date <= $3
		ORDER BY lc.date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list late check-ins: %w", err)
	}
	defer rows.Close()

	var result []attendance.LateCheckIn
	for rows.Next() {
		var rec attendance.LateCheckIn
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.LateByMinutes,
			&rec.PredefinedCheckInTime, &rec.ActualCheckInTime, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan late check-in: %w", err)
		}
		result = append(result, rec)
	}

	return result, rows.Err()
}
