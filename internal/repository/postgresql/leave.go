package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hrops-backend-go/internal/domain/leave"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, a.email, l.reason, l.status,
	l.start_date, l.end_date, l.created_at, l.updated_at
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var lv leave.Leave
	err := row.Scan(
		&lv.ID, &lv.EmployeeID, &lv.EmployeeEmail, &lv.Reason, &lv.Status,
		&lv.StartDate, &lv.EndDate, &lv.CreatedAt, &lv.UpdatedAt,
	)
	return lv, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, reason, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lv.EmployeeID, lv.Reason, lv.Status, lv.StartDate, lv.EndDate,
	).Scan(&lv.ID, &lv.CreatedAt, &lv.UpdatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lv, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN accounts a ON a.id = l.employee_id
		WHERE l.id = $1
	`

	lv, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lv, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN accounts a ON a.id = l.employee_id
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.Leave
	for rows.Next() {
		lv, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, lv)
	}

	return result, rows.Err()
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN accounts a ON a.id = l.employee_id
		WHERE l.employee_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.Leave
	for rows.Next() {
		lv, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, lv)
	}

	return result, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves l SET status = $2, updated_at = NOW()
		FROM accounts a
		WHERE l.id = $1 AND a.id = l.employee_id
		RETURNING ` + leaveColumns

	lv, err := scanLeave(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return lv, nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}
