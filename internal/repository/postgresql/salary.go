package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopledesk/hrops-backend-go/internal/domain/salary"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `
	s.id, s.employee_id,
	s.base_salary, s.bonuses, s.deductions,
	s.late_coming_deductions, s.absence_deductions, s.total_salary,
	s.payment_date, s.created_at, s.updated_at
`

func scanSalary(row pgx.Row) (salary.Salary, error) {
	var sal salary.Salary
	err := row.Scan(
		&sal.ID, &sal.EmployeeID,
		&sal.BaseSalary, &sal.Bonuses, &sal.Deductions,
		&sal.LateComingDeductions, &sal.AbsenceDeductions, &sal.TotalSalary,
		&sal.PaymentDate, &sal.CreatedAt, &sal.UpdatedAt,
	)
	return sal, err
}

// Create implements salary.SalaryRepository.
func (r *salaryRepository) Create(ctx context.Context, sal salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (
			employee_id, base_salary, bonuses, deductions,
			late_coming_deductions, absence_deductions, total_salary, payment_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sal.EmployeeID,
		sal.BaseSalary,
		sal.Bonuses,
		sal.Deductions,
		sal.LateComingDeductions,
		sal.AbsenceDeductions,
		sal.TotalSalary,
		sal.PaymentDate,
	).Scan(&sal.ID, &sal.CreatedAt, &sal.UpdatedAt)
	if err != nil {
		return salary.Salary{}, fmt.Errorf("failed to create salary: %w", err)
	}

	return sal, nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepository) GetByID(ctx context.Context, id string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salaries s
		WHERE s.id = $1
	`

	sal, err := scanSalary(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary: %w", err)
	}

	return sal, nil
}

// GetLatestByEmployee implements salary.SalaryRepository.
func (r *salaryRepository) GetLatestByEmployee(ctx context.Context, employeeID string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salaries s
		WHERE s.employee_id = $1
		ORDER BY s.payment_date DESC, s.created_at DESC
		LIMIT 1
	`

	sal, err := scanSalary(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get latest salary: %w", err)
	}

	return sal, nil
}

// ListByEmployee implements salary.SalaryRepository.
func (r *salaryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salaries s
		WHERE s.employee_id = $1
		ORDER BY s.payment_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	var result []salary.Salary
	for rows.Next() {
		sal, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		result = append(result, sal)
	}

	return result, rows.Err()
}

// List implements salary.SalaryRepository.
func (r *salaryRepository) List(ctx context.Context) ([]salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `, a.name, a.email
		FROM salaries s
		JOIN accounts a ON a.id = s.employee_id
		ORDER BY s.payment_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	var result []salary.Salary
	for rows.Next() {
		var sal salary.Salary
		if err := rows.Scan(
			&sal.ID, &sal.EmployeeID,
			&sal.BaseSalary, &sal.Bonuses, &sal.Deductions,
			&sal.LateComingDeductions, &sal.AbsenceDeductions, &sal.TotalSalary,
			&sal.PaymentDate, &sal.CreatedAt, &sal.UpdatedAt,
			&sal.EmployeeName, &sal.EmployeeEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		result = append(result, sal)
	}

	return result, rows.Err()
}

// Update implements salary.SalaryRepository.
func (r *salaryRepository) Update(ctx context.Context, sal salary.Salary) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE salaries SET
			base_salary = $2, bonuses = $3, deductions = $4,
			late_coming_deductions = $5, absence_deductions = $6,
			total_salary = $7, payment_date = $8, updated_at = NOW()
		WHERE id = $1
	`, sal.ID, sal.BaseSalary, sal.Bonuses, sal.Deductions,
		sal.LateComingDeductions, sal.AbsenceDeductions,
		sal.TotalSalary, sal.PaymentDate)
	if err != nil {
		return fmt.Errorf("failed to update salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}

// Delete implements salary.SalaryRepository.
func (r *salaryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}
