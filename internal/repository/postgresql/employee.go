package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	a.id, a.name, a.email, p.phone_number,
	p.job_role, p.joined_date,
	p.bank_name, p.bank_branch, p.bank_account_number,
	p.address, p.city, p.state, p.pin_code,
	p.predefined_check_in_time,
	p.created_at, p.updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.PhoneNumber,
		&e.JobRole, &e.JoinedDate,
		&e.BankName, &e.BankBranch, &e.BankAccountNumber,
		&e.Address, &e.City, &e.State, &e.PinCode,
		&e.PredefinedCheckInTime,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository. The account row must exist
// already; this inserts the profile.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_profiles (
			account_id, phone_number, job_role, joined_date,
			bank_name, bank_branch, bank_account_number,
			address, city, state, pin_code, predefined_check_in_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.PhoneNumber, emp.JobRole, emp.JoinedDate,
		emp.BankName, emp.BankBranch, emp.BankAccountNumber,
		emp.Address, emp.City, emp.State, emp.PinCode, emp.PredefinedCheckInTime,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrPhoneExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee profile: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM accounts a
		JOIN employee_profiles p ON p.account_id = a.id
		WHERE a.id = $1 AND a.role = 'employee'
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM accounts a
		JOIN employee_profiles p ON p.account_id = a.id
		WHERE a.email = $1 AND a.role = 'employee'
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM accounts a
		JOIN employee_profiles p ON p.account_id = a.id
		WHERE a.role = 'employee'
		ORDER BY a.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	// Name lives on the account, the rest on the profile
	if _, err := q.Exec(ctx, `
		UPDATE accounts SET name = $2, updated_at = NOW() WHERE id = $1
	`, emp.ID, emp.Name); err != nil {
		return fmt.Errorf("failed to update account name: %w", err)
	}

	tag, err := q.Exec(ctx, `
		UPDATE employee_profiles SET
			phone_number = $2, job_role = $3, joined_date = $4,
			bank_name = $5, bank_branch = $6, bank_account_number = $7,
			address = $8, city = $9, state = $10, pin_code = $11,
			predefined_check_in_time = $12, updated_at = NOW()
		WHERE account_id = $1
	`, emp.ID, emp.PhoneNumber, emp.JobRole, emp.JoinedDate,
		emp.BankName, emp.BankBranch, emp.BankAccountNumber,
		emp.Address, emp.City, emp.State, emp.PinCode,
		emp.PredefinedCheckInTime)
	if err != nil {
		return fmt.Errorf("failed to update employee profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM accounts WHERE id = $1 AND role = 'employee'
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
