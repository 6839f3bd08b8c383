package salary

import "context"

type SalaryRepository interface {
	Create(ctx context.Context, salary Salary) (Salary, error)

	GetByID(ctx context.Context, id string) (Salary, error)

	// GetLatestByEmployee returns the most recent record by payment date.
	// Deduction calculators read the base salary from here.
	GetLatestByEmployee(ctx context.Context, employeeID string) (Salary, error)

	// ListByEmployee returns all records for an employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Salary, error)

	// List returns all salary records joined to employee identity,
	// newest first
	List(ctx context.Context) ([]Salary, error)

	Update(ctx context.Context, salary Salary) error

	Delete(ctx context.Context, id string) error
}
