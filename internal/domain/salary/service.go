package salary

import (
	"context"
	"time"
)

// SalaryService covers payroll records and the deduction calculators.
type SalaryService interface {
	// AddSalary creates a plain salary record; total is derived
	AddSalary(ctx context.Context, req AddSalaryRequest) (SalaryResponse, error)

	// AddSalaryWithDeductions creates a record for the current month with
	// late-coming (9 AM hour policy) and absence deductions applied
	AddSalaryWithDeductions(ctx context.Context, req AddSalaryWithDeductionsRequest) (SalaryResponse, error)

	// List returns all salary records (admin)
	List(ctx context.Context) ([]SalaryResponse, error)

	// ListByEmployee returns an employee's salary history
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryResponse, error)

	// Update edits base/bonuses/deductions and recomputes the total
	Update(ctx context.Context, req UpdateSalaryRequest) (SalaryResponse, error)

	Delete(ctx context.Context, id string) error

	// GetDeductions returns the deduction breakdown of one record
	GetDeductions(ctx context.Context, id string) (DeductionsResponse, error)

	// LateCheckInDeduction aggregates a month's late check-ins into
	// half-day deduction units against the employee's base salary
	LateCheckInDeduction(ctx context.Context, employeeID string, month time.Month, year int) (LateDeductionResponse, error)
}
