package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary is one payroll record for an employee. TotalSalary is derived and
// recomputed whenever base, bonuses or deductions change; it is never edited
// independently.
type Salary struct {
	ID         string
	EmployeeID string

	BaseSalary           decimal.Decimal
	Bonuses              decimal.Decimal
	Deductions           decimal.Decimal
	LateComingDeductions decimal.Decimal
	AbsenceDeductions    decimal.Decimal
	TotalSalary          decimal.Decimal

	PaymentDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	EmployeeName  *string
	EmployeeEmail *string
}

// Recalculate refreshes the derived total from the editable components.
func (s *Salary) Recalculate() {
	s.TotalSalary = s.BaseSalary.Add(s.Bonuses).Sub(s.Deductions)
}
