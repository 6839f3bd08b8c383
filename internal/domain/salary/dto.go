package salary

import (
	"github.com/peopledesk/hrops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AddSalaryRequest struct {
	EmployeeID string          `json:"employee_id"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Bonuses    decimal.Decimal `json:"bonuses"`
	Deductions decimal.Decimal `json:"deductions"`
}

func (r *AddSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "invalid employee ID format",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddSalaryWithDeductionsRequest struct {
	EmployeeID         string          `json:"employee_id"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	Bonuses            decimal.Decimal `json:"bonuses"`
	WorkingDaysInMonth int             `json:"working_days_in_month"`
}

func (r *AddSalaryWithDeductionsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "invalid employee ID format",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.WorkingDaysInMonth <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days_in_month",
			Message: "working_days_in_month must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSalaryRequest struct {
	ID         string           `json:"-"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	Bonuses    *decimal.Decimal `json:"bonuses"`
	Deductions *decimal.Decimal `json:"deductions"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "invalid salary ID format",
		})
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SalaryResponse presents money as two-decimal strings. Rounding happens
// here only; stored values keep full precision.
type SalaryResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         *string `json:"employee_name,omitempty"`
	EmployeeEmail        *string `json:"employee_email,omitempty"`
	BaseSalary           string  `json:"base_salary"`
	Bonuses              string  `json:"bonuses"`
	Deductions           string  `json:"deductions"`
	LateComingDeductions string  `json:"late_coming_deductions"`
	AbsenceDeductions    string  `json:"absence_deductions"`
	TotalSalary          string  `json:"total_salary"`
	PaymentDate          string  `json:"payment_date"`
}

type DeductionsResponse struct {
	LateComingDeductions string `json:"late_coming_deductions"`
	AbsenceDeductions    string `json:"absence_deductions"`
	TotalDeductions      string `json:"total_deductions"`
}

// LateDeductionResponse reports the aggregated late check-in deduction for
// one month: every 5 late check-ins cost half a day's salary.
type LateDeductionResponse struct {
	EmployeeID        string                `json:"employee_id"`
	TotalLateCheckIns int                   `json:"total_late_check_ins"`
	MonthlySalary     string                `json:"monthly_salary"`
	DailySalary       string                `json:"daily_salary"`
	DeductionUnits    string                `json:"deduction_units"`
	TotalDeduction    string                `json:"total_deduction"`
	FinalSalary       string                `json:"final_salary"`
	LateCheckIns      []LateCheckInSummary  `json:"late_check_ins"`
}

type LateCheckInSummary struct {
	Date          string `json:"date"`
	LateByMinutes int    `json:"late_by_minutes"`
}
