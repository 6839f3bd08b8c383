package report

import (
	"context"
	"time"
)

// ReportService aggregates attendance records into summaries and deduction
// figures. Range parameters arrive in the dd-mm-yyyy wire form; ranges are
// inclusive of the end date.
type ReportService interface {
	// DailySummary joins every record on a calendar day to the roster
	DailySummary(ctx context.Context, date time.Time) ([]DailySummaryRow, error)

	// DailySummaryXLSX renders the daily summary as an Excel workbook
	DailySummaryXLSX(ctx context.Context, date time.Time) ([]byte, error)

	// MonthlySummary totals one employee's working minutes over a month
	MonthlySummary(ctx context.Context, employeeID string, month time.Month, year int) (MonthlySummaryResponse, error)

	// PresentList returns employees with at least one record in range
	PresentList(ctx context.Context, startDMY, endDMY string) (PresenceResponse, error)

	// AbsenteeList returns the roster complement of PresentList
	AbsenteeList(ctx context.Context, startDMY, endDMY string) (PresenceResponse, error)

	// EmployeeAbsenteeDeduction lists the employee's absent working dates
	// (Sundays and selected holidays excluded, range clamped to today) and
	// prices them at one daily salary each
	EmployeeAbsenteeDeduction(ctx context.Context, employeeID, startDMY, endDMY string) (AbsenteeDeductionResponse, error)

	// EmployeeHalfDays flags days worked under six hours and prices them at
	// half a daily salary each
	EmployeeHalfDays(ctx context.Context, employeeID, startDMY, endDMY string) (HalfDayResponse, error)
}
