package salary

import (
	"context"
	"time"

	"github.com/peopledesk/hrops-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
	"github.com/peopledesk/hrops-backend-go/internal/domain/salary"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/clock"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// lateHourRate is the flat charge per whole hour past the 9 AM reference in
// the composite payroll calculation. This is a separate, cruder policy than
// the 20-minute grace rule the check-in flow applies; the two are not
// interchangeable.
var lateHourRate = decimal.NewFromInt(10)

const lateHourReference = 9

type SalaryServiceImpl struct {
	salary.SalaryRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	attendance.LateCheckInRepository
	clock clock.Clock
}

func NewSalaryService(
	salaryRepo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	lateCheckInRepo attendance.LateCheckInRepository,
	clk clock.Clock,
) salary.SalaryService {
	return &SalaryServiceImpl{
		SalaryRepository:      salaryRepo,
		EmployeeRepository:    employeeRepo,
		AttendanceRepository:  attendanceRepo,
		LateCheckInRepository: lateCheckInRepo,
		clock:                 clk,
	}
}

func toSalaryResponse(sal salary.Salary) salary.SalaryResponse {
	return salary.SalaryResponse{
		ID:                   sal.ID,
		EmployeeID:           sal.EmployeeID,
		EmployeeName:         sal.EmployeeName,
		EmployeeEmail:        sal.EmployeeEmail,
		BaseSalary:           sal.BaseSalary.StringFixed(2),
		Bonuses:              sal.Bonuses.StringFixed(2),
		Deductions:           sal.Deductions.StringFixed(2),
		LateComingDeductions: sal.LateComingDeductions.StringFixed(2),
		AbsenceDeductions:    sal.AbsenceDeductions.StringFixed(2),
		TotalSalary:          sal.TotalSalary.StringFixed(2),
		PaymentDate:          sal.PaymentDate.Format("2006-01-02"),
	}
}

// AddSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) AddSalary(ctx context.Context, req salary.AddSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.SalaryResponse{}, err
	}

	sal := salary.Salary{
		EmployeeID:  req.EmployeeID,
		BaseSalary:  req.BaseSalary,
		Bonuses:     req.Bonuses,
		Deductions:  req.Deductions,
		PaymentDate: s.clock.Now(),
	}
	sal.Recalculate()

	created, err := s.SalaryRepository.Create(ctx, sal)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return toSalaryResponse(created), nil
}

// AddSalaryWithDeductions implements salary.SalaryService. The deductions are
// derived from the current month's attendance: each attended day charges $10
// per whole hour the check-in landed past 9 AM, and each of the
// (workingDaysInMonth - attended) absences charges one working-day salary.
func (s *SalaryServiceImpl) AddSalaryWithDeductions(ctx context.Context, req salary.AddSalaryWithDeductionsRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.SalaryResponse{}, err
	}

	now := s.clock.Now()
	start, next := timeutil.MonthRange(now.Month(), now.Year())
	records, err := s.AttendanceRepository.ListByEmployeeBetween(ctx, req.EmployeeID, start, next.AddDate(0, 0, -1))
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	lateComing := decimal.Zero
	for _, att := range records {
		if att.CheckInTime == nil {
			continue
		}
		if hoursLate := att.CheckInTime.Hour() - lateHourReference; hoursLate > 0 {
			lateComing = lateComing.Add(lateHourRate.Mul(decimal.NewFromInt(int64(hoursLate))))
		}
	}

	absences := req.WorkingDaysInMonth - len(records)
	absence := req.BaseSalary.
		Div(decimal.NewFromInt(int64(req.WorkingDaysInMonth))).
		Mul(decimal.NewFromInt(int64(absences)))

	sal := salary.Salary{
		EmployeeID:           req.EmployeeID,
		BaseSalary:           req.BaseSalary,
		Bonuses:              req.Bonuses,
		Deductions:           lateComing.Add(absence),
		LateComingDeductions: lateComing,
		AbsenceDeductions:    absence,
		PaymentDate:          now,
	}
	sal.Recalculate()

	created, err := s.SalaryRepository.Create(ctx, sal)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return toSalaryResponse(created), nil
}

// List implements salary.SalaryService.
func (s *SalaryServiceImpl) List(ctx context.Context) ([]salary.SalaryResponse, error) {
	records, err := s.SalaryRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]salary.SalaryResponse, 0, len(records))
	for _, sal := range records {
		result = append(result, toSalaryResponse(sal))
	}

	return result, nil
}

// ListByEmployee implements salary.SalaryService.
func (s *SalaryServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]salary.SalaryResponse, error) {
	records, err := s.SalaryRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]salary.SalaryResponse, 0, len(records))
	for _, sal := range records {
		result = append(result, toSalaryResponse(sal))
	}

	return result, nil
}

// Update implements salary.SalaryService. The total is always recomputed;
// callers cannot set it directly.
func (s *SalaryServiceImpl) Update(ctx context.Context, req salary.UpdateSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	sal, err := s.SalaryRepository.GetByID(ctx, req.ID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	if req.BaseSalary != nil {
		sal.BaseSalary = *req.BaseSalary
	}
	if req.Bonuses != nil {
		sal.Bonuses = *req.Bonuses
	}
	if req.Deductions != nil {
		sal.Deductions = *req.Deductions
	}
	sal.Recalculate()

	if err := s.SalaryRepository.Update(ctx, sal); err != nil {
		return salary.SalaryResponse{}, err
	}

	return toSalaryResponse(sal), nil
}

// Delete implements salary.SalaryService.
func (s *SalaryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.SalaryRepository.Delete(ctx, id)
}

// GetDeductions implements salary.SalaryService.
func (s *SalaryServiceImpl) GetDeductions(ctx context.Context, id string) (salary.DeductionsResponse, error) {
	sal, err := s.SalaryRepository.GetByID(ctx, id)
	if err != nil {
		return salary.DeductionsResponse{}, err
	}

	return salary.DeductionsResponse{
		LateComingDeductions: sal.LateComingDeductions.StringFixed(2),
		AbsenceDeductions:    sal.AbsenceDeductions.StringFixed(2),
		TotalDeductions:      sal.Deductions.StringFixed(2),
	}, nil
}

// LateCheckInDeduction implements salary.SalaryService. Every 5 late
// check-ins in the month cost half a day's salary; partial groups of fewer
// than 5 cost nothing.
func (s *SalaryServiceImpl) LateCheckInDeduction(ctx context.Context, employeeID string, month time.Month, year int) (salary.LateDeductionResponse, error) {
	start, next := timeutil.MonthRange(month, year)
	lates, err := s.LateCheckInRepository.ListLateByEmployeeBetween(ctx, employeeID, start, next.AddDate(0, 0, -1))
	if err != nil {
		return salary.LateDeductionResponse{}, err
	}

	latest, err := s.SalaryRepository.GetLatestByEmployee(ctx, employeeID)
	if err != nil {
		return salary.LateDeductionResponse{}, err
	}

	monthly := latest.BaseSalary
	daily := monthly.Div(decimal.NewFromInt(int64(timeutil.DaysInMonth(start))))

	units := decimal.NewFromInt(int64(len(lates) / 5)).Mul(decimal.NewFromFloat(0.5))
	total := units.Mul(daily)

	summaries := make([]salary.LateCheckInSummary, 0, len(lates))
	for _, rec := range lates {
		summaries = append(summaries, salary.LateCheckInSummary{
			Date:          timeutil.FormatDMY(rec.Date),
			LateByMinutes: rec.LateByMinutes,
		})
	}

	return salary.LateDeductionResponse{
		EmployeeID:        employeeID,
		TotalLateCheckIns: len(lates),
		MonthlySalary:     monthly.StringFixed(2),
		DailySalary:       daily.StringFixed(2),
		DeductionUnits:    units.String(),
		TotalDeduction:    total.StringFixed(2),
		FinalSalary:       monthly.Sub(total).StringFixed(2),
		LateCheckIns:      summaries,
	}, nil
}
