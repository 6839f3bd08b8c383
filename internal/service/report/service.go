package report

import (
	"context"
	"errors"
	"time"

	"github.com/peopledesk/hrops-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
	"github.com/peopledesk/hrops-backend-go/internal/domain/holiday"
	"github.com/peopledesk/hrops-backend-go/internal/domain/report"
	"github.com/peopledesk/hrops-backend-go/internal/domain/salary"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/clock"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	salary.SalaryRepository
	holiday.SelectedHolidayRepository
	clock clock.Clock
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	salaryRepo salary.SalaryRepository,
	selectedHolidayRepo holiday.SelectedHolidayRepository,
	clk clock.Clock,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository:      attendanceRepo,
		EmployeeRepository:        employeeRepo,
		SalaryRepository:          salaryRepo,
		SelectedHolidayRepository: selectedHolidayRepo,
		clock:                     clk,
	}
}

func parseRange(startDMY, endDMY string) (time.Time, time.Time, error) {
	start, err := timeutil.ParseDMY(startDMY)
	if err != nil {
		return time.Time{}, time.Time{}, report.ErrInvalidDateRange
	}
	end, err := timeutil.ParseDMY(endDMY)
	if err != nil {
		return time.Time{}, time.Time{}, report.ErrInvalidDateRange
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, report.ErrInvalidDateRange
	}
	return start, end, nil
}

func clockTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

// DailySummary implements report.ReportService. Every employee on the roster
// gets a row; employees without a record that day appear with empty times.
func (s *ReportServiceImpl) DailySummary(ctx context.Context, date time.Time) ([]report.DailySummaryRow, error) {
	var roster []employee.Employee
	var records []attendance.Attendance

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.EmployeeRepository.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListByDate(gctx, timeutil.DateOf(date))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, att := range records {
		byEmployee[att.EmployeeID] = att
	}

	rows := make([]report.DailySummaryRow, 0, len(roster))
	for _, emp := range roster {
		row := report.DailySummaryRow{
			EmployeeID:          emp.ID,
			EmployeeName:        emp.Name,
			EmployeeEmail:       emp.Email,
			TotalRecessDuration: timeutil.FormatHMS(0),
			CurrentStatus:       "Absent",
		}
		if att, ok := byEmployee[emp.ID]; ok {
			row.CheckInTime = clockTimePtr(att.CheckInTime)
			row.CheckOutTime = clockTimePtr(att.CheckOutTime)
			row.TotalRecessDuration = timeutil.FormatHMS(att.TotalRecessDuration)
			row.CurrentStatus = string(att.CurrentStatus)
			row.LateCheckIn = att.LateCheckIn
			if att.CheckInTime != nil && att.CheckOutTime != nil {
				minutes := att.WorkingMinutes()
				row.WorkMinutes = &minutes
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// MonthlySummary implements report.ReportService.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, employeeID string, month time.Month, year int) (report.MonthlySummaryResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return report.MonthlySummaryResponse{}, err
	}

	start, next := timeutil.MonthRange(month, year)
	records, err := s.AttendanceRepository.ListByEmployeeBetween(ctx, employeeID, start, next.AddDate(0, 0, -1))
	if err != nil {
		return report.MonthlySummaryResponse{}, err
	}

	resp := report.MonthlySummaryResponse{EmployeeID: employeeID}
	for _, att := range records {
		minutes := att.WorkingMinutes()
		resp.TotalWorkMinutes += minutes
		resp.Records = append(resp.Records, report.MonthlySummaryRow{
			Date:        timeutil.FormatDMY(att.Date),
			WorkMinutes: minutes,
		})
	}

	return resp, nil
}

func (s *ReportServiceImpl) presence(ctx context.Context, startDMY, endDMY string) ([]report.RosterEntry, []report.RosterEntry, error) {
	start, end, err := parseRange(startDMY, endDMY)
	if err != nil {
		return nil, nil, err
	}

	var roster []employee.Employee
	var records []attendance.Attendance

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.EmployeeRepository.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListBetween(gctx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool, len(records))
	for _, att := range records {
		seen[att.EmployeeID] = true
	}

	var present, absent []report.RosterEntry
	for _, emp := range roster {
		entry := report.RosterEntry{EmployeeID: emp.ID, Name: emp.Name, Email: emp.Email}
		if seen[emp.ID] {
			present = append(present, entry)
		} else {
			absent = append(absent, entry)
		}
	}

	return present, absent, nil
}

// PresentList implements report.ReportService.
func (s *ReportServiceImpl) PresentList(ctx context.Context, startDMY, endDMY string) (report.PresenceResponse, error) {
	present, _, err := s.presence(ctx, startDMY, endDMY)
	if err != nil {
		return report.PresenceResponse{}, err
	}
	return report.PresenceResponse{Present: present}, nil
}

// AbsenteeList implements report.ReportService.
func (s *ReportServiceImpl) AbsenteeList(ctx context.Context, startDMY, endDMY string) (report.PresenceResponse, error) {
	_, absent, err := s.presence(ctx, startDMY, endDMY)
	if err != nil {
		return report.PresenceResponse{}, err
	}
	return report.PresenceResponse{Absent: absent}, nil
}

// workingDates returns the calendar days in [start, end] an employee was
// expected to work: Sundays and the employee's selected holidays are skipped.
func workingDates(start, end time.Time, holidays map[string]bool) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		if holidays[d.Format("2006-01-02")] {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// EmployeeAbsenteeDeduction implements report.ReportService. Future dates are
// never counted absent: the range end is clamped to today. The daily salary
// divides the base by the calendar length of the range's starting month.
func (s *ReportServiceImpl) EmployeeAbsenteeDeduction(ctx context.Context, employeeID, startDMY, endDMY string) (report.AbsenteeDeductionResponse, error) {
	start, end, err := parseRange(startDMY, endDMY)
	if err != nil {
		return report.AbsenteeDeductionResponse{}, err
	}

	var emp employee.Employee
	var latest salary.Salary
	var records []attendance.Attendance
	var selection holiday.SelectedHoliday

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emp, err = s.EmployeeRepository.GetByID(gctx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = s.SalaryRepository.GetLatestByEmployee(gctx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListByEmployeeBetween(gctx, employeeID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		selection, err = s.SelectedHolidayRepository.GetByEmployee(gctx, employeeID)
		if errors.Is(err, holiday.ErrSelectionNotFound) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return report.AbsenteeDeductionResponse{}, err
	}

	today := timeutil.DateOf(s.clock.Now())
	if end.After(today) {
		end = today
	}

	holidaySet := make(map[string]bool, len(selection.Entries))
	for _, entry := range selection.Entries {
		holidaySet[entry.Date.Format("2006-01-02")] = true
	}

	attended := make(map[string]bool, len(records))
	for _, att := range records {
		attended[att.Date.Format("2006-01-02")] = true
	}

	var absentDates []report.AbsentDate
	if !start.After(end) {
		for _, d := range workingDates(start, end, holidaySet) {
			if attended[d.Format("2006-01-02")] {
				continue
			}
			absentDates = append(absentDates, report.AbsentDate{
				Date:          d.Format("2006-01-02"),
				FormattedDate: timeutil.FormatDMY(d),
			})
		}
	}

	daysInMonth := timeutil.DaysInMonth(start)
	daily := latest.BaseSalary.Div(decimal.NewFromInt(int64(daysInMonth)))
	total := daily.Mul(decimal.NewFromInt(int64(len(absentDates))))

	return report.AbsenteeDeductionResponse{
		EmployeeID:       emp.ID,
		EmployeeName:     emp.Name,
		BaseSalary:       latest.BaseSalary.StringFixed(2),
		DailySalary:      daily.StringFixed(2),
		TotalDaysInMonth: daysInMonth,
		TotalAbsents:     len(absentDates),
		TotalDeduction:   total.StringFixed(2),
		AbsentDates:      absentDates,
	}, nil
}

// halfDayThreshold is the working time under which an attended day counts
// as a half day.
const halfDayThreshold = 6 * time.Hour

// EmployeeHalfDays implements report.ReportService. Every day with a
// recorded check-in is judged; a day never checked out of still has zero
// working time and counts as a half day. Each half day costs half a daily
// salary.
func (s *ReportServiceImpl) EmployeeHalfDays(ctx context.Context, employeeID, startDMY, endDMY string) (report.HalfDayResponse, error) {
	start, end, err := parseRange(startDMY, endDMY)
	if err != nil {
		return report.HalfDayResponse{}, err
	}

	today := timeutil.DateOf(s.clock.Now())
	if end.After(today) {
		end = today
	}

	var emp employee.Employee
	var latest salary.Salary
	var records []attendance.Attendance

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emp, err = s.EmployeeRepository.GetByID(gctx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = s.SalaryRepository.GetLatestByEmployee(gctx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListByEmployeeBetween(gctx, employeeID, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.HalfDayResponse{}, err
	}

	var allDays, halfDays []report.HalfDayDetail
	for _, att := range records {
		if att.CheckInTime == nil {
			continue
		}
		isHalf := att.TotalWorkingTime < halfDayThreshold
		detail := report.HalfDayDetail{
			Date:          att.Date.Format("2006-01-02"),
			FormattedDate: timeutil.FormatDMY(att.Date),
			HoursWorked: decimal.NewFromInt(int64(att.WorkingMinutes())).
				Div(decimal.NewFromInt(60)).StringFixed(2),
			IsHalfDay: isHalf,
		}
		allDays = append(allDays, detail)
		if isHalf {
			halfDays = append(halfDays, detail)
		}
	}

	daysInMonth := timeutil.DaysInMonth(start)
	daily := latest.BaseSalary.Div(decimal.NewFromInt(int64(daysInMonth)))
	total := daily.Div(decimal.NewFromInt(2)).Mul(decimal.NewFromInt(int64(len(halfDays))))

	return report.HalfDayResponse{
		EmployeeID:       emp.ID,
		EmployeeName:     emp.Name,
		BaseSalary:       latest.BaseSalary.StringFixed(2),
		DailySalary:      daily.StringFixed(2),
		TotalDaysInMonth: daysInMonth,
		TotalHalfDays:    len(halfDays),
		TotalDeduction:   total.StringFixed(2),
		HalfDays:         halfDays,
		AllDays:          allDays,
	}, nil
}
