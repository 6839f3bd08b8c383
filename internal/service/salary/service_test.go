package salary

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/peopledesk/hrops-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
	"github.com/peopledesk/hrops-backend-go/internal/domain/salary"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSalaryRepo struct {
	salaries map[string]salary.Salary
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{salaries: map[string]salary.Salary{}}
}

func (r *fakeSalaryRepo) Create(_ context.Context, sal salary.Salary) (salary.Salary, error) {
	sal.ID = uuid.NewString()
	r.salaries[sal.ID] = sal
	return sal, nil
}

func (r *fakeSalaryRepo) GetByID(_ context.Context, id string) (salary.Salary, error) {
	sal, ok := r.salaries[id]
	if !ok {
		return salary.Salary{}, salary.ErrSalaryNotFound
	}
	return sal, nil
}

func (r *fakeSalaryRepo) GetLatestByEmployee(_ context.Context, employeeID string) (salary.Salary, error) {
	var latest *salary.Salary
	for id := range r.salaries {
		sal := r.salaries[id]
		if sal.EmployeeID != employeeID {
			continue
		}
		if latest == nil || sal.PaymentDate.After(latest.PaymentDate) {
			latest = &sal
		}
	}
	if latest == nil {
		return salary.Salary{}, salary.ErrSalaryNotFound
	}
	return *latest, nil
}

func (r *fakeSalaryRepo) ListByEmployee(_ context.Context, employeeID string) ([]salary.Salary, error) {
	var result []salary.Salary
	for _, sal := range r.salaries {
		if sal.EmployeeID == employeeID {
			result = append(result, sal)
		}
	}
	return result, nil
}

func (r *fakeSalaryRepo) List(_ context.Context) ([]salary.Salary, error) {
	var result []salary.Salary
	for _, sal := range r.salaries {
		result = append(result, sal)
	}
	return result, nil
}

func (r *fakeSalaryRepo) Update(_ context.Context, sal salary.Salary) error {
	if _, ok := r.salaries[sal.ID]; !ok {
		return salary.ErrSalaryNotFound
	}
	r.salaries[sal.ID] = sal
	return nil
}

func (r *fakeSalaryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.salaries[id]; !ok {
		return salary.ErrSalaryNotFound
	}
	delete(r.salaries, id)
	return nil
}

type fakeEmployeeRepo struct {
	ids map[string]bool
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if !r.ids[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id}, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }
func (r *fakeEmployeeRepo) Delete(_ context.Context, _ string) error            { return nil }

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.records = append(r.records, att)
	return att, nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrNoRecordToday
}

func (r *fakeAttendanceRepo) Update(_ context.Context, _ attendance.Attendance) error { return nil }

func (r *fakeAttendanceRepo) ListByDate(_ context.Context, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByEmployeeBetween(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeID == employeeID && !att.Date.Before(start) && !att.Date.After(end) {
			result = append(result, att)
		}
	}
	return result, nil
}

func (r *fakeAttendanceRepo) ListBetween(_ context.Context, _, _ time.Time) ([]attendance.Attendance, error) {
	return r.records, nil
}

type fakeLateCheckInRepo struct {
	records []attendance.LateCheckIn
}

func (r *fakeLateCheckInRepo) Create(_ context.Context, rec attendance.LateCheckIn) (attendance.LateCheckIn, error) {
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *fakeLateCheckInRepo) List(_ context.Context, _ attendance.LateCheckInFilter) ([]attendance.LateCheckIn, error) {
	return r.records, nil
}

func (r *fakeLateCheckInRepo) ListLateByEmployeeBetween(_ context.Context, employeeID string, start, end time.Time) ([]attendance.LateCheckIn, error) {
	var result []attendance.LateCheckIn
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.LateByMinutes > 0 &&
			!rec.Date.Before(start) && !rec.Date.After(end) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(salRepo *fakeSalaryRepo, attRepo *fakeAttendanceRepo, lateRepo *fakeLateCheckInRepo, now time.Time) salary.SalaryService {
	empRepo := &fakeEmployeeRepo{ids: map[string]bool{employeeID: true}}
	return NewSalaryService(salRepo, empRepo, attRepo, lateRepo, clock.Fixed(now))
}

const employeeID = "3f1ac033-25f2-44f1-88f9-f45b4a381fd6"

func lateRecords(n, minutes int, start time.Time) []attendance.LateCheckIn {
	records := make([]attendance.LateCheckIn, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, attendance.LateCheckIn{
			ID:            fmt.Sprintf("late-%d", i),
			EmployeeID:    employeeID,
			Date:          start.AddDate(0, 0, i),
			LateByMinutes: minutes,
		})
	}
	return records
}

func TestLateCheckInDeduction(t *testing.T) {
	baseSalary := func() *fakeSalaryRepo {
		repo := newFakeSalaryRepo()
		repo.salaries["sal-1"] = salary.Salary{
			ID:          "sal-1",
			EmployeeID:  employeeID,
			BaseSalary:  decimal.NewFromInt(30000),
			PaymentDate: date(2026, time.May, 31),
		}
		return repo
	}

	t.Run("five lates cost half a day", func(t *testing.T) {
		lateRepo := &fakeLateCheckInRepo{records: lateRecords(5, 30, date(2026, time.June, 1))}
		svc := newTestService(baseSalary(), &fakeAttendanceRepo{}, lateRepo, date(2026, time.June, 30))

		resp, err := svc.LateCheckInDeduction(context.Background(), employeeID, time.June, 2026)
		require.NoError(t, err)

		assert.Equal(t, 5, resp.TotalLateCheckIns)
		assert.Equal(t, "1000.00", resp.DailySalary) // 30000 over 30 days
		assert.Equal(t, "0.5", resp.DeductionUnits)
		assert.Equal(t, "500.00", resp.TotalDeduction)
		assert.Equal(t, "29500.00", resp.FinalSalary)
		assert.Len(t, resp.LateCheckIns, 5)
	})

	t.Run("four lates cost nothing", func(t *testing.T) {
		lateRepo := &fakeLateCheckInRepo{records: lateRecords(4, 45, date(2026, time.June, 1))}
		svc := newTestService(baseSalary(), &fakeAttendanceRepo{}, lateRepo, date(2026, time.June, 30))

		resp, err := svc.LateCheckInDeduction(context.Background(), employeeID, time.June, 2026)
		require.NoError(t, err)

		assert.Equal(t, 4, resp.TotalLateCheckIns)
		assert.Equal(t, "0", resp.DeductionUnits)
		assert.Equal(t, "0.00", resp.TotalDeduction)
		assert.Equal(t, "30000.00", resp.FinalSalary)
	})

	t.Run("twelve lates cost a full day", func(t *testing.T) {
		lateRepo := &fakeLateCheckInRepo{records: lateRecords(12, 25, date(2026, time.June, 1))}
		svc := newTestService(baseSalary(), &fakeAttendanceRepo{}, lateRepo, date(2026, time.June, 30))

		resp, err := svc.LateCheckInDeduction(context.Background(), employeeID, time.June, 2026)
		require.NoError(t, err)

		assert.Equal(t, "1", resp.DeductionUnits)
		assert.Equal(t, "1000.00", resp.TotalDeduction)
	})

	t.Run("lates outside the month are ignored", func(t *testing.T) {
		lateRepo := &fakeLateCheckInRepo{records: lateRecords(5, 30, date(2026, time.May, 20))}
		svc := newTestService(baseSalary(), &fakeAttendanceRepo{}, lateRepo, date(2026, time.June, 30))

		resp, err := svc.LateCheckInDeduction(context.Background(), employeeID, time.June, 2026)
		require.NoError(t, err)

		assert.Equal(t, 0, resp.TotalLateCheckIns)
		assert.Equal(t, "0.00", resp.TotalDeduction)
	})

	t.Run("no salary record", func(t *testing.T) {
		svc := newTestService(newFakeSalaryRepo(), &fakeAttendanceRepo{}, &fakeLateCheckInRepo{}, date(2026, time.June, 30))

		_, err := svc.LateCheckInDeduction(context.Background(), employeeID, time.June, 2026)
		assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
	})
}

func TestAddSalaryWithDeductions(t *testing.T) {
	now := date(2026, time.June, 28)

	checkInAt := func(day, hour int) attendance.Attendance {
		in := time.Date(2026, time.June, day, hour, 15, 0, 0, time.UTC)
		return attendance.Attendance{
			EmployeeID:  employeeID,
			Date:        date(2026, time.June, day),
			CheckInTime: &in,
		}
	}

	t.Run("late hours and absences both deducted", func(t *testing.T) {
		attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
			checkInAt(1, 9),  // on the reference hour, no charge
			checkInAt(2, 11), // 2 hours past 9 AM
			checkInAt(3, 10), // 1 hour past 9 AM
		}}
		salRepo := newFakeSalaryRepo()
		svc := newTestService(salRepo, attRepo, &fakeLateCheckInRepo{}, now)

		resp, err := svc.AddSalaryWithDeductions(context.Background(), salary.AddSalaryWithDeductionsRequest{
			EmployeeID:         employeeID,
			BaseSalary:         decimal.NewFromInt(22000),
			Bonuses:            decimal.NewFromInt(500),
			WorkingDaysInMonth: 22,
		})
		require.NoError(t, err)

		// 3 hours late at $10, plus 19 absences at 22000/22 = 1000 each
		assert.Equal(t, "30.00", resp.LateComingDeductions)
		assert.Equal(t, "19000.00", resp.AbsenceDeductions)
		assert.Equal(t, "19030.00", resp.Deductions)
		assert.Equal(t, "3470.00", resp.TotalSalary)
	})

	t.Run("records outside the current month are ignored", func(t *testing.T) {
		in := time.Date(2026, time.May, 5, 13, 0, 0, 0, time.UTC)
		attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{{
			EmployeeID:  employeeID,
			Date:        date(2026, time.May, 5),
			CheckInTime: &in,
		}}}
		svc := newTestService(newFakeSalaryRepo(), attRepo, &fakeLateCheckInRepo{}, now)

		resp, err := svc.AddSalaryWithDeductions(context.Background(), salary.AddSalaryWithDeductionsRequest{
			EmployeeID:         employeeID,
			BaseSalary:         decimal.NewFromInt(20000),
			WorkingDaysInMonth: 20,
		})
		require.NoError(t, err)

		assert.Equal(t, "0.00", resp.LateComingDeductions)
		assert.Equal(t, "20000.00", resp.AbsenceDeductions)
	})

	t.Run("validation", func(t *testing.T) {
		svc := newTestService(newFakeSalaryRepo(), &fakeAttendanceRepo{}, &fakeLateCheckInRepo{}, now)

		_, err := svc.AddSalaryWithDeductions(context.Background(), salary.AddSalaryWithDeductionsRequest{
			EmployeeID:         employeeID,
			BaseSalary:         decimal.NewFromInt(20000),
			WorkingDaysInMonth: 0,
		})
		assert.Error(t, err)
	})
}

func TestAddAndUpdateSalary(t *testing.T) {
	now := date(2026, time.June, 28)
	salRepo := newFakeSalaryRepo()
	svc := newTestService(salRepo, &fakeAttendanceRepo{}, &fakeLateCheckInRepo{}, now)
	ctx := context.Background()

	created, err := svc.AddSalary(ctx, salary.AddSalaryRequest{
		EmployeeID: employeeID,
		BaseSalary: decimal.NewFromInt(25000),
		Bonuses:    decimal.NewFromInt(2000),
		Deductions: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, "26500.00", created.TotalSalary)

	newBonus := decimal.NewFromInt(3000)
	updated, err := svc.Update(ctx, salary.UpdateSalaryRequest{
		ID:      created.ID,
		Bonuses: &newBonus,
	})
	require.NoError(t, err)
	assert.Equal(t, "27500.00", updated.TotalSalary, "total is re-derived after every edit")

	deductions, err := svc.GetDeductions(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "500.00", deductions.TotalDeductions)

	t.Run("unknown employee", func(t *testing.T) {
		_, err := svc.AddSalary(ctx, salary.AddSalaryRequest{
			EmployeeID: "0ed1c6f3-74cb-47bc-9c0e-3fc2207aa33e",
			BaseSalary: decimal.NewFromInt(1000),
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.ID))
		err := svc.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
	})
}
