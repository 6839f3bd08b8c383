package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hrops-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/clock"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/database"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/timeutil"
)

type AttendanceServiceImpl struct {
	tx database.TxManager
	attendance.AttendanceRepository
	attendance.LateCheckInRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewAttendanceService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	lateCheckInRepo attendance.LateCheckInRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                    tx,
		AttendanceRepository:  attendanceRepo,
		LateCheckInRepository: lateCheckInRepo,
		EmployeeRepository:    employeeRepo,
		clock:                 clk,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                  att.ID,
		EmployeeID:          att.EmployeeID,
		EmployeeName:        att.EmployeeName,
		EmployeeEmail:       att.EmployeeEmail,
		Date:                timeutil.FormatDMY(att.Date),
		CheckInTime:         timePtrToString(att.CheckInTime),
		CheckOutTime:        timePtrToString(att.CheckOutTime),
		IsRecess:            att.IsRecess,
		RecessStartTime:     timePtrToString(att.RecessStartTime),
		TotalRecessDuration: timeutil.FormatHMS(att.TotalRecessDuration),
		TotalWorkingMinutes: att.WorkingMinutes(),
		LateCheckIn:         att.LateCheckIn,
		CurrentStatus:       string(att.CurrentStatus),
	}
}

// CheckIn implements attendance.AttendanceService. The attendance record and
// the late check-in event are written in one transaction; the store's unique
// key on (employee_id, date) rejects a second check-in atomically.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.CheckInResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := s.clock.Now()

	late, lateMinutes, err := EvaluateLateness(emp.PredefinedCheckInTime, now)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	var created attendance.Attendance
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.AttendanceRepository.Create(txCtx, attendance.Attendance{
			EmployeeID:    employeeID,
			Date:          timeutil.DateOf(now),
			CheckInTime:   &now,
			LateCheckIn:   late,
			LateMinutes:   lateMinutes,
			CurrentStatus: attendance.StatusCheckedIn,
		})
		if err != nil {
			return err
		}

		if !late {
			return nil
		}
		_, err = s.LateCheckInRepository.Create(txCtx, attendance.LateCheckIn{
			EmployeeID:            employeeID,
			Date:                  timeutil.DateOf(now),
			LateByMinutes:         lateMinutes,
			PredefinedCheckInTime: emp.PredefinedCheckInTime,
			ActualCheckInTime:     now,
		})
		return err
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	message := "On time"
	if late {
		message = fmt.Sprintf("Late by %d minutes", lateMinutes)
	}

	return attendance.CheckInResponse{
		Attendance:    toAttendanceResponse(created),
		LateCheckIn:   message,
		LateByMinutes: lateMinutes,
	}, nil
}

// StartRecess implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StartRecess(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.clock.Now()

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, timeutil.DateOf(now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if att.IsRecess {
		return attendance.AttendanceResponse{}, attendance.ErrRecessAlreadyActive
	}

	att.IsRecess = true
	att.RecessStartTime = &now
	att.CurrentStatus = attendance.StatusInRecess

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(att), nil
}

// EndRecess implements attendance.AttendanceService. The finished interval is
// added to the day's accumulated recess total.
func (s *AttendanceServiceImpl) EndRecess(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.clock.Now()

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, timeutil.DateOf(now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !att.IsRecess || att.RecessStartTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveRecess
	}

	att.TotalRecessDuration += now.Sub(*att.RecessStartTime)
	att.IsRecess = false
	att.RecessStartTime = nil
	att.CurrentStatus = attendance.StatusCheckedIn

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(att), nil
}

// CheckOut implements attendance.AttendanceService. Working time is the span
// from check-in to check-out minus accumulated recess.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.CheckOutResponse, error) {
	now := s.clock.Now()

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, timeutil.DateOf(now))
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	if att.CheckInTime == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if att.CheckOutTime != nil {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if att.IsRecess {
		return attendance.CheckOutResponse{}, attendance.ErrRecessActive
	}

	working := now.Sub(*att.CheckInTime) - att.TotalRecessDuration
	if working < 0 {
		working = 0
	}

	att.CheckOutTime = &now
	att.TotalWorkingTime = working
	att.CurrentStatus = attendance.StatusCheckedOut

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{
		Attendance:       toAttendanceResponse(att),
		TotalWorkingTime: timeutil.FormatHM(att.WorkingMinutes()),
	}, nil
}

// CurrentStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CurrentStatus(ctx context.Context, employeeID string) (attendance.StatusResponse, error) {
	now := s.clock.Now()

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, timeutil.DateOf(now))
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	recess := att.TotalRecessDuration
	if att.IsRecess && att.RecessStartTime != nil {
		recess += now.Sub(*att.RecessStartTime)
	}

	return attendance.StatusResponse{
		Status:              string(att.CurrentStatus),
		CheckInTime:         timePtrToString(att.CheckInTime),
		CheckOutTime:        timePtrToString(att.CheckOutTime),
		RecessStartTime:     timePtrToString(att.RecessStartTime),
		TotalRecessDuration: timeutil.FormatHMS(recess),
		LiveWorkingTime:     timeutil.FormatHMS(att.LiveWorkingTime(now)),
		LateCheckIn:         att.LateCheckIn,
	}, nil
}

// UpdateAttendance implements attendance.AttendanceService. Corrections skip
// the state machine's ordering checks but reuse its working-time formula, and
// lateness is re-evaluated when the check-in time moves.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.CheckInTime != nil {
		t, err := parseTimestamp(*req.CheckInTime)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.CheckInTime = &t

		emp, err := s.EmployeeRepository.GetByID(ctx, att.EmployeeID)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		late, lateMinutes, err := EvaluateLateness(emp.PredefinedCheckInTime, t)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.LateCheckIn = late
		att.LateMinutes = lateMinutes
	}

	if req.CheckOutTime != nil {
		t, err := parseTimestamp(*req.CheckOutTime)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		att.CheckOutTime = &t
	}

	if req.TotalRecessDurationMS != nil {
		att.TotalRecessDuration = time.Duration(*req.TotalRecessDurationMS) * time.Millisecond
	}

	if att.CheckInTime != nil && att.CheckOutTime != nil {
		working := att.CheckOutTime.Sub(*att.CheckInTime) - att.TotalRecessDuration
		if working < 0 {
			working = 0
		}
		att.TotalWorkingTime = working
		att.IsRecess = false
		att.RecessStartTime = nil
		att.CurrentStatus = attendance.StatusCheckedOut
	}

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(att), nil
}

// ListLateCheckIns implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListLateCheckIns(ctx context.Context, filter attendance.LateCheckInFilter) ([]attendance.LateCheckInResponse, error) {
	records, err := s.LateCheckInRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.LateCheckInResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, attendance.LateCheckInResponse{
			ID:                    rec.ID,
			EmployeeID:            rec.EmployeeID,
			EmployeeName:          rec.EmployeeName,
			EmployeeEmail:         rec.EmployeeEmail,
			Date:                  timeutil.FormatDMY(rec.Date),
			LateByMinutes:         rec.LateByMinutes,
			PredefinedCheckInTime: rec.PredefinedCheckInTime,
			ActualCheckInTime:     rec.ActualCheckInTime.Format("2006-01-02 15:04:05"),
		})
	}

	return result, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse timestamp %q", s)
}
