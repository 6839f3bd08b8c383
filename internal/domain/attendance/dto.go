package attendance

import (
	"github.com/peopledesk/hrops-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        *string `json:"employee_name,omitempty"`
	EmployeeEmail       *string `json:"employee_email,omitempty"`
	Date                string  `json:"date"`
	CheckInTime         *string `json:"check_in_time"`
	CheckOutTime        *string `json:"check_out_time"`
	IsRecess            bool    `json:"is_recess"`
	RecessStartTime     *string `json:"recess_start_time,omitempty"`
	TotalRecessDuration string  `json:"total_recess_duration"`
	TotalWorkingMinutes int     `json:"total_working_minutes"`
	LateCheckIn         bool    `json:"late_check_in"`
	CurrentStatus       string  `json:"current_status"`
}

type CheckInResponse struct {
	Attendance    AttendanceResponse `json:"attendance"`
	LateCheckIn   string             `json:"late_check_in"` // "Late by N minutes" or "On time"
	LateByMinutes int                `json:"late_by_minutes"`
}

type CheckOutResponse struct {
	Attendance       AttendanceResponse `json:"attendance"`
	TotalWorkingTime string             `json:"total_working_time"` // "H hours M minutes"
}

// StatusResponse carries the live view of today's session. Duration figures
// are formatted H/M/S strings; formatting is a pure function of the stored
// millisecond durations.
type StatusResponse struct {
	Status              string  `json:"status"`
	CheckInTime         *string `json:"check_in_time"`
	CheckOutTime        *string `json:"check_out_time"`
	RecessStartTime     *string `json:"recess_start_time"`
	TotalRecessDuration string  `json:"total_recess_duration"`
	LiveWorkingTime     string  `json:"live_working_time"`
	LateCheckIn         bool    `json:"late_check_in"`
}

// UpdateAttendanceRequest is the admin correction surface. It bypasses the
// state machine's ordering checks and triggers a working-time recompute.
type UpdateAttendanceRequest struct {
	ID                    string  `json:"-"`
	CheckInTime           *string `json:"check_in_time"`            // ISO8601
	CheckOutTime          *string `json:"check_out_time"`           // ISO8601
	TotalRecessDurationMS *int64  `json:"total_recess_duration_ms"` // whole milliseconds
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "invalid attendance ID format",
		})
	}

	if r.CheckInTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be an ISO8601 timestamp",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be an ISO8601 timestamp",
			})
		}
	}

	if r.TotalRecessDurationMS != nil && *r.TotalRecessDurationMS < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_recess_duration_ms",
			Message: "total_recess_duration_ms must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// LATE CHECK-IN DTOs
// ========================================

type LateCheckInResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	EmployeeName          *string `json:"employee_name,omitempty"`
	EmployeeEmail         *string `json:"employee_email,omitempty"`
	Date                  string  `json:"date"`
	LateByMinutes         int     `json:"late_by_minutes"`
	PredefinedCheckInTime string  `json:"predefined_check_in_time"`
	ActualCheckInTime     string  `json:"actual_check_in_time"`
}
