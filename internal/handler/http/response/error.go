package response

import (
	"errors"
	"net/http"

	"github.com/peopledesk/hrops-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hrops-backend-go/internal/domain/auth"
	"github.com/peopledesk/hrops-backend-go/internal/domain/employee"
	"github.com/peopledesk/hrops-backend-go/internal/domain/holiday"
	"github.com/peopledesk/hrops-backend-go/internal/domain/leave"
	"github.com/peopledesk/hrops-backend-go/internal/domain/report"
	"github.com/peopledesk/hrops-backend-go/internal/domain/salary"
	"github.com/peopledesk/hrops-backend-go/internal/domain/user"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrEmailNotRegistered):
		Unauthorized(w, "Email not registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Account domain errors
	case errors.Is(err, user.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPhoneExists):
		Conflict(w, "Phone number already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out for today")
	case errors.Is(err, attendance.ErrRecessAlreadyActive):
		Conflict(w, "Recess is already ongoing")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Check in before performing this action", nil)
	case errors.Is(err, attendance.ErrNoActiveRecess):
		BadRequest(w, "No ongoing recess to end", nil)
	case errors.Is(err, attendance.ErrRecessActive):
		BadRequest(w, "End the ongoing recess before checking out", nil)
	case errors.Is(err, attendance.ErrNoRecordToday):
		NotFound(w, "No attendance record found for today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrSelectionLimitExceeded):
		BadRequest(w, "You can select a maximum of 10 holidays", nil)
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Predefined holiday not found")
	case errors.Is(err, holiday.ErrSelectionNotFound):
		NotFound(w, "No selected holidays found for this employee")
	case errors.Is(err, holiday.ErrHolidayEntryNotFound):
		NotFound(w, "Holiday entry not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidLeaveStatus):
		BadRequest(w, "Status must be pending, approved or rejected", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Dates must be dd-mm-yyyy and start must not be after end", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
