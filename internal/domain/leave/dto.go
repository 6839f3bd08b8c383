package leave

import (
	"github.com/peopledesk/hrops-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID    string `json:"-"`
	EmployeeEmail string `json:"-"`
	Reason        string `json:"reason"`
	StartDate     string `json:"start_date"` // "YYYY-MM-DD"
	EndDate       string `json:"end_date"`   // "YYYY-MM-DD"
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	if !validator.IsValidID(r.ID) {
		return validator.ValidationErrors{{
			Field:   "id",
			Message: "invalid leave ID format",
		}}
	}

	if !ValidStatus(LeaveStatus(r.Status)) {
		return ErrInvalidLeaveStatus
	}

	return nil
}

type LeaveResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeEmail string `json:"employee_email"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	CreatedAt     string `json:"created_at"`
}
