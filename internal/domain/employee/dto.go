package employee

import (
	"github.com/peopledesk/hrops-backend-go/internal/pkg/validator"
)

type UpdateEmployeeRequest struct {
	ID                    string  `json:"-"`
	Name                  *string `json:"name"`
	PhoneNumber           *string `json:"phone_number"`
	JobRole               *string `json:"job_role"`
	JoinedDate            *string `json:"joined_date"`
	BankName              *string `json:"bank_name"`
	BankBranch            *string `json:"bank_branch"`
	BankAccountNumber     *string `json:"bank_account_number"`
	Address               *string `json:"address"`
	City                  *string `json:"city"`
	State                 *string `json:"state"`
	PinCode               *string `json:"pin_code"`
	PredefinedCheckInTime *string `json:"predefined_check_in_time"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "invalid employee ID format",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.JoinedDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinedDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joined_date",
				Message: "joined_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PredefinedCheckInTime != nil && !validator.IsValidClockTime(*r.PredefinedCheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "predefined_check_in_time",
			Message: "predefined_check_in_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	PhoneNumber           string  `json:"phone_number"`
	JobRole               *string `json:"job_role,omitempty"`
	JoinedDate            *string `json:"joined_date,omitempty"`
	PredefinedCheckInTime string  `json:"predefined_check_in_time"`
}
