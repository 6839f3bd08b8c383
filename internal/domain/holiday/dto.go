package holiday

import (
	"github.com/peopledesk/hrops-backend-go/internal/pkg/validator"
)

type HolidayInput struct {
	Name string `json:"name"`
	Date string `json:"date"` // "YYYY-MM-DD"
}

type AddPredefinedHolidaysRequest struct {
	Holidays []HolidayInput `json:"holidays"`
}

func (r *AddPredefinedHolidaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Holidays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "holidays",
			Message: "expected a non-empty array of holidays",
		})
	}

	for _, h := range r.Holidays {
		if validator.IsEmpty(h.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "holidays.name",
				Message: "holiday name is required",
			})
			break
		}
		if _, ok := validator.IsValidDate(h.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "holidays.date",
				Message: "holiday date must be in YYYY-MM-DD format",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SelectedHolidayInput struct {
	Name     string `json:"name"`
	Date     string `json:"date"` // "YYYY-MM-DD"
	IsCustom bool   `json:"is_custom"`
}

type SelectHolidaysRequest struct {
	EmployeeID       string                 `json:"-"`
	SelectedHolidays []SelectedHolidayInput `json:"selected_holidays"`
}

func (r *SelectHolidaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(r.SelectedHolidays) > MaxSelectedHolidays {
		// Surfaced as a state error, not a validation error, to match the
		// selection-cap contract
		return ErrSelectionLimitExceeded
	}

	for _, h := range r.SelectedHolidays {
		if validator.IsEmpty(h.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "selected_holidays.name",
				Message: "holiday name is required",
			})
			break
		}
		if _, ok := validator.IsValidDate(h.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "selected_holidays.date",
				Message: "holiday date must be in YYYY-MM-DD format",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PredefinedHolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

type HolidayEntryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	IsCustom bool   `json:"is_custom"`
}
