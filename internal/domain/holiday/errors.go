package holiday

import "errors"

var (
	ErrHolidayNotFound        = errors.New("predefined holiday not found")
	ErrSelectionNotFound      = errors.New("no selected holidays found for this employee")
	ErrSelectionLimitExceeded = errors.New("you can select a maximum of 10 holidays")
	ErrHolidayEntryNotFound   = errors.New("holiday entry not found")
)
