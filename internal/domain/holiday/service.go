package holiday

import "context"

type HolidayService interface {
	// AddPredefinedHolidays bulk-adds company holidays, skipping duplicates
	AddPredefinedHolidays(ctx context.Context, req AddPredefinedHolidaysRequest) ([]PredefinedHolidayResponse, error)

	// ListPredefinedHolidays returns all company holidays ordered by date
	ListPredefinedHolidays(ctx context.Context) ([]PredefinedHolidayResponse, error)

	DeletePredefinedHoliday(ctx context.Context, id string) error

	// SelectHolidays replaces the employee's selection (max 10 entries)
	SelectHolidays(ctx context.Context, req SelectHolidaysRequest) ([]HolidayEntryResponse, error)

	// GetSelectedHolidays returns the employee's current selection
	GetSelectedHolidays(ctx context.Context, employeeID string) ([]HolidayEntryResponse, error)

	// DeleteCustomHoliday removes one entry from the employee's selection
	DeleteCustomHoliday(ctx context.Context, employeeID string, entryID string) ([]HolidayEntryResponse, error)
}
