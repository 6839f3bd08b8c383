package holiday

import (
	"context"
	"time"
)

type PredefinedHolidayRepository interface {
	Create(ctx context.Context, h PredefinedHoliday) (PredefinedHoliday, error)

	// Exists reports whether a holiday with the same name and date is
	// already stored; duplicates are skipped on bulk add
	Exists(ctx context.Context, name string, date time.Time) (bool, error)

	// List returns all predefined holidays ordered by date
	List(ctx context.Context) ([]PredefinedHoliday, error)

	Delete(ctx context.Context, id string) error
}

type SelectedHolidayRepository interface {
	// Upsert replaces the employee's selection, creating the record when
	// none exists
	Upsert(ctx context.Context, selection SelectedHoliday) (SelectedHoliday, error)

	// GetByEmployee returns the employee's current selection
	GetByEmployee(ctx context.Context, employeeID string) (SelectedHoliday, error)
}
