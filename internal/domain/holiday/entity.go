package holiday

import "time"

// PredefinedHoliday is a company-wide holiday offered for selection.
type PredefinedHoliday struct {
	ID        string
	Name      string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaxSelectedHolidays caps how many holidays one employee may select.
const MaxSelectedHolidays = 10

// SelectedHoliday is an employee's chosen holiday list. Selected dates are
// excluded from absence counting.
type SelectedHoliday struct {
	ID         string
	EmployeeID string
	Entries    []HolidayEntry
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type HolidayEntry struct {
	ID       string
	Name     string
	Date     time.Time
	IsCustom bool // true when not taken from the predefined list
}
