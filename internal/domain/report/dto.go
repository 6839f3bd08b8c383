package report

// DailySummaryRow is one employee's record for the requested day.
// WorkMinutes is null unless both check-in and check-out exist.
type DailySummaryRow struct {
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	EmployeeEmail       string  `json:"employee_email"`
	CheckInTime         *string `json:"check_in_time"`
	CheckOutTime        *string `json:"check_out_time"`
	TotalRecessDuration string  `json:"total_recess_duration"`
	CurrentStatus       string  `json:"current_status"`
	LateCheckIn         bool    `json:"late_check_in"`
	WorkMinutes         *int    `json:"work_minutes"`
}

type MonthlySummaryResponse struct {
	EmployeeID       string                `json:"employee_id"`
	TotalWorkMinutes int                   `json:"total_work_minutes"`
	Records          []MonthlySummaryRow   `json:"records"`
}

type MonthlySummaryRow struct {
	Date        string `json:"date"`
	WorkMinutes int    `json:"work_minutes"`
}

type RosterEntry struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type PresenceResponse struct {
	Present []RosterEntry `json:"present,omitempty"`
	Absent  []RosterEntry `json:"absent,omitempty"`
}

type AbsentDate struct {
	Date          string `json:"date"`           // ISO form
	FormattedDate string `json:"formatted_date"` // dd-mm-yyyy wire form
}

// AbsenteeDeductionResponse lists an employee's absences in a range and the
// resulting salary deduction. Money fields are two-decimal strings.
type AbsenteeDeductionResponse struct {
	EmployeeID       string       `json:"employee_id"`
	EmployeeName     string       `json:"employee_name"`
	BaseSalary       string       `json:"base_salary"`
	DailySalary      string       `json:"daily_salary"`
	TotalDaysInMonth int          `json:"total_days_in_month"`
	TotalAbsents     int          `json:"total_absents"`
	TotalDeduction   string       `json:"total_deduction"`
	AbsentDates      []AbsentDate `json:"absent_dates"`
}

type HalfDayDetail struct {
	Date          string `json:"date"`
	FormattedDate string `json:"formatted_date"`
	HoursWorked   string `json:"hours_worked"` // two decimals
	IsHalfDay     bool   `json:"is_half_day"`
}

type HalfDayResponse struct {
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	BaseSalary       string          `json:"base_salary"`
	DailySalary      string          `json:"daily_salary"`
	TotalDaysInMonth int             `json:"total_days_in_month"`
	TotalHalfDays    int             `json:"total_half_days"`
	TotalDeduction   string          `json:"total_deduction"`
	HalfDays         []HalfDayDetail `json:"half_days"`
	AllDays          []HalfDayDetail `json:"all_days"`
}
