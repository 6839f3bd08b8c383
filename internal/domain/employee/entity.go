package employee

import "time"

// Employee is the profile attached to an employee-role account. The
// predefined check-in time is the HH:MM reference the lateness evaluator
// measures against.
type Employee struct {
	ID          string // same as the account ID
	Name        string
	Email       string
	PhoneNumber string

	// Professional info
	JobRole    *string
	JoinedDate *time.Time

	// Bank info
	BankName          *string
	BankBranch        *string
	BankAccountNumber *string

	// Address info
	Address *string
	City    *string
	State   *string
	PinCode *string

	PredefinedCheckInTime string // "HH:MM", defaults to "10:00"

	CreatedAt time.Time
	UpdatedAt time.Time
}
