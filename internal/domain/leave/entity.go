package leave

import "time"

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

// ValidStatus reports whether s is a known leave status.
func ValidStatus(s LeaveStatus) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Leave struct {
	ID            string
	EmployeeID    string
	EmployeeEmail string
	Reason        string
	Status        LeaveStatus
	StartDate     time.Time
	EndDate       time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
