package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // HR admin - manages employees, salaries, holidays
	RoleEmployee Role = "employee" // Regular employee
)

// Account is the unified identity record. Admins and employees live in one
// table distinguished by the role tag, so lookups never need to try two
// collections.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the account holds the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ValidRole reports whether r is a known role tag.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleEmployee
}
