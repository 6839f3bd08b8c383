package employee

import "context"

type EmployeeService interface {
	// Get returns one employee's profile
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List returns the full roster (admin)
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Update edits profile fields; absent fields are left untouched
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	Delete(ctx context.Context, id string) error
}
