package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID returns the full profile including the predefined check-in time
	GetByID(ctx context.Context, id string) (Employee, error)

	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List returns the full employee roster
	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, employee Employee) error

	Delete(ctx context.Context, id string) error
}
