package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, leave Leave) (Leave, error)

	GetByID(ctx context.Context, id string) (Leave, error)

	// List returns all leave requests, newest first (admin view)
	List(ctx context.Context) ([]Leave, error)

	// ListByEmployee returns one employee's leave requests
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)

	UpdateStatus(ctx context.Context, id string, status LeaveStatus) (Leave, error)

	Delete(ctx context.Context, id string) error
}
