package leave

import "context"

type LeaveService interface {
	// Create files a leave request and notifies the admin inbox by email
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// List returns all leave requests (admin)
	List(ctx context.Context) ([]LeaveResponse, error)

	// ListByEmployee returns one employee's leave requests
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)

	// UpdateStatus transitions a request; approval and rejection notify the
	// employee by email
	UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveResponse, error)

	Delete(ctx context.Context, id string) error
}
