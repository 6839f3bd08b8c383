package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/peopledesk/hrops-backend-go/internal/domain/leave"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/email"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	email email.EmailService
}

func NewLeaveService(leaveRepo leave.LeaveRepository, emailService email.EmailService) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepo,
		email:           emailService,
	}
}

func toLeaveResponse(lv leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:            lv.ID,
		EmployeeID:    lv.EmployeeID,
		EmployeeEmail: lv.EmployeeEmail,
		Reason:        lv.Reason,
		Status:        string(lv.Status),
		StartDate:     lv.StartDate.Format("2006-01-02"),
		EndDate:       lv.EndDate.Format("2006-01-02"),
		CreatedAt:     lv.CreatedAt.Format(time.RFC3339),
	}
}

// Create implements leave.LeaveService. The admin notification is best
// effort: a mail failure is logged, not returned, since the request is
// already filed.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID: req.EmployeeID,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	created.EmployeeEmail = req.EmployeeEmail

	if err := s.email.SendLeaveRequest(req.EmployeeEmail, req.Reason, req.StartDate, req.EndDate); err != nil {
		slog.Warn("failed to send leave request notification",
			"leave_id", created.ID, "error", err)
	}

	return toLeaveResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveResponse, error) {
	records, err := s.LeaveRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]leave.LeaveResponse, 0, len(records))
	for _, lv := range records {
		result = append(result, toLeaveResponse(lv))
	}

	return result, nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	records, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]leave.LeaveResponse, 0, len(records))
	for _, lv := range records {
		result = append(result, toLeaveResponse(lv))
	}

	return result, nil
}

// UpdateStatus implements leave.LeaveService. Approvals and rejections mail
// the employee; moving a request back to pending stays silent.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.LeaveRepository.UpdateStatus(ctx, req.ID, leave.LeaveStatus(req.Status))
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if updated.Status == leave.StatusApproved || updated.Status == leave.StatusRejected {
		err := s.email.SendLeaveStatus(
			updated.EmployeeEmail,
			updated.Reason,
			updated.StartDate.Format("2006-01-02"),
			updated.EndDate.Format("2006-01-02"),
			string(updated.Status),
		)
		if err != nil {
			slog.Warn("failed to send leave status notification",
				"leave_id", updated.ID, "error", err)
		}
	}

	return toLeaveResponse(updated), nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.LeaveRepository.Delete(ctx, id)
}
