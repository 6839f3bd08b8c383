package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/hrops-backend-go/internal/domain/leave"
	"github.com/peopledesk/hrops-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, email, err := accountFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.EmployeeID = employeeID
	createReq.EmployeeEmail = email

	result, err := h.leaveService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create leave service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request created", "leave_id", result.ID, "employee_id", employeeID)
	response.Created(w, "Leave request submitted", result)
}

// List implements LeaveHandler. Admin view of every request.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.List(r.Context())
	if err != nil {
		slog.Error("List leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := accountFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("List own leaves service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var updateReq leave.UpdateLeaveStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update leave status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	result, err := h.leaveService.UpdateStatus(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update leave status service error", "leave_id", updateReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave status updated", "leave_id", updateReq.ID, "status", result.Status)
	response.SuccessWithMessage(w, "Leave status updated", result)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete leave service error", "leave_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request deleted", "leave_id", id)
	response.SuccessWithMessage(w, "Leave request deleted", nil)
}
