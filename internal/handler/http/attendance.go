package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/hrops-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hrops-backend-go/internal/domain/report"
	"github.com/peopledesk/hrops-backend-go/internal/handler/http/response"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/timeutil"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	StartRecess(w http.ResponseWriter, r *http.Request)
	EndRecess(w http.ResponseWriter, r *http.Request)
	CurrentStatus(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ListLateCheckIns(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := accountFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), employeeID)
	if err != nil {
		slog.Error("CheckIn service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked in", "employee_id", employeeID, "late_by_minutes", result.LateByMinutes)
	response.Created(w, result.LateCheckIn, result)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := accountFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), employeeID)
	if err != nil {
		slog.Error("CheckOut service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked out", "employee_id", employeeID, "total_working_time", result.TotalWorkingTime)
	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// StartRecess implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StartRecess(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := accountFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.StartRecess(r.Context(), employeeID)
	if err != nil {
		slog.Error("StartRecess service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recess started", result)
}

// EndRecess implements AttendanceHandler.
func (h *AttendanceHandlerImpl) EndRecess(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := accountFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.EndRecess(r.Context(), employeeID)
	if err != nil {
		slog.Error("EndRecess service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recess ended", result)
}

// CurrentStatus implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CurrentStatus(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := accountFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CurrentStatus(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AttendanceHandler. Admin correction path.
func (h *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq attendance.UpdateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update attendance validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.UpdateAttendance(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update attendance service error", "attendance_id", updateReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance record updated", "attendance_id", updateReq.ID)
	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// ListLateCheckIns implements AttendanceHandler. Optional query filters:
// employee_id, start_date and end_date (dd-mm-yyyy).
func (h *AttendanceHandlerImpl) ListLateCheckIns(w http.ResponseWriter, r *http.Request) {
	var filter attendance.LateCheckInFilter

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if startDMY := r.URL.Query().Get("start_date"); startDMY != "" {
		start, err := timeutil.ParseDMY(startDMY)
		if err != nil {
			response.HandleError(w, report.ErrInvalidDateRange)
			return
		}
		filter.StartDate = &start
	}
	if endDMY := r.URL.Query().Get("end_date"); endDMY != "" {
		end, err := timeutil.ParseDMY(endDMY)
		if err != nil {
			response.HandleError(w, report.ErrInvalidDateRange)
			return
		}
		filter.EndDate = &end
	}

	result, err := h.attendanceService.ListLateCheckIns(r.Context(), filter)
	if err != nil {
		slog.Error("ListLateCheckIns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
