package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/hrops-backend-go/internal/domain/salary"
	"github.com/peopledesk/hrops-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	AddWithDeductions(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetDeductions(w http.ResponseWriter, r *http.Request)
	LateCheckInDeduction(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// Add implements SalaryHandler.
func (h *SalaryHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var addReq salary.AddSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("Add salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := addReq.Validate(); err != nil {
		slog.Error("Add salary validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.AddSalary(r.Context(), addReq)
	if err != nil {
		slog.Error("Add salary service error", "employee_id", addReq.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary record created", "salary_id", result.ID, "employee_id", result.EmployeeID)
	response.Created(w, "Salary record created", result)
}

// AddWithDeductions implements SalaryHandler.
func (h *SalaryHandlerImpl) AddWithDeductions(w http.ResponseWriter, r *http.Request) {
	var addReq salary.AddSalaryWithDeductionsRequest

	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("Add salary with deductions decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := addReq.Validate(); err != nil {
		slog.Error("Add salary with deductions validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.AddSalaryWithDeductions(r.Context(), addReq)
	if err != nil {
		slog.Error("Add salary with deductions service error", "employee_id", addReq.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary record with deductions created", "salary_id", result.ID, "employee_id", result.EmployeeID)
	response.Created(w, "Salary record created with deductions applied", result)
}

// List implements SalaryHandler.
func (h *SalaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.List(r.Context())
	if err != nil {
		slog.Error("List salaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee implements SalaryHandler.
func (h *SalaryHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.salaryService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("List salaries by employee service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SalaryHandler.
func (h *SalaryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq salary.UpdateSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update salary validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update salary service error", "salary_id", updateReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary record updated", "salary_id", updateReq.ID)
	response.SuccessWithMessage(w, "Salary record updated", result)
}

// Delete implements SalaryHandler.
func (h *SalaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.salaryService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete salary service error", "salary_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary record deleted", "salary_id", id)
	response.SuccessWithMessage(w, "Salary record deleted", nil)
}

// GetDeductions implements SalaryHandler.
func (h *SalaryHandlerImpl) GetDeductions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.salaryService.GetDeductions(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LateCheckInDeduction implements SalaryHandler. Month and year arrive as
// query parameters and default to the current month.
func (h *SalaryHandlerImpl) LateCheckInDeduction(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		parsed, err := strconv.Atoi(monthParam)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "month must be a number between 1 and 12", nil)
			return
		}
		month = parsed
	}
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "year must be a positive number", nil)
			return
		}
		year = parsed
	}

	result, err := h.salaryService.LateCheckInDeduction(r.Context(), employeeID, time.Month(month), year)
	if err != nil {
		slog.Error("LateCheckInDeduction service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
