package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/hrops-backend-go/internal/domain/holiday"
	"github.com/peopledesk/hrops-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	AddPredefined(w http.ResponseWriter, r *http.Request)
	ListPredefined(w http.ResponseWriter, r *http.Request)
	DeletePredefined(w http.ResponseWriter, r *http.Request)
	Select(w http.ResponseWriter, r *http.Request)
	GetSelected(w http.ResponseWriter, r *http.Request)
	DeleteSelectedEntry(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// AddPredefined implements HolidayHandler.
func (h *HolidayHandlerImpl) AddPredefined(w http.ResponseWriter, r *http.Request) {
	var addReq holiday.AddPredefinedHolidaysRequest

	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("Add predefined holidays decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.holidayService.AddPredefinedHolidays(r.Context(), addReq)
	if err != nil {
		slog.Error("Add predefined holidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Predefined holidays added", "count", len(result))
	response.Created(w, "Predefined holidays added", result)
}

// ListPredefined implements HolidayHandler.
func (h *HolidayHandlerImpl) ListPredefined(w http.ResponseWriter, r *http.Request) {
	result, err := h.holidayService.ListPredefinedHolidays(r.Context())
	if err != nil {
		slog.Error("List predefined holidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeletePredefined implements HolidayHandler.
func (h *HolidayHandlerImpl) DeletePredefined(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.holidayService.DeletePredefinedHoliday(r.Context(), id); err != nil {
		slog.Error("Delete predefined holiday service error", "holiday_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Predefined holiday deleted", "holiday_id", id)
	response.SuccessWithMessage(w, "Predefined holiday deleted", nil)
}

// Select implements HolidayHandler. The submitted list replaces the
// employee's previous selection entirely.
func (h *HolidayHandlerImpl) Select(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := accountFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var selectReq holiday.SelectHolidaysRequest
	if err := json.NewDecoder(r.Body).Decode(&selectReq); err != nil {
		slog.Error("Select holidays decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	selectReq.EmployeeID = employeeID

	result, err := h.holidayService.SelectHolidays(r.Context(), selectReq)
	if err != nil {
		slog.Error("Select holidays service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Holiday selection saved", "employee_id", employeeID, "count", len(result))
	response.SuccessWithMessage(w, "Holiday selection saved", result)
}

// GetSelected implements HolidayHandler.
func (h *HolidayHandlerImpl) GetSelected(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := accountFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.holidayService.GetSelectedHolidays(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteSelectedEntry implements HolidayHandler.
func (h *HolidayHandlerImpl) DeleteSelectedEntry(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := accountFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	entryID := chi.URLParam(r, "entryID")

	result, err := h.holidayService.DeleteCustomHoliday(r.Context(), employeeID, entryID)
	if err != nil {
		slog.Error("Delete holiday entry service error", "employee_id", employeeID, "entry_id", entryID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Holiday entry deleted", "employee_id", employeeID, "entry_id", entryID)
	response.SuccessWithMessage(w, "Holiday entry deleted", result)
}
