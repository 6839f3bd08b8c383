package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/hrops-backend-go/internal/domain/report"
	"github.com/peopledesk/hrops-backend-go/internal/handler/http/response"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/clock"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/timeutil"
)

type ReportHandler interface {
	DailySummary(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	PresentList(w http.ResponseWriter, r *http.Request)
	AbsenteeList(w http.ResponseWriter, r *http.Request)
	AbsenteeDeduction(w http.ResponseWriter, r *http.Request)
	HalfDays(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
	clock         clock.Clock
}

func NewReportHandler(reportService report.ReportService, clk clock.Clock) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService, clock: clk}
}

// DailySummary implements ReportHandler. The date query parameter is
// dd-mm-yyyy and defaults to today; format=xlsx switches to a workbook
// download.
func (h *ReportHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	date := h.clock.Now()
	if dateDMY := r.URL.Query().Get("date"); dateDMY != "" {
		parsed, err := timeutil.ParseDMY(dateDMY)
		if err != nil {
			response.HandleError(w, report.ErrInvalidDateRange)
			return
		}
		date = parsed
	}

	if r.URL.Query().Get("format") == "xlsx" {
		workbook, err := h.reportService.DailySummaryXLSX(r.Context(), date)
		if err != nil {
			slog.Error("DailySummaryXLSX service error", "error", err)
			response.HandleError(w, err)
			return
		}

		filename := fmt.Sprintf("daily-summary-%s.xlsx", date.Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(workbook); err != nil {
			slog.Error("DailySummaryXLSX write error", "error", err)
		}
		return
	}

	result, err := h.reportService.DailySummary(r.Context(), date)
	if err != nil {
		slog.Error("DailySummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySummary implements ReportHandler.
func (h *ReportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "month must be a number between 1 and 12", nil)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		response.BadRequest(w, "year must be a positive number", nil)
		return
	}

	result, err := h.reportService.MonthlySummary(r.Context(), employeeID, time.Month(month), year)
	if err != nil {
		slog.Error("MonthlySummary service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PresentList implements ReportHandler.
func (h *ReportHandlerImpl) PresentList(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.PresentList(r.Context(), r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		slog.Error("PresentList service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AbsenteeList implements ReportHandler.
func (h *ReportHandlerImpl) AbsenteeList(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.AbsenteeList(r.Context(), r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		slog.Error("AbsenteeList service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AbsenteeDeduction implements ReportHandler.
func (h *ReportHandlerImpl) AbsenteeDeduction(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.reportService.EmployeeAbsenteeDeduction(r.Context(), employeeID, r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		slog.Error("AbsenteeDeduction service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// HalfDays implements ReportHandler.
func (h *ReportHandlerImpl) HalfDays(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.reportService.EmployeeHalfDays(r.Context(), employeeID, r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		slog.Error("HalfDays service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
