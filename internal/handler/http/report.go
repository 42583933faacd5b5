package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/report"
	"github.com/softhouse-dev/backoffice-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
	ListMonthlyReports(w http.ResponseWriter, r *http.Request)
	SaveMonthlyHours(w http.ResponseWriter, r *http.Request)
	UpdateActualCost(w http.ResponseWriter, r *http.Request)
	PropagateAllChanges(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// GetMonthlyReport implements ReportHandler.
func (h *ReportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	rep, err := h.reportService.GetMonthlyReport(r.Context(), chi.URLParam(r, "employeeID"), year, month)
	if err != nil {
		slog.Error("GetMonthlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// ListMonthlyReports implements ReportHandler.
func (h *ReportHandlerImpl) ListMonthlyReports(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	reports, err := h.reportService.ListMonthlyReports(r.Context(), year, month)
	if err != nil {
		slog.Error("ListMonthlyReports service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

// SaveMonthlyHours implements ReportHandler.
func (h *ReportHandlerImpl) SaveMonthlyHours(w http.ResponseWriter, r *http.Request) {
	var saveReq report.SaveMonthlyHoursRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("SaveMonthlyHours decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.reportService.SaveMonthlyHours(r.Context(), saveReq); err != nil {
		slog.Error("SaveMonthlyHours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly hours saved successfully", nil)
}

// UpdateActualCost implements ReportHandler.
func (h *ReportHandlerImpl) UpdateActualCost(w http.ResponseWriter, r *http.Request) {
	var updateReq report.UpdateActualCostRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateActualCost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.EmployeeID = chi.URLParam(r, "employeeID")

	updated, err := h.reportService.UpdateActualCost(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateActualCost service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Actual cost updated successfully", updated)
}

// PropagateAllChanges implements ReportHandler.
func (h *ReportHandlerImpl) PropagateAllChanges(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	result, err := h.reportService.PropagateAllChanges(r.Context(), year, month)
	if err != nil {
		slog.Error("PropagateAllChanges service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Changes propagated", result)
}
