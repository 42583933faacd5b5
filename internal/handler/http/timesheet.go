package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/timesheet"
	"github.com/softhouse-dev/backoffice-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListForEmployeeMonth(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Create implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq timesheet.CreateTimeEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create time entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := t.timesheetService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create time entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created successfully", created)
}

// Update implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq timesheet.UpdateTimeEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update time entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := t.timesheetService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update time entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated successfully", updated)
}

// Delete implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := t.timesheetService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete time entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted successfully", nil)
}

// ListForEmployeeMonth implements TimesheetHandler.
func (t *TimesheetHandlerImpl) ListForEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	entries, err := t.timesheetService.ListForEmployeeMonth(r.Context(), chi.URLParam(r, "employeeID"), year, month)
	if err != nil {
		slog.Error("ListForEmployeeMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// yearMonthParams reads the mandatory year and month query parameters.
func yearMonthParams(r *http.Request) (int, int, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, err
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
