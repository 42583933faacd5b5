package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/dashboard"
	"github.com/softhouse-dev/backoffice-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetCompanyKPI(w http.ResponseWriter, r *http.Request)
	GetTopEmployees(w http.ResponseWriter, r *http.Request)
	GetProjectProfitability(w http.ResponseWriter, r *http.Request)
	GetProfitTrends(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetCompanyKPI implements DashboardHandler.
func (d *DashboardHandlerImpl) GetCompanyKPI(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	kpi, err := d.dashboardService.GetCompanyKPI(r.Context(), year, month)
	if err != nil {
		slog.Error("GetCompanyKPI service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, kpi)
}

// GetTopEmployees implements DashboardHandler.
func (d *DashboardHandlerImpl) GetTopEmployees(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 5
	}

	ranking, err := d.dashboardService.GetTopEmployees(r.Context(), year, month, limit)
	if err != nil {
		slog.Error("GetTopEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, ranking)
}

// GetProjectProfitability implements DashboardHandler.
func (d *DashboardHandlerImpl) GetProjectProfitability(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	projects, err := d.dashboardService.GetProjectProfitability(r.Context(), year, month)
	if err != nil {
		slog.Error("GetProjectProfitability service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// GetProfitTrends implements DashboardHandler.
func (d *DashboardHandlerImpl) GetProfitTrends(w http.ResponseWriter, r *http.Request) {
	months, err := strconv.Atoi(r.URL.Query().Get("months"))
	if err != nil || months < 1 {
		months = 6
	}

	trends, err := d.dashboardService.GetProfitTrends(r.Context(), months)
	if err != nil {
		slog.Error("GetProfitTrends service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, trends)
}
