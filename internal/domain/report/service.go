package report

import "context"

type ReportService interface {
	GetMonthlyReport(ctx context.Context, employeeID string, year, month int) (MonthlyReportResponse, error)
	ListMonthlyReports(ctx context.Context, year, month int) ([]MonthlyReportResponse, error)
	SaveMonthlyHours(ctx context.Context, req SaveMonthlyHoursRequest) error
	UpdateActualCost(ctx context.Context, req UpdateActualCostRequest) (MonthlyReportResponse, error)
	PropagateAllChanges(ctx context.Context, year, month int) (PropagateResult, error)
}
