package dashboard

import "context"

type DashboardService interface {
	GetCompanyKPI(ctx context.Context, year, month int) (CompanyKPIResponse, error)
	GetTopEmployees(ctx context.Context, year, month, limit int) ([]EmployeeRankingEntry, error)
	GetProjectProfitability(ctx context.Context, year, month int) ([]ProjectProfitabilityEntry, error)
	GetProfitTrends(ctx context.Context, months int) ([]TrendPoint, error)
}
