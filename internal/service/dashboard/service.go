package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/dashboard"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/employee"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/fixedcost"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/project"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/report"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/timesheet"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"
	reportService "github.com/softhouse-dev/backoffice-backend-go/internal/service/report"
)

type DashboardServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	reportRepo    report.ReportRepository
	timesheetRepo timesheet.TimesheetRepository
	fixedCostRepo fixedcost.FixedCostRepository
	projectRepo   project.ProjectRepository
	reconciler    *reportService.Reconciler
	now           func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	reportRepo report.ReportRepository,
	timesheetRepo timesheet.TimesheetRepository,
	fixedCostRepo fixedcost.FixedCostRepository,
	projectRepo project.ProjectRepository,
	reconciler *reportService.Reconciler,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:  employeeRepo,
		reportRepo:    reportRepo,
		timesheetRepo: timesheetRepo,
		fixedCostRepo: fixedCostRepo,
		projectRepo:   projectRepo,
		reconciler:    reconciler,
		now:           time.Now,
	}
}

func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// monthlyFigures resolves every employee's figures for the month,
// snapshot first, live otherwise. Deactivated employees with a saved
// snapshot still count; their history does not disappear with them.
func (s *DashboardServiceImpl) monthlyFigures(ctx context.Context, companyID string, year, month int) ([]report.MonthlyFigures, map[string]string, error) {
	snapshots, err := s.reportRepo.ListSnapshots(ctx, companyID, year, month)
	if err != nil {
		return nil, nil, err
	}

	names := make(map[string]string)
	figures := make([]report.MonthlyFigures, 0, len(snapshots))
	snapshotted := make(map[string]struct{}, len(snapshots))
	for _, snapshot := range snapshots {
		snapshotted[snapshot.EmployeeID] = struct{}{}
		figures = append(figures, s.reconciler.FromSnapshot(snapshot))
		if snapshot.EmployeeName != nil {
			names[snapshot.EmployeeID] = *snapshot.EmployeeName
		}
	}

	employees, err := s.employeeRepo.ListByCompany(ctx, companyID, true)
	if err != nil {
		return nil, nil, err
	}
	for _, emp := range employees {
		names[emp.ID] = emp.FullName
		if _, ok := snapshotted[emp.ID]; ok {
			continue
		}
		entries, err := s.timesheetRepo.ListEmployeeMonthEntries(ctx, companyID, emp.ID, year, month)
		if err != nil {
			return nil, nil, err
		}
		figures = append(figures, s.reconciler.FromLive(emp, entries))
	}
	return figures, names, nil
}

func (s *DashboardServiceImpl) companyKPI(ctx context.Context, companyID string, year, month int) (dashboard.CompanyKPIResponse, error) {
	var (
		figures []report.MonthlyFigures
		costs   []fixedcost.FixedCost
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		figures, _, err = s.monthlyFigures(gCtx, companyID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		costs, err = s.fixedCostRepo.ListByCompany(gCtx, companyID, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.CompanyKPIResponse{}, err
	}

	var totalRevenue, employeeCosts int64
	for _, f := range figures {
		totalRevenue += f.Revenue
		employeeCosts += f.Cost
	}
	var fixedCosts int64
	for _, cost := range costs {
		fixedCosts += cost.MonthlyEquivalent()
	}

	operatingProfit := totalRevenue - employeeCosts - fixedCosts
	var margin float64
	if totalRevenue != 0 {
		margin = round2(float64(operatingProfit) / float64(totalRevenue) * 100)
	}

	return dashboard.CompanyKPIResponse{
		Year:            year,
		Month:           month,
		TotalRevenue:    totalRevenue,
		EmployeeCosts:   employeeCosts,
		FixedCosts:      fixedCosts,
		OperatingProfit: operatingProfit,
		OperatingMargin: margin,
	}, nil
}

func (s *DashboardServiceImpl) GetCompanyKPI(ctx context.Context, year, month int) (dashboard.CompanyKPIResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return dashboard.CompanyKPIResponse{}, err
	}
	return s.companyKPI(ctx, companyID, year, month)
}

func (s *DashboardServiceImpl) GetTopEmployees(ctx context.Context, year, month, limit int) ([]dashboard.EmployeeRankingEntry, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	figures, names, err := s.monthlyFigures(ctx, companyID, year, month)
	if err != nil {
		return nil, err
	}

	ranking := make([]dashboard.EmployeeRankingEntry, 0, len(figures))
	for _, f := range figures {
		ranking = append(ranking, dashboard.EmployeeRankingEntry{
			EmployeeID:   f.EmployeeID,
			EmployeeName: names[f.EmployeeID],
			Revenue:      f.Revenue,
			Cost:         f.Cost,
			Profit:       f.Profit,
			IsSnapshot:   f.IsSnapshot,
		})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Profit != ranking[j].Profit {
			return ranking[i].Profit > ranking[j].Profit
		}
		return ranking[i].EmployeeName < ranking[j].EmployeeName
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}

func (s *DashboardServiceImpl) GetProjectProfitability(ctx context.Context, year, month int) ([]dashboard.ProjectProfitabilityEntry, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var (
		entries  []timesheet.MonthEntry
		projects []project.Project
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.timesheetRepo.ListMonthEntries(gCtx, companyID, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.ListByCompany(gCtx, companyID, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	type projectTotals struct {
		revenue   int64
		cost      int64
		employees map[string]struct{}
	}
	totals := make(map[string]*projectTotals)
	for _, entry := range entries {
		t, ok := totals[entry.ProjectID]
		if !ok {
			t = &projectTotals{employees: make(map[string]struct{})}
			totals[entry.ProjectID] = t
		}
		t.revenue += reportService.EntryAmount(entry.Hours, entry.BillingRate)
		t.cost += reportService.EntryAmount(entry.Hours, entry.CostRate)
		t.employees[entry.EmployeeID] = struct{}{}
	}

	result := make([]dashboard.ProjectProfitabilityEntry, 0, len(totals))
	for _, p := range projects {
		t, ok := totals[p.ID]
		if !ok {
			continue
		}
		profit := t.revenue - t.cost
		var margin float64
		if t.revenue != 0 {
			margin = round2(float64(profit) / float64(t.revenue) * 100)
		}
		result = append(result, dashboard.ProjectProfitabilityEntry{
			ProjectID:     p.ID,
			ProjectName:   p.Name,
			ClientName:    p.ClientName,
			Revenue:       t.revenue,
			Cost:          t.cost,
			Profit:        profit,
			Margin:        margin,
			EmployeeCount: len(t.employees),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Profit != result[j].Profit {
			return result[i].Profit > result[j].Profit
		}
		return result[i].ProjectName < result[j].ProjectName
	})
	return result, nil
}

func (s *DashboardServiceImpl) GetProfitTrends(ctx context.Context, months int) ([]dashboard.TrendPoint, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if months < 1 {
		return nil, validator.ValidationErrors{
			{Field: "months", Message: "must be at least 1"},
		}
	}

	// Anchor at the first of the current month; stepping back from a
	// day that the target month does not have would skip it entirely.
	now := s.now()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	points := make([]dashboard.TrendPoint, months)

	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < months; i++ {
		i := i
		at := anchor.AddDate(0, i-months+1, 0)
		g.Go(func() error {
			kpi, err := s.companyKPI(gCtx, companyID, at.Year(), int(at.Month()))
			if err != nil {
				return err
			}
			points[i] = dashboard.TrendPoint{Year: at.Year(), Month: int(at.Month()), KPI: kpi}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := 1; i < len(points); i++ {
		profitChange := percentChange(points[i-1].KPI.OperatingProfit, points[i].KPI.OperatingProfit)
		revenueChange := percentChange(points[i-1].KPI.TotalRevenue, points[i].KPI.TotalRevenue)
		points[i].ProfitChange = &profitChange
		points[i].RevenueChange = &revenueChange
	}
	return points, nil
}

// percentChange compares a value against the previous month. A zero
// base cannot anchor a ratio, so the result saturates at +/-100. A swing
// from loss to profit is reported against the loss's magnitude so the
// sign stays positive.
func percentChange(previous, current int64) float64 {
	if previous == 0 {
		switch {
		case current > 0:
			return 100
		case current < 0:
			return -100
		default:
			return 0
		}
	}
	if previous < 0 && current > 0 {
		return round2(float64(current-previous) / math.Abs(float64(previous)) * 100)
	}
	return round2(float64(current-previous) / float64(previous) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
