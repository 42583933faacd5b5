package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/employee"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/fixedcost"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/project"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/report"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/timesheet"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"
	reportService "github.com/softhouse-dev/backoffice-backend-go/internal/service/report"
)

const testCompanyID = "company-1"

func adminContext(t *testing.T) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"company_id": testCompanyID,
		"is_admin":   true,
		"type":       "access",
	})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeReportRepo struct {
	snapshots []report.MonthlyEmployeeReport
}

func (f *fakeReportRepo) ListSnapshots(_ context.Context, _ string, year, month int) ([]report.MonthlyEmployeeReport, error) {
	var result []report.MonthlyEmployeeReport
	for _, s := range f.snapshots {
		if s.Year == year && s.Month == month {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeReportRepo) GetSnapshot(context.Context, string, string, int, int) (report.MonthlyEmployeeReport, error) {
	panic("not used")
}

func (f *fakeReportRepo) UpsertSnapshot(context.Context, report.MonthlyEmployeeReport) (report.MonthlyEmployeeReport, error) {
	panic("not used")
}

func (f *fakeReportRepo) UpdateActualCost(context.Context, string, string, int, int, *int64, int64) (report.MonthlyEmployeeReport, error) {
	panic("not used")
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) ListByCompany(_ context.Context, _ string, activeOnly bool) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		if activeOnly && !emp.IsActive {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Create(context.Context, employee.Employee) (employee.Employee, error) {
	panic("not used")
}

func (f *fakeEmployeeRepo) Update(context.Context, employee.Employee) (employee.Employee, error) {
	panic("not used")
}

func (f *fakeEmployeeRepo) GetByID(context.Context, string, string) (employee.Employee, error) {
	panic("not used")
}

func (f *fakeEmployeeRepo) SetActive(context.Context, string, string, bool) error {
	panic("not used")
}

type fakeTimesheetRepo struct {
	employeeEntries map[string][]timesheet.MonthEntry
	companyEntries  []timesheet.MonthEntry
}

func (f *fakeTimesheetRepo) ListEmployeeMonthEntries(_ context.Context, _, employeeID string, _, _ int) ([]timesheet.MonthEntry, error) {
	return f.employeeEntries[employeeID], nil
}

func (f *fakeTimesheetRepo) ListMonthEntries(context.Context, string, int, int) ([]timesheet.MonthEntry, error) {
	return f.companyEntries, nil
}

func (f *fakeTimesheetRepo) Create(context.Context, timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	panic("not used")
}

func (f *fakeTimesheetRepo) Update(context.Context, timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	panic("not used")
}

func (f *fakeTimesheetRepo) GetByID(context.Context, string, string) (timesheet.TimeEntry, error) {
	panic("not used")
}

func (f *fakeTimesheetRepo) Delete(context.Context, string, string) error {
	panic("not used")
}

func (f *fakeTimesheetRepo) ListEmployeeEntries(context.Context, string, string, int, int) ([]timesheet.TimeEntry, error) {
	panic("not used")
}

func (f *fakeTimesheetRepo) ReplaceMonthEntries(context.Context, string, string, int, int, []timesheet.TimeEntry) error {
	panic("not used")
}

type fakeFixedCostRepo struct {
	costs []fixedcost.FixedCost
}

func (f *fakeFixedCostRepo) ListByCompany(_ context.Context, _ string, activeOnly bool) ([]fixedcost.FixedCost, error) {
	var result []fixedcost.FixedCost
	for _, cost := range f.costs {
		if activeOnly && !cost.IsActive {
			continue
		}
		result = append(result, cost)
	}
	return result, nil
}

func (f *fakeFixedCostRepo) Create(context.Context, fixedcost.FixedCost) (fixedcost.FixedCost, error) {
	panic("not used")
}

func (f *fakeFixedCostRepo) Update(context.Context, fixedcost.FixedCost) (fixedcost.FixedCost, error) {
	panic("not used")
}

func (f *fakeFixedCostRepo) GetByID(context.Context, string, string) (fixedcost.FixedCost, error) {
	panic("not used")
}

func (f *fakeFixedCostRepo) Delete(context.Context, string, string) error {
	panic("not used")
}

type fakeProjectRepo struct {
	projects []project.Project
}

func (f *fakeProjectRepo) ListByCompany(context.Context, string, bool) ([]project.Project, error) {
	return f.projects, nil
}

func (f *fakeProjectRepo) Create(context.Context, project.Project) (project.Project, error) {
	panic("not used")
}

func (f *fakeProjectRepo) Update(context.Context, project.Project) (project.Project, error) {
	panic("not used")
}

func (f *fakeProjectRepo) GetByID(context.Context, string, string) (project.Project, error) {
	panic("not used")
}

func (f *fakeProjectRepo) CreateAssignment(context.Context, project.Assignment) (project.Assignment, error) {
	panic("not used")
}

func (f *fakeProjectRepo) UpdateAssignment(context.Context, project.Assignment) (project.Assignment, error) {
	panic("not used")
}

func (f *fakeProjectRepo) GetAssignmentByID(context.Context, string, string) (project.Assignment, error) {
	panic("not used")
}

func (f *fakeProjectRepo) ListAssignmentsByProject(context.Context, string, string, bool) ([]project.Assignment, error) {
	panic("not used")
}

func (f *fakeProjectRepo) ListAssignmentsByEmployee(context.Context, string, string, bool) ([]project.Assignment, error) {
	panic("not used")
}

type fakes struct {
	reports   *fakeReportRepo
	employees *fakeEmployeeRepo
	timesheet *fakeTimesheetRepo
	fixed     *fakeFixedCostRepo
	projects  *fakeProjectRepo
	now       time.Time
}

func newTestService(f fakes) *DashboardServiceImpl {
	if f.reports == nil {
		f.reports = &fakeReportRepo{}
	}
	if f.employees == nil {
		f.employees = &fakeEmployeeRepo{}
	}
	if f.timesheet == nil {
		f.timesheet = &fakeTimesheetRepo{}
	}
	if f.fixed == nil {
		f.fixed = &fakeFixedCostRepo{}
	}
	if f.projects == nil {
		f.projects = &fakeProjectRepo{}
	}
	if f.now.IsZero() {
		f.now = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	}
	return &DashboardServiceImpl{
		employeeRepo:  f.employees,
		reportRepo:    f.reports,
		timesheetRepo: f.timesheet,
		fixedCostRepo: f.fixed,
		projectRepo:   f.projects,
		reconciler:    reportService.NewReconciler(),
		now:           func() time.Time { return f.now },
	}
}

// Snapshots win over live data, a deactivated employee's frozen month
// still counts, and fixed costs enter at their monthly equivalents.
func TestGetCompanyKPI_SnapshotAndLive(t *testing.T) {
	ctx := adminContext(t)
	svc := newTestService(fakes{
		reports: &fakeReportRepo{snapshots: []report.MonthlyEmployeeReport{
			{EmployeeID: "emp-1", Year: 2026, Month: 8, Revenue: 1_400_000, Cost: 1_533_090, Profit: -133_090},
			{EmployeeID: "emp-gone", Year: 2026, Month: 8, Revenue: 100_000, Cost: 50_000, Profit: 50_000},
		}},
		employees: &fakeEmployeeRepo{employees: []employee.Employee{
			{ID: "emp-1", FullName: "Jan Kowalski", MonthlyCostTotal: 2_000_000, IsActive: true},
			{ID: "emp-2", FullName: "Anna Nowak", MonthlyCostTotal: 1_000_000, IsActive: true},
		}},
		timesheet: &fakeTimesheetRepo{employeeEntries: map[string][]timesheet.MonthEntry{
			"emp-2": {{EmployeeID: "emp-2", Hours: 10_000, BillingRate: 12_000}},
		}},
		fixed: &fakeFixedCostRepo{costs: []fixedcost.FixedCost{
			{Name: "office", Amount: 50_000, Frequency: fixedcost.FrequencyMonthly, IsActive: true},
			{Name: "insurance", Amount: 1_200_000, Frequency: fixedcost.FrequencyYearly, IsActive: true},
			{Name: "laptop", Amount: 999_999, Frequency: fixedcost.FrequencyOneTime, IsActive: true},
			{Name: "cancelled", Amount: 1_000_000, Frequency: fixedcost.FrequencyMonthly, IsActive: false},
		}},
	})

	kpi, err := svc.GetCompanyKPI(ctx, 2026, 8)

	require.NoError(t, err)
	// emp-1 snapshot + emp-gone snapshot + emp-2 live (10,000 hundredth
	// hours at 12,000/h = 1,200,000).
	assert.Equal(t, int64(2_700_000), kpi.TotalRevenue)
	// Snapshot costs frozen; emp-1's raised live cost is ignored.
	assert.Equal(t, int64(2_583_090), kpi.EmployeeCosts)
	// 50,000 monthly + 1,200,000/12; one-time and inactive contribute 0.
	assert.Equal(t, int64(150_000), kpi.FixedCosts)
	assert.Equal(t, int64(-33_090), kpi.OperatingProfit)
	assert.Equal(t, -1.23, kpi.OperatingMargin)
}

func TestGetTopEmployees_RanksByProfitAndLimits(t *testing.T) {
	ctx := adminContext(t)
	svc := newTestService(fakes{
		employees: &fakeEmployeeRepo{employees: []employee.Employee{
			{ID: "emp-a", FullName: "Adam Lis", MonthlyCostTotal: 1_000_000, IsActive: true},
			{ID: "emp-b", FullName: "Beata Maj", MonthlyCostTotal: 1_000_000, IsActive: true},
			{ID: "emp-c", FullName: "Cezary Kos", MonthlyCostTotal: 1_000_000, IsActive: true},
		}},
		timesheet: &fakeTimesheetRepo{employeeEntries: map[string][]timesheet.MonthEntry{
			"emp-a": {{EmployeeID: "emp-a", Hours: 10_000, BillingRate: 15_000}},
			"emp-b": {{EmployeeID: "emp-b", Hours: 10_000, BillingRate: 13_000}},
			"emp-c": {{EmployeeID: "emp-c", Hours: 10_000, BillingRate: 13_000}},
		}},
	})

	ranking, err := svc.GetTopEmployees(ctx, 2026, 8, 2)

	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, "Adam Lis", ranking[0].EmployeeName)
	assert.Equal(t, int64(500_000), ranking[0].Profit)
	// Profit tie between Beata and Cezary breaks alphabetically.
	assert.Equal(t, "Beata Maj", ranking[1].EmployeeName)
	assert.Equal(t, int64(300_000), ranking[1].Profit)
}

func TestGetProjectProfitability(t *testing.T) {
	ctx := adminContext(t)
	svc := newTestService(fakes{
		timesheet: &fakeTimesheetRepo{companyEntries: []timesheet.MonthEntry{
			{EmployeeID: "emp-1", ProjectID: "proj-1", Hours: 10_000, BillingRate: 15_000, CostRate: 10_000},
			{EmployeeID: "emp-2", ProjectID: "proj-1", Hours: 5_000, BillingRate: 12_000, CostRate: 8_000},
			{EmployeeID: "emp-1", ProjectID: "proj-2", Hours: 2_000, BillingRate: 20_000, CostRate: 10_000},
		}},
		projects: &fakeProjectRepo{projects: []project.Project{
			{ID: "proj-1", Name: "Platform", ClientName: "Acme"},
			{ID: "proj-2", Name: "Audit", ClientName: "Beta"},
			{ID: "proj-idle", Name: "Paused", ClientName: "Gamma"},
		}},
	})

	result, err := svc.GetProjectProfitability(ctx, 2026, 8)

	require.NoError(t, err)
	// Projects with no entries this month are omitted.
	require.Len(t, result, 2)

	assert.Equal(t, "Platform", result[0].ProjectName)
	assert.Equal(t, int64(2_100_000), result[0].Revenue)
	assert.Equal(t, int64(1_400_000), result[0].Cost)
	assert.Equal(t, int64(700_000), result[0].Profit)
	assert.Equal(t, 33.33, result[0].Margin)
	assert.Equal(t, 2, result[0].EmployeeCount)

	assert.Equal(t, "Audit", result[1].ProjectName)
	assert.Equal(t, int64(200_000), result[1].Profit)
	assert.Equal(t, 50.0, result[1].Margin)
	assert.Equal(t, 1, result[1].EmployeeCount)
}

// A trailing window computed on July 31st must still yield June then
// July; stepping back a month from a day June does not have would
// otherwise land in July twice.
func TestGetProfitTrends_MonthEndStaysChronological(t *testing.T) {
	ctx := adminContext(t)
	svc := newTestService(fakes{now: time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)})

	points, err := svc.GetProfitTrends(ctx, 2)

	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 2026, points[0].Year)
	assert.Equal(t, 6, points[0].Month)
	assert.Equal(t, 2026, points[1].Year)
	assert.Equal(t, 7, points[1].Month)

	assert.Nil(t, points[0].ProfitChange)
	require.NotNil(t, points[1].ProfitChange)
	assert.Equal(t, 0.0, *points[1].ProfitChange)
}

func TestGetProfitTrends_CrossesYearBoundary(t *testing.T) {
	ctx := adminContext(t)
	svc := newTestService(fakes{now: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)})

	points, err := svc.GetProfitTrends(ctx, 3)

	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 2025, points[0].Year)
	assert.Equal(t, 11, points[0].Month)
	assert.Equal(t, 2025, points[1].Year)
	assert.Equal(t, 12, points[1].Month)
	assert.Equal(t, 2026, points[2].Year)
	assert.Equal(t, 1, points[2].Month)
}

func TestGetProfitTrends_RejectsNonPositiveWindow(t *testing.T) {
	ctx := adminContext(t)
	svc := newTestService(fakes{})

	_, err := svc.GetProfitTrends(ctx, 0)

	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "months")
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name     string
		previous int64
		current  int64
		want     float64
	}{
		{"normal growth", 1_000_00, 1_250_00, 25},
		{"normal decline", 1_000_00, 750_00, -25},
		{"no change", 1_000_00, 1_000_00, 0},
		{"zero base to profit saturates", 0, 150_00, 100},
		{"zero base to loss saturates", 0, -150_00, -100},
		{"zero to zero", 0, 0, 0},
		{"loss to profit stays positive", -500_00, 500_00, 200},
		{"deepening loss", -500_00, -750_00, 50},
		{"shrinking loss", -500_00, -250_00, -50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, percentChange(tc.previous, tc.current))
		})
	}
}

func TestPercentChange_Rounding(t *testing.T) {
	// 1/3 growth rounds to two decimal places
	assert.Equal(t, 33.33, percentChange(300, 400))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, round2(33.3333))
	assert.Equal(t, -12.5, round2(-12.5))
}
