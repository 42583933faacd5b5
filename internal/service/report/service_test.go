package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/employee"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/report"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/timesheet"
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
	snapshots map[string]report.MonthlyEmployeeReport
	upserts   int
}

func snapshotKey(employeeID string, year, month int) string {
	return fmt.Sprintf("%s/%d/%d", employeeID, year, month)
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{snapshots: make(map[string]report.MonthlyEmployeeReport)}
}

func (f *fakeReportRepo) GetSnapshot(_ context.Context, _, employeeID string, year, month int) (report.MonthlyEmployeeReport, error) {
	s, ok := f.snapshots[snapshotKey(employeeID, year, month)]
	if !ok {
		return report.MonthlyEmployeeReport{}, report.ErrReportNotFound
	}
	return s, nil
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

func (f *fakeReportRepo) UpsertSnapshot(_ context.Context, snapshot report.MonthlyEmployeeReport) (report.MonthlyEmployeeReport, error) {
	f.upserts++
	f.snapshots[snapshotKey(snapshot.EmployeeID, snapshot.Year, snapshot.Month)] = snapshot
	return snapshot, nil
}

func (f *fakeReportRepo) UpdateActualCost(_ context.Context, _, employeeID string, year, month int, actualCost *int64, profit int64) (report.MonthlyEmployeeReport, error) {
	key := snapshotKey(employeeID, year, month)
	s, ok := f.snapshots[key]
	if !ok {
		return report.MonthlyEmployeeReport{}, report.ErrReportNotFound
	}
	s.ActualCost = actualCost
	s.Profit = profit
	f.snapshots[key] = s
	return s, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id, _ string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
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

func (f *fakeEmployeeRepo) SetActive(context.Context, string, string, bool) error {
	panic("not used")
}

type fakeTimesheetRepo struct {
	monthEntries map[string][]timesheet.MonthEntry
}

func (f *fakeTimesheetRepo) ListEmployeeMonthEntries(_ context.Context, _, employeeID string, year, month int) ([]timesheet.MonthEntry, error) {
	return f.monthEntries[snapshotKey(employeeID, year, month)], nil
}

func (f *fakeTimesheetRepo) ListMonthEntries(context.Context, string, int, int) ([]timesheet.MonthEntry, error) {
	panic("not used")
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

func newTestService(reportRepo *fakeReportRepo, employeeRepo *fakeEmployeeRepo, timesheetRepo *fakeTimesheetRepo) report.ReportService {
	return NewReportService(nil, reportRepo, employeeRepo, timesheetRepo, nil, NewReconciler())
}

func TestGetMonthlyReport_PrefersSnapshot(t *testing.T) {
	ctx := adminContext(t)
	reportRepo := newFakeReportRepo()
	reportRepo.snapshots[snapshotKey("emp-1", 2026, 8)] = report.MonthlyEmployeeReport{
		EmployeeID: "emp-1", Year: 2026, Month: 8,
		Hours: 16_000, Revenue: 1_400_000, Cost: 1_533_090, Profit: -133_090,
	}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Jan Kowalski", MonthlyCostTotal: 2_000_000, IsActive: true},
	}}
	svc := newTestService(reportRepo, employeeRepo, &fakeTimesheetRepo{})

	resp, err := svc.GetMonthlyReport(ctx, "emp-1", 2026, 8)

	require.NoError(t, err)
	assert.True(t, resp.IsSnapshot)
	assert.Equal(t, int64(1_533_090), resp.Cost)
}

func TestGetMonthlyReport_FallsBackToLive(t *testing.T) {
	ctx := adminContext(t)
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Jan Kowalski", MonthlyCostTotal: 1_533_090, IsActive: true},
	}}
	timesheetRepo := &fakeTimesheetRepo{monthEntries: map[string][]timesheet.MonthEntry{
		snapshotKey("emp-1", 2026, 8): {
			{EmployeeID: "emp-1", Hours: 16_000, BillingRate: 10_000},
		},
	}}
	svc := newTestService(newFakeReportRepo(), employeeRepo, timesheetRepo)

	resp, err := svc.GetMonthlyReport(ctx, "emp-1", 2026, 8)

	require.NoError(t, err)
	assert.False(t, resp.IsSnapshot)
	assert.Equal(t, int64(1_600_000), resp.Revenue)
	assert.Equal(t, int64(1_533_090), resp.Cost)
	assert.Equal(t, int64(66_910), resp.Profit)
}

func TestUpdateActualCost_RewritesProfit(t *testing.T) {
	ctx := adminContext(t)
	reportRepo := newFakeReportRepo()
	reportRepo.snapshots[snapshotKey("emp-1", 2026, 8)] = report.MonthlyEmployeeReport{
		EmployeeID: "emp-1", Year: 2026, Month: 8,
		Revenue: 1_400_000, Cost: 1_533_090, Profit: -133_090,
	}
	svc := newTestService(reportRepo, &fakeEmployeeRepo{}, &fakeTimesheetRepo{})

	actual := int64(1_200_000)
	resp, err := svc.UpdateActualCost(ctx, report.UpdateActualCostRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 8, ActualCost: &actual,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(200_000), resp.Profit)
	require.NotNil(t, resp.ActualCost)
	assert.Equal(t, int64(1_200_000), *resp.ActualCost)

	// Clearing the override restores the frozen default.
	resp, err = svc.UpdateActualCost(ctx, report.UpdateActualCostRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 8, ActualCost: nil,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-133_090), resp.Profit)
	assert.Nil(t, resp.ActualCost)
}

func TestUpdateActualCost_RequiresSnapshot(t *testing.T) {
	ctx := adminContext(t)
	svc := newTestService(newFakeReportRepo(), &fakeEmployeeRepo{}, &fakeTimesheetRepo{})

	_, err := svc.UpdateActualCost(ctx, report.UpdateActualCostRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 8,
	})

	assert.ErrorIs(t, err, report.ErrReportNotFound)
}

// One employee's snapshot refreshes, the deleted one is reported as a
// per-employee error without aborting the batch.
func TestPropagateAllChanges_PartialFailure(t *testing.T) {
	ctx := adminContext(t)
	reportRepo := newFakeReportRepo()
	reportRepo.snapshots[snapshotKey("emp-1", 2026, 8)] = report.MonthlyEmployeeReport{
		EmployeeID: "emp-1", Year: 2026, Month: 8,
		Hours: 16_000, Revenue: 1_280_000, Cost: 1_533_090,
	}
	reportRepo.snapshots[snapshotKey("emp-gone", 2026, 8)] = report.MonthlyEmployeeReport{
		EmployeeID: "emp-gone", Year: 2026, Month: 8,
		Hours: 8_000, Revenue: 640_000, Cost: 900_000,
	}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", MonthlyCostTotal: 1_600_000, IsActive: true},
	}}
	timesheetRepo := &fakeTimesheetRepo{monthEntries: map[string][]timesheet.MonthEntry{
		snapshotKey("emp-1", 2026, 8): {
			{EmployeeID: "emp-1", Hours: 16_000, BillingRate: 9_000},
		},
	}}
	svc := newTestService(reportRepo, employeeRepo, timesheetRepo)

	result, err := svc.PropagateAllChanges(ctx, 2026, 8)

	require.NoError(t, err)
	assert.Equal(t, 1, result.UpdatedCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "emp-gone", result.Errors[0].EmployeeID)

	refreshed := reportRepo.snapshots[snapshotKey("emp-1", 2026, 8)]
	assert.Equal(t, int64(1_440_000), refreshed.Revenue)
	assert.Equal(t, int64(1_600_000), refreshed.Cost)
	assert.Equal(t, int64(9_000), refreshed.ClientHourlyRate)

	// The missing employee's frozen month is untouched.
	stale := reportRepo.snapshots[snapshotKey("emp-gone", 2026, 8)]
	assert.Equal(t, int64(640_000), stale.Revenue)
}

// Propagate keeps a manual cost override while refreshing everything
// derived from live data.
func TestPropagateAllChanges_KeepsActualCost(t *testing.T) {
	ctx := adminContext(t)
	actual := int64(1_000_000)
	reportRepo := newFakeReportRepo()
	reportRepo.snapshots[snapshotKey("emp-1", 2026, 8)] = report.MonthlyEmployeeReport{
		EmployeeID: "emp-1", Year: 2026, Month: 8,
		Hours: 16_000, Revenue: 1_280_000, Cost: 1_533_090, ActualCost: &actual,
	}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", MonthlyCostTotal: 1_600_000, IsActive: true},
	}}
	timesheetRepo := &fakeTimesheetRepo{monthEntries: map[string][]timesheet.MonthEntry{
		snapshotKey("emp-1", 2026, 8): {
			{EmployeeID: "emp-1", Hours: 16_000, BillingRate: 9_000},
		},
	}}
	svc := newTestService(reportRepo, employeeRepo, timesheetRepo)

	_, err := svc.PropagateAllChanges(ctx, 2026, 8)

	require.NoError(t, err)
	refreshed := reportRepo.snapshots[snapshotKey("emp-1", 2026, 8)]
	require.NotNil(t, refreshed.ActualCost)
	assert.Equal(t, int64(1_000_000), *refreshed.ActualCost)
	assert.Equal(t, int64(440_000), refreshed.Profit)
}
