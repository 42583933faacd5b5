package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/employee"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/report"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/timesheet"
)

func TestEntryAmount(t *testing.T) {
	// 160.00 hours at 80.00/h
	assert.Equal(t, int64(1_280_000), EntryAmount(16_000, 8_000))
	// 0.50 hours at 99.99/h rounds half away from zero
	assert.Equal(t, int64(5_000), EntryAmount(50, 9_999))
	assert.Equal(t, int64(0), EntryAmount(0, 8_000))
}

func TestWeightedHourlyRate(t *testing.T) {
	// 1,280,000 revenue over 160.00 hours = 80.00/h
	assert.Equal(t, int64(8_000), WeightedHourlyRate(1_280_000, 16_000))
	assert.Equal(t, int64(0), WeightedHourlyRate(1_280_000, 0))
}

func TestReconciler_FromLive(t *testing.T) {
	rc := NewReconciler()
	emp := employee.Employee{ID: "emp-1", MonthlyCostTotal: 1_533_090}
	entries := []timesheet.MonthEntry{
		{EmployeeID: "emp-1", ProjectID: "p1", Hours: 10_000, BillingRate: 8_000, CostRate: 9_126},
		{EmployeeID: "emp-1", ProjectID: "p2", Hours: 6_000, BillingRate: 10_000, CostRate: 9_126},
	}

	figures := rc.FromLive(emp, entries)

	assert.Equal(t, int64(16_000), figures.Hours)
	assert.Equal(t, int64(1_400_000), figures.Revenue)
	assert.Equal(t, int64(1_533_090), figures.Cost)
	assert.Equal(t, figures.Revenue-figures.Cost, figures.Profit)
	assert.False(t, figures.IsSnapshot)
}

// An employee with no logged hours still carries the full monthly cost.
func TestReconciler_FromLive_NoActivity(t *testing.T) {
	rc := NewReconciler()
	emp := employee.Employee{ID: "emp-1", MonthlyCostTotal: 1_533_090}

	figures := rc.FromLive(emp, nil)

	assert.Equal(t, int64(0), figures.Hours)
	assert.Equal(t, int64(0), figures.Revenue)
	assert.Equal(t, int64(1_533_090), figures.Cost)
	assert.Equal(t, int64(-1_533_090), figures.Profit)
}

func TestReconciler_FromSnapshot(t *testing.T) {
	rc := NewReconciler()
	snapshot := report.MonthlyEmployeeReport{
		EmployeeID: "emp-1",
		Hours:      16_000,
		Revenue:    1_400_000,
		Cost:       1_533_090,
		Profit:     -133_090,
	}

	figures := rc.FromSnapshot(snapshot)

	assert.Equal(t, int64(1_533_090), figures.Cost)
	assert.Equal(t, int64(-133_090), figures.Profit)
	assert.True(t, figures.IsSnapshot)
}

// A manual cost override replaces the frozen default in every figure
// derived from the snapshot.
func TestReconciler_FromSnapshot_ActualCostOverride(t *testing.T) {
	rc := NewReconciler()
	actual := int64(1_200_000)
	snapshot := report.MonthlyEmployeeReport{
		EmployeeID: "emp-1",
		Hours:      16_000,
		Revenue:    1_400_000,
		Cost:       1_533_090,
		ActualCost: &actual,
	}

	figures := rc.FromSnapshot(snapshot)

	assert.Equal(t, int64(1_200_000), figures.Cost)
	assert.Equal(t, int64(200_000), figures.Profit)
}

// The snapshot wins over live data: changed rates must not move a
// frozen month.
func TestReconciler_Reconcile_SnapshotImmutability(t *testing.T) {
	rc := NewReconciler()
	snapshot := report.MonthlyEmployeeReport{
		EmployeeID: "emp-1",
		Hours:      16_000,
		Revenue:    1_400_000,
		Cost:       1_533_090,
		CreatedAt:  time.Now(),
	}
	// Live data as it would look after a raise.
	emp := employee.Employee{ID: "emp-1", MonthlyCostTotal: 2_000_000}
	entries := []timesheet.MonthEntry{
		{EmployeeID: "emp-1", Hours: 16_000, BillingRate: 12_000},
	}

	figures := rc.Reconcile(&snapshot, emp, entries)

	assert.True(t, figures.IsSnapshot)
	assert.Equal(t, int64(1_400_000), figures.Revenue)
	assert.Equal(t, int64(1_533_090), figures.Cost)

	live := rc.Reconcile(nil, emp, entries)
	assert.False(t, live.IsSnapshot)
	assert.Equal(t, int64(1_920_000), live.Revenue)
}
