package report

import (
	"github.com/shopspring/decimal"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/employee"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/report"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/timesheet"
)

// Reconciler resolves one employee's monthly figures from either the
// frozen snapshot or live timesheet data. Every rollup in the system
// goes through this type so the two sources cannot diverge.
type Reconciler struct{}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reconcile prefers the snapshot when one exists; otherwise it derives
// live figures from the month's entries and the current employee record.
func (rc *Reconciler) Reconcile(snapshot *report.MonthlyEmployeeReport, emp employee.Employee, entries []timesheet.MonthEntry) report.MonthlyFigures {
	if snapshot != nil {
		return rc.FromSnapshot(*snapshot)
	}
	return rc.FromLive(emp, entries)
}

// FromSnapshot maps a frozen report to figures. The manual cost
// override, when present, replaces the frozen default.
func (rc *Reconciler) FromSnapshot(snapshot report.MonthlyEmployeeReport) report.MonthlyFigures {
	return report.MonthlyFigures{
		EmployeeID: snapshot.EmployeeID,
		Hours:      snapshot.Hours,
		Revenue:    snapshot.Revenue,
		Cost:       snapshot.EffectiveCost(),
		Profit:     snapshot.EffectiveProfit(),
		IsSnapshot: true,
	}
}

// FromLive sums the month's entries at their effective billing rates.
// Cost is the employee's full monthly cost regardless of logged hours;
// an idle month still costs the company the whole salary.
func (rc *Reconciler) FromLive(emp employee.Employee, entries []timesheet.MonthEntry) report.MonthlyFigures {
	var hours, revenue int64
	for _, entry := range entries {
		hours += entry.Hours
		revenue += EntryAmount(entry.Hours, entry.BillingRate)
	}

	cost := emp.MonthlyCostTotal
	return report.MonthlyFigures{
		EmployeeID: emp.ID,
		Hours:      hours,
		Revenue:    revenue,
		Cost:       cost,
		Profit:     revenue - cost,
		IsSnapshot: false,
	}
}

// EntryAmount converts hours in hundredths at an hourly rate into a
// rounded amount in minor units.
func EntryAmount(hours, hourlyRate int64) int64 {
	return decimal.NewFromInt(hours).
		Mul(decimal.NewFromInt(hourlyRate)).
		Div(decimal.NewFromInt(100)).
		Round(0).IntPart()
}

// WeightedHourlyRate is the revenue-weighted average rate stored on a
// snapshot: revenue scaled back up to hundredth-hours.
func WeightedHourlyRate(revenue, hours int64) int64 {
	if hours == 0 {
		return 0
	}
	return decimal.NewFromInt(revenue).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(hours)).
		Round(0).IntPart()
}
