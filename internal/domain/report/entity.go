package report

import "time"

// MonthlyEmployeeReport is the frozen snapshot for one (employee, year,
// month). Once saved with nonzero hours, Cost and Revenue are
// historical facts; only ActualCost may be edited afterwards, and the
// explicit propagate action is the single path that rewrites the rest.
type MonthlyEmployeeReport struct {
	ID               string
	CompanyID        string
	EmployeeID       string
	Year             int
	Month            int
	Hours            int64 // hundredths of an hour
	ClientHourlyRate int64 // revenue-weighted average, minor units
	Revenue          int64
	Cost             int64  // frozen default cost
	ActualCost       *int64 // manual override, nil when not set
	Profit           int64
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}

// EffectiveCost is the manual override when present, else the frozen
// default.
func (r MonthlyEmployeeReport) EffectiveCost() int64 {
	if r.ActualCost != nil {
		return *r.ActualCost
	}
	return r.Cost
}

// EffectiveProfit recomputes profit from the effective cost. The stored
// Profit column is only trustworthy while ActualCost is nil.
func (r MonthlyEmployeeReport) EffectiveProfit() int64 {
	return r.Revenue - r.EffectiveCost()
}

// MonthlyFigures is the normalized snapshot-or-live record every rollup
// consumes, so the two code paths cannot drift apart.
type MonthlyFigures struct {
	EmployeeID string
	Hours      int64
	Revenue    int64
	Cost       int64
	Profit     int64
	IsSnapshot bool
}
