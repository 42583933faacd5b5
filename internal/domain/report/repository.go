package report

import "context"

type ReportRepository interface {
	GetSnapshot(ctx context.Context, companyID, employeeID string, year, month int) (MonthlyEmployeeReport, error)
	ListSnapshots(ctx context.Context, companyID string, year, month int) ([]MonthlyEmployeeReport, error)
	// UpsertSnapshot creates or replaces the (employee, year, month) row.
	UpsertSnapshot(ctx context.Context, snapshot MonthlyEmployeeReport) (MonthlyEmployeeReport, error)
	// UpdateActualCost sets or clears the manual override and rewrites
	// the stored profit; hours, revenue and cost stay untouched.
	UpdateActualCost(ctx context.Context, companyID, employeeID string, year, month int, actualCost *int64, profit int64) (MonthlyEmployeeReport, error)
}
