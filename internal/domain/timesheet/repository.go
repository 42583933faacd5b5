package timesheet

import "context"

type TimesheetRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	Update(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id, companyID string) (TimeEntry, error)
	Delete(ctx context.Context, id, companyID string) error
	ListEmployeeEntries(ctx context.Context, companyID, employeeID string, year, month int) ([]TimeEntry, error)

	// ListMonthEntries returns the month's entries for the whole company
	// joined with effective billing/cost rates.
	ListMonthEntries(ctx context.Context, companyID string, year, month int) ([]MonthEntry, error)
	// ListEmployeeMonthEntries is the per-employee variant.
	ListEmployeeMonthEntries(ctx context.Context, companyID, employeeID string, year, month int) ([]MonthEntry, error)
	// ReplaceMonthEntries deletes the employee's entries for the month
	// and inserts the given ones; used by the save-monthly-hours flow.
	ReplaceMonthEntries(ctx context.Context, companyID, employeeID string, year, month int, entries []TimeEntry) error
}
