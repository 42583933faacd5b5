package timesheet

import "context"

type TimesheetService interface {
	Create(ctx context.Context, req CreateTimeEntryRequest) (TimeEntryResponse, error)
	Update(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
	Delete(ctx context.Context, id string) error
	ListForEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]TimeEntryResponse, error)
}
