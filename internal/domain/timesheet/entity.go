package timesheet

import "time"

// TimeEntry records hours worked against one assignment on one day.
// Hours are hundredths of an hour (8.5h stored as 850).
type TimeEntry struct {
	ID           string
	CompanyID    string
	AssignmentID string
	EmployeeID   string
	EntryDate    time.Time
	Hours        int64
	Note         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MonthEntry is a time entry joined with its effective rates: the
// assignment override when present, otherwise the employee default.
// This is the row every revenue/cost computation consumes.
type MonthEntry struct {
	EmployeeID  string
	ProjectID   string
	EntryDate   time.Time
	Hours       int64
	BillingRate int64 // per hour, minor units
	CostRate    int64 // per hour, minor units
}
