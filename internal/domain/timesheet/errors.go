package timesheet

import "errors"

var (
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrInvalidHours      = errors.New("hours must be non-negative")
)
