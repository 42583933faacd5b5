package report

import (
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"
)

// MonthlyHoursEntry is one employee/assignment line of the monthly
// hours sheet an admin saves for a month.
type MonthlyHoursEntry struct {
	EmployeeID   string `json:"employee_id"`
	AssignmentID string `json:"assignment_id"`
	Hours        int64  `json:"hours"` // hundredths of an hour
}

type SaveMonthlyHoursRequest struct {
	Year    int                 `json:"year"`
	Month   int                 `json:"month"`
	Entries []MonthlyHoursEntry `json:"entries"`
}

func (r *SaveMonthlyHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "at least one entry is required"})
	}
	for _, entry := range r.Entries {
		if validator.IsEmpty(entry.EmployeeID) || validator.IsEmpty(entry.AssignmentID) {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "employee_id and assignment_id are required on every entry"})
			break
		}
		if entry.Hours < 0 {
			errs = append(errs, validator.ValidationError{Field: "entries", Message: "hours must be non-negative"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateActualCostRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	ActualCost *int64 `json:"actual_cost"` // null clears the override
}

func (r *UpdateActualCostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.ActualCost != nil && *r.ActualCost < 0 {
		errs = append(errs, validator.ValidationError{Field: "actual_cost", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyReportResponse is the snapshot-or-live view of one employee's
// month.
type MonthlyReportResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Hours        int64   `json:"hours"`
	Revenue      int64   `json:"revenue"`
	Cost         int64   `json:"cost"`
	ActualCost   *int64  `json:"actual_cost,omitempty"`
	Profit       int64   `json:"profit"`
	IsSnapshot   bool    `json:"is_snapshot"`
}

// PropagateError records one employee the bulk propagate could not
// update.
type PropagateError struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

type PropagateResult struct {
	UpdatedCount int              `json:"updated_count"`
	Errors       []PropagateError `json:"errors"`
}
