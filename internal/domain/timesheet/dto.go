package timesheet

import (
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"
)

type CreateTimeEntryRequest struct {
	AssignmentID string  `json:"assignment_id"`
	EntryDate    string  `json:"entry_date"`
	Hours        int64   `json:"hours"` // hundredths of an hour
	Note         *string `json:"note,omitempty"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{Field: "assignment_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.EntryDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "entry_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Hours < 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTimeEntryRequest struct {
	ID    string
	Hours *int64  `json:"hours,omitempty"`
	Note  *string `json:"note,omitempty"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Hours != nil && *r.Hours < 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeEntryResponse struct {
	ID           string  `json:"id"`
	AssignmentID string  `json:"assignment_id"`
	EmployeeID   string  `json:"employee_id"`
	EntryDate    string  `json:"entry_date"`
	Hours        int64   `json:"hours"`
	Note         *string `json:"note,omitempty"`
}

func NewTimeEntryResponse(e TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:           e.ID,
		AssignmentID: e.AssignmentID,
		EmployeeID:   e.EmployeeID,
		EntryDate:    e.EntryDate.Format("2006-01-02"),
		Hours:        e.Hours,
		Note:         e.Note,
	}
}
