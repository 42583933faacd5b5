package project

import (
	"time"

	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name       string `json:"name"`
	ClientName string `json:"client_name"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.ClientName) {
		errs = append(errs, validator.ValidationError{Field: "client_name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	ID         string
	Name       *string `json:"name,omitempty"`
	ClientName *string `json:"client_name,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

type ProjectResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClientName string `json:"client_name"`
	IsActive   bool   `json:"is_active"`
}

func NewProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:         p.ID,
		Name:       p.Name,
		ClientName: p.ClientName,
		IsActive:   p.IsActive,
	}
}

type CreateAssignmentRequest struct {
	ProjectID   string `json:"project_id"`
	EmployeeID  string `json:"employee_id"`
	BillingRate *int64 `json:"billing_rate,omitempty"`
	CostRate    *int64 `json:"cost_rate,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.BillingRate != nil && *r.BillingRate < 0 {
		errs = append(errs, validator.ValidationError{Field: "billing_rate", Message: "must be non-negative"})
	}
	if r.CostRate != nil && *r.CostRate < 0 {
		errs = append(errs, validator.ValidationError{Field: "cost_rate", Message: "must be non-negative"})
	}
	var start time.Time
	var ok bool
	if start, ok = validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else if end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "cannot be before start_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentRequest struct {
	ID          string
	BillingRate *int64  `json:"billing_rate,omitempty"`
	CostRate    *int64  `json:"cost_rate,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type AssignmentResponse struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"project_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ProjectName  *string `json:"project_name,omitempty"`
	BillingRate  *int64  `json:"billing_rate,omitempty"`
	CostRate     *int64  `json:"cost_rate,omitempty"`

	// Override when set, else the employee default.
	EffectiveBillingRate int64 `json:"effective_billing_rate"`
	EffectiveCostRate    int64 `json:"effective_cost_rate"`

	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	IsActive  bool    `json:"is_active"`
}

func NewAssignmentResponse(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:           a.ID,
		ProjectID:    a.ProjectID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		ProjectName:  a.ProjectName,
		BillingRate:  a.BillingRate,
		CostRate:     a.CostRate,

		EffectiveBillingRate: a.EffectiveBillingRate,
		EffectiveCostRate:    a.EffectiveCostRate,

		StartDate: a.StartDate.Format("2006-01-02"),
		IsActive:  a.IsActive,
	}
	if a.EndDate != nil {
		end := a.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
