package employee

import (
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/salary"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"
)

// CreateEmployeeRequest supplies either the gross or the net monthly
// amount; the salary calculator derives the other one and every cost
// figure from it.
type CreateEmployeeRequest struct {
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	ContractType        string `json:"contract_type"`
	GrossSalary         *int64 `json:"gross_salary,omitempty"`
	NetSalary           *int64 `json:"net_salary,omitempty"`
	HourlyRateEmployee  int64  `json:"hourly_rate_employee"`
	ClientHourlyRate    int64  `json:"client_hourly_rate"`
	VacationDaysPerYear *int64 `json:"vacation_days_per_year,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if !salary.ContractType(r.ContractType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "must be one of employment, b2b, mandate, student_mandate"})
	}
	if r.GrossSalary == nil && r.NetSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "either gross_salary or net_salary is required"})
	}
	if r.GrossSalary != nil && *r.GrossSalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "must be non-negative"})
	}
	if r.NetSalary != nil && *r.NetSalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "net_salary", Message: "must be non-negative"})
	}
	if r.HourlyRateEmployee < 0 {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate_employee", Message: "must be non-negative"})
	}
	if r.ClientHourlyRate < 0 {
		errs = append(errs, validator.ValidationError{Field: "client_hourly_rate", Message: "must be non-negative"})
	}
	if r.VacationDaysPerYear != nil && *r.VacationDaysPerYear < 0 {
		errs = append(errs, validator.ValidationError{Field: "vacation_days_per_year", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                  string
	FullName            *string `json:"full_name,omitempty"`
	Email               *string `json:"email,omitempty"`
	ContractType        *string `json:"contract_type,omitempty"`
	GrossSalary         *int64  `json:"gross_salary,omitempty"`
	NetSalary           *int64  `json:"net_salary,omitempty"`
	HourlyRateEmployee  *int64  `json:"hourly_rate_employee,omitempty"`
	ClientHourlyRate    *int64  `json:"client_hourly_rate,omitempty"`
	VacationDaysPerYear *int64  `json:"vacation_days_per_year,omitempty"`
	VacationDaysUsed    *int64  `json:"vacation_days_used,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if r.ContractType != nil && !salary.ContractType(*r.ContractType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "must be one of employment, b2b, mandate, student_mandate"})
	}
	for field, v := range map[string]*int64{
		"gross_salary":           r.GrossSalary,
		"net_salary":             r.NetSalary,
		"hourly_rate_employee":   r.HourlyRateEmployee,
		"client_hourly_rate":     r.ClientHourlyRate,
		"vacation_days_per_year": r.VacationDaysPerYear,
		"vacation_days_used":     r.VacationDaysUsed,
	} {
		if v != nil && *v < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                  string `json:"id"`
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	ContractType        string `json:"contract_type"`
	GrossSalary         int64  `json:"gross_salary"`
	NetSalary           int64  `json:"net_salary"`
	MonthlyCostTotal    int64  `json:"monthly_cost_total"`
	HourlyCostRate      int64  `json:"hourly_cost_rate"`
	HourlyRateEmployee  int64  `json:"hourly_rate_employee"`
	ClientHourlyRate    int64  `json:"client_hourly_rate"`
	VacationCostMonthly int64  `json:"vacation_cost_monthly"`
	VacationCostAnnual  int64  `json:"vacation_cost_annual"`
	VacationDaysPerYear int64  `json:"vacation_days_per_year"`
	VacationDaysUsed    int64  `json:"vacation_days_used"`
	IsActive            bool   `json:"is_active"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                  e.ID,
		FullName:            e.FullName,
		Email:               e.Email,
		ContractType:        string(e.ContractType),
		GrossSalary:         e.GrossSalary,
		NetSalary:           e.NetSalary,
		MonthlyCostTotal:    e.MonthlyCostTotal,
		HourlyCostRate:      e.HourlyCostRate,
		HourlyRateEmployee:  e.HourlyRateEmployee,
		ClientHourlyRate:    e.ClientHourlyRate,
		VacationCostMonthly: e.VacationCostMonthly,
		VacationCostAnnual:  e.VacationCostAnnual,
		VacationDaysPerYear: e.VacationDaysPerYear,
		VacationDaysUsed:    e.VacationDaysUsed,
		IsActive:            e.IsActive,
	}
}
