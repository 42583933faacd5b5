package salary

import "github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"

// CalculateRequest is the payload of the contract cost calculator
// endpoint. Amount is gross (or invoice net for B2B) when direction is
// gross_to_net, and the desired net when direction is net_to_gross.
// All amounts are minor currency units.
type CalculateRequest struct {
	ContractType string `json:"contract_type"`
	Direction    string `json:"direction"`
	Amount       int64  `json:"amount"`
	HourlyRate   *int64 `json:"hourly_rate,omitempty"`
	VacationDays *int64 `json:"vacation_days,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ContractType(r.ContractType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "must be one of employment, b2b, mandate, student_mandate"})
	}
	if !Direction(r.Direction).Valid() {
		errs = append(errs, validator.ValidationError{Field: "direction", Message: "must be gross_to_net or net_to_gross"})
	}
	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.VacationDays != nil && *r.VacationDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "vacation_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BreakdownResponse struct {
	ContractType         string `json:"contract_type"`
	Gross                int64  `json:"gross"`
	Net                  int64  `json:"net"`
	SocialSecurity       int64  `json:"social_security"`
	HealthInsurance      int64  `json:"health_insurance"`
	IncomeTax            int64  `json:"income_tax"`
	VAT                  int64  `json:"vat,omitempty"`
	EmployerContribution int64  `json:"employer_contribution"`
	EmployerCost         int64  `json:"employer_cost"`
	VacationCostMonthly  int64  `json:"vacation_cost_monthly"`
	VacationCostAnnual   int64  `json:"vacation_cost_annual"`
	TotalMonthlyCost     int64  `json:"total_monthly_cost"`
}

func NewBreakdownResponse(b Breakdown) BreakdownResponse {
	return BreakdownResponse{
		ContractType:         string(b.ContractType),
		Gross:                b.Gross,
		Net:                  b.Net,
		SocialSecurity:       b.SocialSecurity,
		HealthInsurance:      b.HealthInsurance,
		IncomeTax:            b.IncomeTax,
		VAT:                  b.VAT,
		EmployerContribution: b.EmployerContribution,
		EmployerCost:         b.EmployerCost,
		VacationCostMonthly:  b.VacationCostMonthly,
		VacationCostAnnual:   b.VacationCostAnnual,
		TotalMonthlyCost:     b.TotalMonthlyCost,
	}
}
