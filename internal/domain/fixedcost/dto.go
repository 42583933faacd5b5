package fixedcost

import (
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"
)

type CreateFixedCostRequest struct {
	Name      string `json:"name"`
	Amount    int64  `json:"amount"`
	Frequency string `json:"frequency"`
}

func (r *CreateFixedCostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if !Frequency(r.Frequency).Valid() {
		errs = append(errs, validator.ValidationError{Field: "frequency", Message: "must be one of monthly, quarterly, yearly, one_time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateFixedCostRequest struct {
	ID        string
	Name      *string `json:"name,omitempty"`
	Amount    *int64  `json:"amount,omitempty"`
	Frequency *string `json:"frequency,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *UpdateFixedCostRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.Amount != nil && *r.Amount < 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.Frequency != nil && !Frequency(*r.Frequency).Valid() {
		errs = append(errs, validator.ValidationError{Field: "frequency", Message: "must be one of monthly, quarterly, yearly, one_time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FixedCostResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Amount            int64  `json:"amount"`
	Frequency         string `json:"frequency"`
	MonthlyEquivalent int64  `json:"monthly_equivalent"`
	IsActive          bool   `json:"is_active"`
}

func NewFixedCostResponse(f FixedCost) FixedCostResponse {
	return FixedCostResponse{
		ID:                f.ID,
		Name:              f.Name,
		Amount:            f.Amount,
		Frequency:         string(f.Frequency),
		MonthlyEquivalent: f.MonthlyEquivalent(),
		IsActive:          f.IsActive,
	}
}
