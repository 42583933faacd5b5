package fixedcost

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/fixedcost"
)

type FixedCostServiceImpl struct {
	fixedCostRepo fixedcost.FixedCostRepository
}

func NewFixedCostService(fixedCostRepo fixedcost.FixedCostRepository) fixedcost.FixedCostService {
	return &FixedCostServiceImpl{fixedCostRepo: fixedCostRepo}
}

func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

func (s *FixedCostServiceImpl) Create(ctx context.Context, req fixedcost.CreateFixedCostRequest) (fixedcost.FixedCostResponse, error) {
	if err := req.Validate(); err != nil {
		return fixedcost.FixedCostResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return fixedcost.FixedCostResponse{}, err
	}

	created, err := s.fixedCostRepo.Create(ctx, fixedcost.FixedCost{
		CompanyID: companyID,
		Name:      req.Name,
		Amount:    req.Amount,
		Frequency: fixedcost.Frequency(req.Frequency),
	})
	if err != nil {
		return fixedcost.FixedCostResponse{}, err
	}
	return fixedcost.NewFixedCostResponse(created), nil
}

func (s *FixedCostServiceImpl) Update(ctx context.Context, req fixedcost.UpdateFixedCostRequest) (fixedcost.FixedCostResponse, error) {
	if err := req.Validate(); err != nil {
		return fixedcost.FixedCostResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return fixedcost.FixedCostResponse{}, err
	}

	cost, err := s.fixedCostRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return fixedcost.FixedCostResponse{}, err
	}

	if req.Name != nil {
		cost.Name = *req.Name
	}
	if req.Amount != nil {
		cost.Amount = *req.Amount
	}
	if req.Frequency != nil {
		cost.Frequency = fixedcost.Frequency(*req.Frequency)
	}
	if req.IsActive != nil {
		cost.IsActive = *req.IsActive
	}

	updated, err := s.fixedCostRepo.Update(ctx, cost)
	if err != nil {
		return fixedcost.FixedCostResponse{}, err
	}
	return fixedcost.NewFixedCostResponse(updated), nil
}

func (s *FixedCostServiceImpl) List(ctx context.Context, activeOnly bool) ([]fixedcost.FixedCostResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	costs, err := s.fixedCostRepo.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]fixedcost.FixedCostResponse, 0, len(costs))
	for _, cost := range costs {
		responses = append(responses, fixedcost.NewFixedCostResponse(cost))
	}
	return responses, nil
}

func (s *FixedCostServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.fixedCostRepo.Delete(ctx, id, companyID)
}
