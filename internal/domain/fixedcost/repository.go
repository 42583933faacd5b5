package fixedcost

import "context"

type FixedCostRepository interface {
	Create(ctx context.Context, cost FixedCost) (FixedCost, error)
	Update(ctx context.Context, cost FixedCost) (FixedCost, error)
	GetByID(ctx context.Context, id, companyID string) (FixedCost, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]FixedCost, error)
	Delete(ctx context.Context, id, companyID string) error
}
