package fixedcost

import "context"

type FixedCostService interface {
	Create(ctx context.Context, req CreateFixedCostRequest) (FixedCostResponse, error)
	Update(ctx context.Context, req UpdateFixedCostRequest) (FixedCostResponse, error)
	List(ctx context.Context, activeOnly bool) ([]FixedCostResponse, error)
	Delete(ctx context.Context, id string) error
}
