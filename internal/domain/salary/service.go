package salary

import "context"

type SalaryService interface {
	Calculate(ctx context.Context, req CalculateRequest) (BreakdownResponse, error)
}
