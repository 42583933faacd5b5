package salary

import (
	"context"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/salary"
)

type SalaryServiceImpl struct {
	calculator *Calculator
}

func NewSalaryService(calculator *Calculator) salary.SalaryService {
	return &SalaryServiceImpl{calculator: calculator}
}

func (s *SalaryServiceImpl) Calculate(ctx context.Context, req salary.CalculateRequest) (salary.BreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.BreakdownResponse{}, err
	}

	var (
		breakdown salary.Breakdown
		err       error
	)
	switch salary.Direction(req.Direction) {
	case salary.DirectionFromGross:
		breakdown, err = s.calculator.FromGross(salary.ContractType(req.ContractType), req.Amount, req.HourlyRate, req.VacationDays)
	case salary.DirectionFromNet:
		breakdown, err = s.calculator.FromNet(salary.ContractType(req.ContractType), req.Amount, req.HourlyRate, req.VacationDays)
	default:
		err = salary.ErrUnknownDirection
	}
	if err != nil {
		return salary.BreakdownResponse{}, err
	}

	return salary.NewBreakdownResponse(breakdown), nil
}
