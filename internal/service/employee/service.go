package employee

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/employee"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/salary"
	salaryService "github.com/softhouse-dev/backoffice-backend-go/internal/service/salary"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	calculator   *salaryService.Calculator
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, calculator *salaryService.Calculator) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		calculator:   calculator,
	}
}

// Helper to get company_id from JWT context
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

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		CompanyID:          companyID,
		FullName:           req.FullName,
		Email:              req.Email,
		ContractType:       salary.ContractType(req.ContractType),
		HourlyRateEmployee: req.HourlyRateEmployee,
		ClientHourlyRate:   req.ClientHourlyRate,
		IsActive:           true,
	}
	emp.VacationDaysPerYear = s.calculator.Rules().DefaultVacationDays
	if req.VacationDaysPerYear != nil {
		emp.VacationDaysPerYear = *req.VacationDaysPerYear
	}

	if err := s.applySalary(&emp, req.GrossSalary, req.NetSalary); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.ContractType != nil {
		emp.ContractType = salary.ContractType(*req.ContractType)
	}
	if req.HourlyRateEmployee != nil {
		emp.HourlyRateEmployee = *req.HourlyRateEmployee
	}
	if req.ClientHourlyRate != nil {
		emp.ClientHourlyRate = *req.ClientHourlyRate
	}
	if req.VacationDaysPerYear != nil {
		emp.VacationDaysPerYear = *req.VacationDaysPerYear
	}
	if req.VacationDaysUsed != nil {
		emp.VacationDaysUsed = *req.VacationDaysUsed
	}

	// Rerun the calculator whenever anything feeding it changed. The
	// explicitly supplied amount wins; otherwise the stored gross is
	// the anchor.
	salaryInput := req.GrossSalary
	netInput := req.NetSalary
	if salaryInput == nil && netInput == nil {
		gross := emp.GrossSalary
		salaryInput = &gross
	}
	if err := s.applySalary(&emp, salaryInput, netInput); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

// applySalary fills every derived cost field from the calculator, given
// either a gross or a net anchor amount.
func (s *EmployeeServiceImpl) applySalary(emp *employee.Employee, gross, net *int64) error {
	hourlyRate := emp.HourlyRateEmployee
	vacationDays := emp.VacationDaysPerYear

	var (
		breakdown salary.Breakdown
		err       error
	)
	switch {
	case gross != nil:
		breakdown, err = s.calculator.FromGross(emp.ContractType, *gross, &hourlyRate, &vacationDays)
	case net != nil:
		breakdown, err = s.calculator.FromNet(emp.ContractType, *net, &hourlyRate, &vacationDays)
	default:
		return employee.ErrMissingSalaryAmount
	}
	if err != nil {
		return err
	}

	emp.GrossSalary = breakdown.Gross
	emp.NetSalary = breakdown.Net
	emp.MonthlyCostTotal = breakdown.TotalMonthlyCost
	emp.VacationCostMonthly = breakdown.VacationCostMonthly
	emp.VacationCostAnnual = breakdown.VacationCostAnnual
	emp.HourlyCostRate = hourlyCostRate(breakdown.TotalMonthlyCost, s.calculator.Rules().StandardMonthHours)
	return nil
}

// hourlyCostRate derives the internal per-hour cost from the total
// monthly cost over a standard working month.
func hourlyCostRate(monthlyCost, standardMonthHours int64) int64 {
	if standardMonthHours == 0 {
		return 0
	}
	return decimal.NewFromInt(monthlyCost).
		Div(decimal.NewFromInt(standardMonthHours)).
		Round(0).IntPart()
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

func (s *EmployeeServiceImpl) Reactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *EmployeeServiceImpl) setActive(ctx context.Context, id string, active bool) error {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if emp.IsActive == active {
		if active {
			return employee.ErrEmployeeAlreadyActive
		}
		return employee.ErrEmployeeAlreadyInactive
	}

	return s.employeeRepo.SetActive(ctx, id, companyID, active)
}
