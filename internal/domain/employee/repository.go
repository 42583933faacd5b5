package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id, companyID string) (Employee, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Employee, error)
	SetActive(ctx context.Context, id, companyID string, active bool) error
}
