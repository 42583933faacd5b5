package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id, companyID string) (Project, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Project, error)

	CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	UpdateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	GetAssignmentByID(ctx context.Context, id, companyID string) (Assignment, error)
	ListAssignmentsByProject(ctx context.Context, projectID, companyID string, activeOnly bool) ([]Assignment, error)
	ListAssignmentsByEmployee(ctx context.Context, employeeID, companyID string, activeOnly bool) ([]Assignment, error)
}
