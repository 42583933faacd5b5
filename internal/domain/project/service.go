package project

import "context"

type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	List(ctx context.Context, activeOnly bool) ([]ProjectResponse, error)

	Assign(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, req UpdateAssignmentRequest) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, projectID string, activeOnly bool) ([]AssignmentResponse, error)
}
