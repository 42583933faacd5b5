package project

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/employee"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	projectRepo  project.ProjectRepository
	employeeRepo employee.EmployeeRepository
}

func NewProjectService(projectRepo project.ProjectRepository, employeeRepo employee.EmployeeRepository) project.ProjectService {
	return &ProjectServiceImpl{
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
	}
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

func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.projectRepo.Create(ctx, project.Project{
		CompanyID:  companyID,
		Name:       req.Name,
		ClientName: req.ClientName,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.NewProjectResponse(created), nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	updated, err := s.projectRepo.Update(ctx, p)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.NewProjectResponse(updated), nil
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (project.ProjectResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.NewProjectResponse(p), nil
}

func (s *ProjectServiceImpl) List(ctx context.Context, activeOnly bool) ([]project.ProjectResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.NewProjectResponse(p))
	}
	return responses, nil
}

func (s *ProjectServiceImpl) Assign(ctx context.Context, req project.CreateAssignmentRequest) (project.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return project.AssignmentResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return project.AssignmentResponse{}, err
	}

	// Both ends must exist in this company before linking them.
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID, companyID); err != nil {
		return project.AssignmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return project.AssignmentResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.EndDate)
		endDate = &parsed
	}

	created, err := s.projectRepo.CreateAssignment(ctx, project.Assignment{
		CompanyID:   companyID,
		ProjectID:   req.ProjectID,
		EmployeeID:  req.EmployeeID,
		BillingRate: req.BillingRate,
		CostRate:    req.CostRate,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return project.AssignmentResponse{}, err
	}
	return project.NewAssignmentResponse(created), nil
}

func (s *ProjectServiceImpl) UpdateAssignment(ctx context.Context, req project.UpdateAssignmentRequest) (project.AssignmentResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return project.AssignmentResponse{}, err
	}

	a, err := s.projectRepo.GetAssignmentByID(ctx, req.ID, companyID)
	if err != nil {
		return project.AssignmentResponse{}, err
	}

	if req.BillingRate != nil {
		a.BillingRate = req.BillingRate
	}
	if req.CostRate != nil {
		a.CostRate = req.CostRate
	}
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return project.AssignmentResponse{}, fmt.Errorf("invalid end_date: %w", err)
		}
		a.EndDate = &parsed
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	updated, err := s.projectRepo.UpdateAssignment(ctx, a)
	if err != nil {
		return project.AssignmentResponse{}, err
	}
	return project.NewAssignmentResponse(updated), nil
}

func (s *ProjectServiceImpl) ListAssignments(ctx context.Context, projectID string, activeOnly bool) ([]project.AssignmentResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	assignments, err := s.projectRepo.ListAssignmentsByProject(ctx, projectID, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]project.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, project.NewAssignmentResponse(a))
	}
	return responses, nil
}
