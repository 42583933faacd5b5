package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/project"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (company_id, name, client_name, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, company_id, name, client_name, is_active, created_at, updated_at
	`

	var created project.Project
	err := q.QueryRow(ctx, query, p.CompanyID, p.Name, p.ClientName).Scan(
		&created.ID, &created.CompanyID, &created.Name, &created.ClientName,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (r *projectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects SET name = $3, client_name = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING id, company_id, name, client_name, is_active, created_at, updated_at
	`

	var updated project.Project
	err := q.QueryRow(ctx, query, p.ID, p.CompanyID, p.Name, p.ClientName, p.IsActive).Scan(
		&updated.ID, &updated.CompanyID, &updated.Name, &updated.ClientName,
		&updated.IsActive, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id, companyID string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, client_name, is_active, created_at, updated_at
		FROM projects
		WHERE id = $1 AND company_id = $2
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.ClientName, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

func (r *projectRepository) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, client_name, is_active, created_at, updated_at
		FROM projects
		WHERE company_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.ClientName, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

const assignmentColumns = `
	a.id, a.company_id, a.project_id, a.employee_id,
	a.billing_rate, a.cost_rate, a.start_date, a.end_date, a.is_active,
	a.created_at, a.updated_at, e.full_name, p.name,
	COALESCE(a.billing_rate, e.client_hourly_rate),
	COALESCE(a.cost_rate, e.hourly_cost_rate)`

const assignmentJoins = `
	FROM project_assignments a
	JOIN employees e ON e.id = a.employee_id
	JOIN projects p ON p.id = a.project_id`

func scanAssignment(row pgx.Row) (project.Assignment, error) {
	var a project.Assignment
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.ProjectID, &a.EmployeeID,
		&a.BillingRate, &a.CostRate, &a.StartDate, &a.EndDate, &a.IsActive,
		&a.CreatedAt, &a.UpdatedAt, &a.EmployeeName, &a.ProjectName,
		&a.EffectiveBillingRate, &a.EffectiveCostRate,
	)
	return a, err
}

func (r *projectRepository) CreateAssignment(ctx context.Context, a project.Assignment) (project.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO project_assignments (
				company_id, project_id, employee_id, billing_rate, cost_rate,
				start_date, end_date, is_active
			) VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
			RETURNING *
		)
		SELECT ` + assignmentColumns + `
		FROM inserted a
		JOIN employees e ON e.id = a.employee_id
		JOIN projects p ON p.id = a.project_id
	`

	created, err := scanAssignment(q.QueryRow(ctx, query,
		a.CompanyID, a.ProjectID, a.EmployeeID, a.BillingRate, a.CostRate,
		a.StartDate, a.EndDate,
	))
	if err != nil {
		if isUniqueViolation(err, "uk_assignments_project_employee") {
			return project.Assignment{}, project.ErrAssignmentExists
		}
		return project.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}
	return created, nil
}

func (r *projectRepository) UpdateAssignment(ctx context.Context, a project.Assignment) (project.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE project_assignments SET
				billing_rate = $3, cost_rate = $4, end_date = $5, is_active = $6,
				updated_at = NOW()
			WHERE id = $1 AND company_id = $2
			RETURNING *
		)
		SELECT ` + assignmentColumns + `
		FROM updated a
		JOIN employees e ON e.id = a.employee_id
		JOIN projects p ON p.id = a.project_id
	`

	updated, err := scanAssignment(q.QueryRow(ctx, query,
		a.ID, a.CompanyID, a.BillingRate, a.CostRate, a.EndDate, a.IsActive,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Assignment{}, project.ErrAssignmentNotFound
		}
		return project.Assignment{}, fmt.Errorf("failed to update assignment: %w", err)
	}
	return updated, nil
}

func (r *projectRepository) GetAssignmentByID(ctx context.Context, id, companyID string) (project.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE a.id = $1 AND a.company_id = $2`

	a, err := scanAssignment(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Assignment{}, project.ErrAssignmentNotFound
		}
		return project.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}
	return a, nil
}

func (r *projectRepository) ListAssignmentsByProject(ctx context.Context, projectID, companyID string, activeOnly bool) ([]project.Assignment, error) {
	return r.listAssignments(ctx, `a.project_id`, projectID, companyID, activeOnly)
}

func (r *projectRepository) ListAssignmentsByEmployee(ctx context.Context, employeeID, companyID string, activeOnly bool) ([]project.Assignment, error) {
	return r.listAssignments(ctx, `a.employee_id`, employeeID, companyID, activeOnly)
}

func (r *projectRepository) listAssignments(ctx context.Context, keyColumn, keyValue, companyID string, activeOnly bool) ([]project.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE ` + keyColumn + ` = $1 AND a.company_id = $2`
	if activeOnly {
		query += ` AND a.is_active = TRUE`
	}
	query += ` ORDER BY a.start_date`

	rows, err := q.Query(ctx, query, keyValue, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []project.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
