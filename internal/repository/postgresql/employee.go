package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/employee"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, full_name, email, contract_type,
	gross_salary, net_salary, monthly_cost_total,
	hourly_cost_rate, hourly_rate_employee, client_hourly_rate,
	vacation_cost_monthly, vacation_cost_annual,
	vacation_days_per_year, vacation_days_used,
	is_active, created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.FullName, &e.Email, &e.ContractType,
		&e.GrossSalary, &e.NetSalary, &e.MonthlyCostTotal,
		&e.HourlyCostRate, &e.HourlyRateEmployee, &e.ClientHourlyRate,
		&e.VacationCostMonthly, &e.VacationCostAnnual,
		&e.VacationDaysPerYear, &e.VacationDaysUsed,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			company_id, full_name, email, contract_type,
			gross_salary, net_salary, monthly_cost_total,
			hourly_cost_rate, hourly_rate_employee, client_hourly_rate,
			vacation_cost_monthly, vacation_cost_annual,
			vacation_days_per_year, vacation_days_used, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.CompanyID, emp.FullName, emp.Email, emp.ContractType,
		emp.GrossSalary, emp.NetSalary, emp.MonthlyCostTotal,
		emp.HourlyCostRate, emp.HourlyRateEmployee, emp.ClientHourlyRate,
		emp.VacationCostMonthly, emp.VacationCostAnnual,
		emp.VacationDaysPerYear, emp.VacationDaysUsed, emp.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err, "uk_employees_company_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			full_name = $3, email = $4, contract_type = $5,
			gross_salary = $6, net_salary = $7, monthly_cost_total = $8,
			hourly_cost_rate = $9, hourly_rate_employee = $10, client_hourly_rate = $11,
			vacation_cost_monthly = $12, vacation_cost_annual = $13,
			vacation_days_per_year = $14, vacation_days_used = $15,
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.CompanyID, emp.FullName, emp.Email, emp.ContractType,
		emp.GrossSalary, emp.NetSalary, emp.MonthlyCostTotal,
		emp.HourlyCostRate, emp.HourlyRateEmployee, emp.ClientHourlyRate,
		emp.VacationCostMonthly, emp.VacationCostAnnual,
		emp.VacationDaysPerYear, emp.VacationDaysUsed,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err, "uk_employees_company_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND deleted_at IS NULL`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) SetActive(ctx context.Context, id, companyID string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET is_active = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`, id, companyID, active)
	if err != nil {
		return fmt.Errorf("failed to set employee active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
