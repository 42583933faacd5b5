package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/report"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

const reportColumns = `
	r.id, r.company_id, r.employee_id, r.year, r.month,
	r.hours, r.client_hourly_rate, r.revenue, r.cost, r.actual_cost, r.profit,
	r.created_at, r.updated_at, e.full_name`

func scanReport(row pgx.Row) (report.MonthlyEmployeeReport, error) {
	var s report.MonthlyEmployeeReport
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.EmployeeID, &s.Year, &s.Month,
		&s.Hours, &s.ClientHourlyRate, &s.Revenue, &s.Cost, &s.ActualCost, &s.Profit,
		&s.CreatedAt, &s.UpdatedAt, &s.EmployeeName,
	)
	return s, err
}

func (r *reportRepository) GetSnapshot(ctx context.Context, companyID, employeeID string, year, month int) (report.MonthlyEmployeeReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reportColumns + `
		FROM monthly_employee_reports r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.company_id = $1 AND r.employee_id = $2 AND r.year = $3 AND r.month = $4
	`

	s, err := scanReport(q.QueryRow(ctx, query, companyID, employeeID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return report.MonthlyEmployeeReport{}, report.ErrReportNotFound
		}
		return report.MonthlyEmployeeReport{}, fmt.Errorf("failed to get monthly report: %w", err)
	}
	return s, nil
}

func (r *reportRepository) ListSnapshots(ctx context.Context, companyID string, year, month int) ([]report.MonthlyEmployeeReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reportColumns + `
		FROM monthly_employee_reports r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.company_id = $1 AND r.year = $2 AND r.month = $3
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, companyID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly reports: %w", err)
	}
	defer rows.Close()

	var snapshots []report.MonthlyEmployeeReport
	for rows.Next() {
		s, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly report: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func (r *reportRepository) UpsertSnapshot(ctx context.Context, snapshot report.MonthlyEmployeeReport) (report.MonthlyEmployeeReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH upserted AS (
			INSERT INTO monthly_employee_reports (
				company_id, employee_id, year, month,
				hours, client_hourly_rate, revenue, cost, actual_cost, profit
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (employee_id, year, month) DO UPDATE SET
				hours = EXCLUDED.hours,
				client_hourly_rate = EXCLUDED.client_hourly_rate,
				revenue = EXCLUDED.revenue,
				cost = EXCLUDED.cost,
				actual_cost = EXCLUDED.actual_cost,
				profit = EXCLUDED.profit,
				updated_at = NOW()
			RETURNING *
		)
		SELECT ` + reportColumns + `
		FROM upserted r
		JOIN employees e ON e.id = r.employee_id
	`

	s, err := scanReport(q.QueryRow(ctx, query,
		snapshot.CompanyID, snapshot.EmployeeID, snapshot.Year, snapshot.Month,
		snapshot.Hours, snapshot.ClientHourlyRate, snapshot.Revenue, snapshot.Cost,
		snapshot.ActualCost, snapshot.Profit,
	))
	if err != nil {
		return report.MonthlyEmployeeReport{}, fmt.Errorf("failed to upsert monthly report: %w", err)
	}
	return s, nil
}

func (r *reportRepository) UpdateActualCost(ctx context.Context, companyID, employeeID string, year, month int, actualCost *int64, profit int64) (report.MonthlyEmployeeReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE monthly_employee_reports SET
				actual_cost = $5, profit = $6, updated_at = NOW()
			WHERE company_id = $1 AND employee_id = $2 AND year = $3 AND month = $4
			RETURNING *
		)
		SELECT ` + reportColumns + `
		FROM updated r
		JOIN employees e ON e.id = r.employee_id
	`

	s, err := scanReport(q.QueryRow(ctx, query, companyID, employeeID, year, month, actualCost, profit))
	if err != nil {
		if err == pgx.ErrNoRows {
			return report.MonthlyEmployeeReport{}, report.ErrReportNotFound
		}
		return report.MonthlyEmployeeReport{}, fmt.Errorf("failed to update actual cost: %w", err)
	}
	return s, nil
}
