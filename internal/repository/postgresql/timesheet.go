package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/timesheet"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

const timeEntryColumns = `id, company_id, assignment_id, employee_id, entry_date, hours, note, created_at, updated_at`

func scanTimeEntry(row pgx.Row) (timesheet.TimeEntry, error) {
	var e timesheet.TimeEntry
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.AssignmentID, &e.EmployeeID,
		&e.EntryDate, &e.Hours, &e.Note, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *timesheetRepository) Create(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (company_id, assignment_id, employee_id, entry_date, hours, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + timeEntryColumns

	created, err := scanTimeEntry(q.QueryRow(ctx, query,
		entry.CompanyID, entry.AssignmentID, entry.EmployeeID, entry.EntryDate, entry.Hours, entry.Note,
	))
	if err != nil {
		return timesheet.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}
	return created, nil
}

func (r *timesheetRepository) Update(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries SET hours = $3, note = $4, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING ` + timeEntryColumns

	updated, err := scanTimeEntry(q.QueryRow(ctx, query, entry.ID, entry.CompanyID, entry.Hours, entry.Note))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.TimeEntry{}, timesheet.ErrTimeEntryNotFound
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to update time entry: %w", err)
	}
	return updated, nil
}

func (r *timesheetRepository) GetByID(ctx context.Context, id, companyID string) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id = $1 AND company_id = $2`

	e, err := scanTimeEntry(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.TimeEntry{}, timesheet.ErrTimeEntryNotFound
		}
		return timesheet.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}
	return e, nil
}

func (r *timesheetRepository) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimeEntryNotFound
	}
	return nil
}

func (r *timesheetRepository) ListEmployeeEntries(ctx context.Context, companyID, employeeID string, year, month int) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE company_id = $1 AND employee_id = $2
		  AND EXTRACT(YEAR FROM entry_date) = $3 AND EXTRACT(MONTH FROM entry_date) = $4
		ORDER BY entry_date`

	rows, err := q.Query(ctx, query, companyID, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// monthEntryQuery resolves effective rates per entry: the assignment
// override when set, otherwise the employee default.
const monthEntryQuery = `
	SELECT t.employee_id, a.project_id, t.entry_date, t.hours,
		   COALESCE(a.billing_rate, e.client_hourly_rate) AS billing_rate,
		   COALESCE(a.cost_rate, e.hourly_cost_rate) AS cost_rate
	FROM time_entries t
	JOIN project_assignments a ON a.id = t.assignment_id
	JOIN employees e ON e.id = t.employee_id
	WHERE t.company_id = $1
	  AND EXTRACT(YEAR FROM t.entry_date) = $2 AND EXTRACT(MONTH FROM t.entry_date) = $3`

func (r *timesheetRepository) ListMonthEntries(ctx context.Context, companyID string, year, month int) ([]timesheet.MonthEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, monthEntryQuery+` ORDER BY t.employee_id, t.entry_date`, companyID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list month entries: %w", err)
	}
	defer rows.Close()

	return collectMonthEntries(rows)
}

func (r *timesheetRepository) ListEmployeeMonthEntries(ctx context.Context, companyID, employeeID string, year, month int) ([]timesheet.MonthEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, monthEntryQuery+` AND t.employee_id = $4 ORDER BY t.entry_date`, companyID, year, month, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee month entries: %w", err)
	}
	defer rows.Close()

	return collectMonthEntries(rows)
}

func collectMonthEntries(rows pgx.Rows) ([]timesheet.MonthEntry, error) {
	var entries []timesheet.MonthEntry
	for rows.Next() {
		var e timesheet.MonthEntry
		if err := rows.Scan(&e.EmployeeID, &e.ProjectID, &e.EntryDate, &e.Hours, &e.BillingRate, &e.CostRate); err != nil {
			return nil, fmt.Errorf("failed to scan month entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *timesheetRepository) ReplaceMonthEntries(ctx context.Context, companyID, employeeID string, year, month int, entries []timesheet.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		DELETE FROM time_entries
		WHERE company_id = $1 AND employee_id = $2
		  AND EXTRACT(YEAR FROM entry_date) = $3 AND EXTRACT(MONTH FROM entry_date) = $4
	`, companyID, employeeID, year, month)
	if err != nil {
		return fmt.Errorf("failed to clear month entries: %w", err)
	}

	for _, entry := range entries {
		_, err := q.Exec(ctx, `
			INSERT INTO time_entries (company_id, assignment_id, employee_id, entry_date, hours, note)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, entry.CompanyID, entry.AssignmentID, entry.EmployeeID, entry.EntryDate, entry.Hours, entry.Note)
		if err != nil {
			return fmt.Errorf("failed to insert month entry: %w", err)
		}
	}
	return nil
}
