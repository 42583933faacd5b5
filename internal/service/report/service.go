package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/employee"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/project"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/report"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/timesheet"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/database"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"
	"github.com/softhouse-dev/backoffice-backend-go/internal/repository/postgresql"
)

type ReportServiceImpl struct {
	db            *database.DB
	reportRepo    report.ReportRepository
	employeeRepo  employee.EmployeeRepository
	timesheetRepo timesheet.TimesheetRepository
	projectRepo   project.ProjectRepository
	reconciler    *Reconciler
}

func NewReportService(
	db *database.DB,
	reportRepo report.ReportRepository,
	employeeRepo employee.EmployeeRepository,
	timesheetRepo timesheet.TimesheetRepository,
	projectRepo project.ProjectRepository,
	reconciler *Reconciler,
) report.ReportService {
	return &ReportServiceImpl{
		db:            db,
		reportRepo:    reportRepo,
		employeeRepo:  employeeRepo,
		timesheetRepo: timesheetRepo,
		projectRepo:   projectRepo,
		reconciler:    reconciler,
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

func validateMonth(year, month int) error {
	var errs validator.ValidationErrors
	if year < 2000 || year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *ReportServiceImpl) GetMonthlyReport(ctx context.Context, employeeID string, year, month int) (report.MonthlyReportResponse, error) {
	if err := validateMonth(year, month); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	snapshot, err := s.reportRepo.GetSnapshot(ctx, companyID, employeeID, year, month)
	if err == nil {
		return snapshotResponse(snapshot), nil
	}
	if !errors.Is(err, report.ErrReportNotFound) {
		return report.MonthlyReportResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}
	entries, err := s.timesheetRepo.ListEmployeeMonthEntries(ctx, companyID, employeeID, year, month)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	figures := s.reconciler.FromLive(emp, entries)
	return liveResponse(emp, figures, year, month), nil
}

func (s *ReportServiceImpl) ListMonthlyReports(ctx context.Context, year, month int) ([]report.MonthlyReportResponse, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.reportRepo.ListSnapshots(ctx, companyID, year, month)
	if err != nil {
		return nil, err
	}
	snapshotted := make(map[string]struct{}, len(snapshots))

	responses := make([]report.MonthlyReportResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		snapshotted[snapshot.EmployeeID] = struct{}{}
		responses = append(responses, snapshotResponse(snapshot))
	}

	// Active employees without a saved month show live figures.
	employees, err := s.employeeRepo.ListByCompany(ctx, companyID, true)
	if err != nil {
		return nil, err
	}
	for _, emp := range employees {
		if _, ok := snapshotted[emp.ID]; ok {
			continue
		}
		entries, err := s.timesheetRepo.ListEmployeeMonthEntries(ctx, companyID, emp.ID, year, month)
		if err != nil {
			return nil, err
		}
		figures := s.reconciler.FromLive(emp, entries)
		responses = append(responses, liveResponse(emp, figures, year, month))
	}
	return responses, nil
}

func (s *ReportServiceImpl) SaveMonthlyHours(ctx context.Context, req report.SaveMonthlyHoursRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	byEmployee := make(map[string][]report.MonthlyHoursEntry)
	for _, entry := range req.Entries {
		byEmployee[entry.EmployeeID] = append(byEmployee[entry.EmployeeID], entry)
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)

		for employeeID, entries := range byEmployee {
			emp, err := s.employeeRepo.GetByID(txCtx, employeeID, companyID)
			if err != nil {
				return err
			}

			rows := make([]timesheet.TimeEntry, 0, len(entries))
			for _, entry := range entries {
				assignment, err := s.projectRepo.GetAssignmentByID(txCtx, entry.AssignmentID, companyID)
				if err != nil {
					return err
				}
				if assignment.EmployeeID != employeeID {
					return validator.ValidationErrors{{
						Field:   "entries",
						Message: fmt.Sprintf("assignment %s does not belong to employee %s", entry.AssignmentID, employeeID),
					}}
				}
				rows = append(rows, timesheet.TimeEntry{
					CompanyID:    companyID,
					AssignmentID: assignment.ID,
					EmployeeID:   employeeID,
					EntryDate:    monthStart,
					Hours:        entry.Hours,
				})
			}

			if err := s.timesheetRepo.ReplaceMonthEntries(txCtx, companyID, employeeID, req.Year, req.Month, rows); err != nil {
				return err
			}
			if err := s.freezeSnapshot(txCtx, companyID, emp, req.Year, req.Month); err != nil {
				return err
			}
		}
		return nil
	})
}

// freezeSnapshot recomputes live figures for the month and writes them
// as the frozen report, carrying a prior manual cost override forward.
func (s *ReportServiceImpl) freezeSnapshot(ctx context.Context, companyID string, emp employee.Employee, year, month int) error {
	entries, err := s.timesheetRepo.ListEmployeeMonthEntries(ctx, companyID, emp.ID, year, month)
	if err != nil {
		return err
	}
	figures := s.reconciler.FromLive(emp, entries)

	snapshot := report.MonthlyEmployeeReport{
		CompanyID:        companyID,
		EmployeeID:       emp.ID,
		Year:             year,
		Month:            month,
		Hours:            figures.Hours,
		ClientHourlyRate: WeightedHourlyRate(figures.Revenue, figures.Hours),
		Revenue:          figures.Revenue,
		Cost:             figures.Cost,
		Profit:           figures.Profit,
	}

	existing, err := s.reportRepo.GetSnapshot(ctx, companyID, emp.ID, year, month)
	if err == nil && existing.ActualCost != nil {
		snapshot.ActualCost = existing.ActualCost
		snapshot.Profit = snapshot.Revenue - *existing.ActualCost
	} else if err != nil && !errors.Is(err, report.ErrReportNotFound) {
		return err
	}

	_, err = s.reportRepo.UpsertSnapshot(ctx, snapshot)
	return err
}

func (s *ReportServiceImpl) UpdateActualCost(ctx context.Context, req report.UpdateActualCostRequest) (report.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	snapshot, err := s.reportRepo.GetSnapshot(ctx, companyID, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	cost := snapshot.Cost
	if req.ActualCost != nil {
		cost = *req.ActualCost
	}
	profit := snapshot.Revenue - cost

	updated, err := s.reportRepo.UpdateActualCost(ctx, companyID, req.EmployeeID, req.Year, req.Month, req.ActualCost, profit)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}
	return snapshotResponse(updated), nil
}

func (s *ReportServiceImpl) PropagateAllChanges(ctx context.Context, year, month int) (report.PropagateResult, error) {
	if err := validateMonth(year, month); err != nil {
		return report.PropagateResult{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return report.PropagateResult{}, err
	}

	snapshots, err := s.reportRepo.ListSnapshots(ctx, companyID, year, month)
	if err != nil {
		return report.PropagateResult{}, err
	}

	result := report.PropagateResult{Errors: []report.PropagateError{}}
	for _, snapshot := range snapshots {
		emp, err := s.employeeRepo.GetByID(ctx, snapshot.EmployeeID, companyID)
		if err != nil {
			slog.Warn("propagate skipped employee",
				"employee_id", snapshot.EmployeeID, "year", year, "month", month, "error", err)
			result.Errors = append(result.Errors, report.PropagateError{
				EmployeeID: snapshot.EmployeeID,
				Message:    err.Error(),
			})
			continue
		}
		if err := s.freezeSnapshot(ctx, companyID, emp, year, month); err != nil {
			slog.Warn("propagate failed for employee",
				"employee_id", snapshot.EmployeeID, "year", year, "month", month, "error", err)
			result.Errors = append(result.Errors, report.PropagateError{
				EmployeeID: snapshot.EmployeeID,
				Message:    err.Error(),
			})
			continue
		}
		result.UpdatedCount++
	}
	return result, nil
}

func snapshotResponse(snapshot report.MonthlyEmployeeReport) report.MonthlyReportResponse {
	return report.MonthlyReportResponse{
		EmployeeID:   snapshot.EmployeeID,
		EmployeeName: snapshot.EmployeeName,
		Year:         snapshot.Year,
		Month:        snapshot.Month,
		Hours:        snapshot.Hours,
		Revenue:      snapshot.Revenue,
		Cost:         snapshot.Cost,
		ActualCost:   snapshot.ActualCost,
		Profit:       snapshot.EffectiveProfit(),
		IsSnapshot:   true,
	}
}

func liveResponse(emp employee.Employee, figures report.MonthlyFigures, year, month int) report.MonthlyReportResponse {
	name := emp.FullName
	return report.MonthlyReportResponse{
		EmployeeID:   emp.ID,
		EmployeeName: &name,
		Year:         year,
		Month:        month,
		Hours:        figures.Hours,
		Revenue:      figures.Revenue,
		Cost:         figures.Cost,
		Profit:       figures.Profit,
		IsSnapshot:   false,
	}
}
