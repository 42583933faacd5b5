package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/project"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/timesheet"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	timesheetRepo timesheet.TimesheetRepository
	projectRepo   project.ProjectRepository
}

func NewTimesheetService(timesheetRepo timesheet.TimesheetRepository, projectRepo project.ProjectRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		timesheetRepo: timesheetRepo,
		projectRepo:   projectRepo,
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

func (s *TimesheetServiceImpl) Create(ctx context.Context, req timesheet.CreateTimeEntryRequest) (timesheet.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	assignment, err := s.projectRepo.GetAssignmentByID(ctx, req.AssignmentID, companyID)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	entryDate, _ := time.Parse("2006-01-02", req.EntryDate)
	created, err := s.timesheetRepo.Create(ctx, timesheet.TimeEntry{
		CompanyID:    companyID,
		AssignmentID: assignment.ID,
		EmployeeID:   assignment.EmployeeID,
		EntryDate:    entryDate,
		Hours:        req.Hours,
		Note:         req.Note,
	})
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}
	return timesheet.NewTimeEntryResponse(created), nil
}

func (s *TimesheetServiceImpl) Update(ctx context.Context, req timesheet.UpdateTimeEntryRequest) (timesheet.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	entry, err := s.timesheetRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}

	if req.Hours != nil {
		entry.Hours = *req.Hours
	}
	if req.Note != nil {
		entry.Note = req.Note
	}

	updated, err := s.timesheetRepo.Update(ctx, entry)
	if err != nil {
		return timesheet.TimeEntryResponse{}, err
	}
	return timesheet.NewTimeEntryResponse(updated), nil
}

func (s *TimesheetServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.timesheetRepo.Delete(ctx, id, companyID)
}

func (s *TimesheetServiceImpl) ListForEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]timesheet.TimeEntryResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be between 1 and 12"}}
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.timesheetRepo.ListEmployeeEntries(ctx, companyID, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]timesheet.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, timesheet.NewTimeEntryResponse(entry))
	}
	return responses, nil
}
