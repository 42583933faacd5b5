package response

import (
	"errors"
	"net/http"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/auth"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/employee"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/fixedcost"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/project"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/report"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/salary"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/timesheet"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/user"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Salary domain errors
	case errors.Is(err, salary.ErrUnknownContractType):
		BadRequest(w, "Unknown contract type", nil)
	case errors.Is(err, salary.ErrUnknownDirection):
		BadRequest(w, "Unknown calculation direction", nil)
	case errors.Is(err, salary.ErrNegativeAmount):
		BadRequest(w, "Amount must be non-negative", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")
	case errors.Is(err, employee.ErrMissingSalaryAmount):
		BadRequest(w, "Either gross or net salary is required", nil)
	case errors.Is(err, employee.ErrEmployeeAlreadyActive):
		Conflict(w, "Employee is already active")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrAssignmentNotFound):
		NotFound(w, "Project assignment not found")
	case errors.Is(err, project.ErrAssignmentExists):
		Conflict(w, "Employee is already assigned to this project")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timesheet.ErrInvalidHours):
		BadRequest(w, "Hours must be non-negative", nil)

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Monthly report not found")
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)
	case errors.Is(err, report.ErrInvalidYear):
		BadRequest(w, "Year is out of range", nil)

	// Fixed cost domain errors
	case errors.Is(err, fixedcost.ErrFixedCostNotFound):
		NotFound(w, "Fixed cost not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
