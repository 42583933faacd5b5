package employee

import (
	"time"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/salary"
)

// Employee carries the live employment attributes. Monetary fields are
// minor currency units. Live fields may change at any time; monthly
// report snapshots freeze their own copies so closed months never move.
type Employee struct {
	ID                  string
	CompanyID           string
	FullName            string
	Email               string
	ContractType        salary.ContractType
	GrossSalary         int64
	NetSalary           int64
	MonthlyCostTotal    int64 // employer cost including vacation accrual
	HourlyCostRate      int64 // internal cost per hour
	HourlyRateEmployee  int64 // rate paid to the employee (B2B vacation base)
	ClientHourlyRate    int64 // default rate billed to clients
	VacationCostMonthly int64
	VacationCostAnnual  int64
	VacationDaysPerYear int64
	VacationDaysUsed    int64
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time
}
