package project

import "time"

type Project struct {
	ID         string
	CompanyID  string
	Name       string
	ClientName string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Assignment links an employee to a project. BillingRate and CostRate
// override the employee's default rates when set; nil means fall back
// to the employee record.
type Assignment struct {
	ID          string
	CompanyID   string
	ProjectID   string
	EmployeeID  string
	BillingRate *int64 // per hour, minor units, billed to the client
	CostRate    *int64 // per hour, minor units, internal cost
	StartDate   time.Time
	EndDate     *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	ProjectName  *string

	// Resolved rates: the override when set, else the employee default.
	EffectiveBillingRate int64
	EffectiveCostRate    int64
}
