package user

import "time"

type User struct {
	ID           string
	CompanyID    string
	Email        string
	FullName     string
	PasswordHash *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)
