package project

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrAssignmentNotFound = errors.New("project assignment not found")
	ErrAssignmentExists   = errors.New("employee is already assigned to this project")
)
