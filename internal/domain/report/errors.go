package report

import "errors"

var (
	ErrReportNotFound = errors.New("monthly report not found")
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
	ErrInvalidYear    = errors.New("year is out of range")
)
