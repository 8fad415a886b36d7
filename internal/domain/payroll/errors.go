package payroll

import "errors"

var (
	// ErrInvalidPeriodFormat means the salary-period label matched neither
	// "January 2006" nor "2 January 2006 to 1 February 2006".
	ErrInvalidPeriodFormat = errors.New("invalid salary period format")

	ErrPayGradeNotFound = errors.New("no pay grade assigned to employee")
)
