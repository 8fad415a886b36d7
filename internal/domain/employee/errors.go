package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrMissingGrossSalary is fatal: payslip generation must never fall
	// back to a zero gross salary.
	ErrMissingGrossSalary = errors.New("no gross salary configured for employee or pay grade")
)
