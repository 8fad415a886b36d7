package response

import (
	"errors"
	"net/http"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/schedule"
	"github.com/kalea-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, payroll.ErrInvalidPeriodFormat):
		BadRequest(w, err.Error(), nil)

	// Missing referenced entities are fatal for payslip generation
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "No work shift assigned to employee")
	case errors.Is(err, attendance.ErrPolicyNotFound):
		NotFound(w, "No attendance policy assigned to employee")
	case errors.Is(err, payroll.ErrPayGradeNotFound):
		NotFound(w, "No pay grade assigned to employee")
	case errors.Is(err, employee.ErrMissingGrossSalary):
		UnprocessableEntity(w, "No gross salary configured for employee or pay grade")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
