package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	CompanyID  string
	BranchID   string
	PayGradeID *string
	Name       string
	Code       string
	HireDate   time.Time

	// GrossSalary is the employee-level override. When nil the pay grade's
	// gross salary applies; when both are missing payslip generation fails.
	GrossSalary *decimal.Decimal

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
