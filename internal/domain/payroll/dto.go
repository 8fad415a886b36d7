package payroll

import (
	"github.com/kalea-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayslipRequest struct {
	EmployeeID string `json:"employee_id"`
	// Period is either "January 2026" or "21 January 2026 to 20 February 2026".
	Period string `json:"period"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayBuckets is the per-status day tally of a period. NonLOPLeave days are a
// subset of Full; LOPLeave days are a subset of Absent. Skipped days had no
// configured shift day and were excluded from every other bucket.
type DayBuckets struct {
	TotalCalendarDays int `json:"total_calendar_days"`
	WeeklyOff         int `json:"weekly_off"`
	Holiday           int `json:"holiday"`
	Full              int `json:"full"`
	Half              int `json:"half"`
	Absent            int `json:"absent"`
	NonLOPLeave       int `json:"non_lop_leave"`
	LOPLeave          int `json:"lop_leave"`
	Skipped           int `json:"skipped"`
}

type PayslipLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PayslipResponse is the structured breakdown consumed by the downstream
// document renderer. It is a pure value object; nothing here is persisted.
type PayslipResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	PeriodLabel  string `json:"period_label"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`

	Days DayBuckets `json:"days"`

	PaidUnits  decimal.Decimal `json:"paid_units"`
	LOPUnits   decimal.Decimal `json:"lop_units"`
	PerDayRate decimal.Decimal `json:"per_day_rate"`

	Basic           decimal.Decimal `json:"basic"`
	Earnings        []PayslipLine   `json:"earnings"`
	EarningsTotal   decimal.Decimal `json:"earnings_total"`
	Deductions      []PayslipLine   `json:"deductions"`
	DeductionsTotal decimal.Decimal `json:"deductions_total"`
	LOPAmount       decimal.Decimal `json:"lop_amount"`
	NetPay          decimal.Decimal `json:"net_pay"`

	// Diagnostics are non-fatal warnings raised during computation, e.g. a
	// day-bucket reconciliation mismatch or skipped unscheduled days.
	Diagnostics []string `json:"diagnostics,omitempty"`
}
