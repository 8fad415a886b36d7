package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines read access to payroll configuration and the
// period-scoped earning/deduction records.
type PayrollRepository interface {
	GetPayGradeByEmployeeID(ctx context.Context, employeeID string) (PayGrade, error)

	// ListBonusAllocations returns bonuses whose effective date falls
	// inside [from, to].
	ListBonusAllocations(ctx context.Context, employeeID string, from, to time.Time) ([]BonusAllocation, error)

	// ListApprovedReimbursements returns approved claims dated inside
	// [from, to].
	ListApprovedReimbursements(ctx context.Context, employeeID string, from, to time.Time) ([]Reimbursement, error)

	// ListDueAdvanceInstallments returns unsettled installments scheduled
	// for the given month.
	ListDueAdvanceInstallments(ctx context.Context, employeeID string, month time.Month, year int) ([]AdvanceInstallment, error)
}
