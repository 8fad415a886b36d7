package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentKind says how a pay component's value is read.
type ComponentKind string

const (
	ComponentKindFixed          ComponentKind = "fixed"
	ComponentKindPercentOfBasic ComponentKind = "percent_of_basic"
	ComponentKindPercentOfGross ComponentKind = "percent_of_gross"
)

// ComponentBase overrides the percentage base of a component. BaseDefault
// keeps the base implied by the kind, subject to the legacy name shim
// (allowances named *HRA* and deductions named *PF* compute on basic even
// when configured as percent-of-gross).
type ComponentBase string

const (
	BaseDefault ComponentBase = ""
	BaseBasic   ComponentBase = "basic"
	BaseGross   ComponentBase = "gross"
)

// PayComponent is one allowance or deduction rule of a pay grade.
type PayComponent struct {
	ID   string
	Name string
	Kind ComponentKind
	// Value is an absolute amount for fixed components and a percentage
	// (0-100) for percentage components.
	Value decimal.Decimal
	Base  ComponentBase
}

// PayGrade bundles gross salary with allowance and deduction rules.
type PayGrade struct {
	ID          string
	CompanyID   string
	Name        string
	GrossSalary decimal.Decimal
	// BasicPercent is the share of gross paid as basic salary; zero means
	// the 50% default.
	BasicPercent decimal.Decimal
	Allowances   []PayComponent
	Deductions   []PayComponent
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BonusAllocation is a period-scoped extra earning, a percentage of basic or
// gross depending on its configured base.
type BonusAllocation struct {
	ID            string
	EmployeeID    string
	Name          string
	Percent       decimal.Decimal
	Base          ComponentBase
	EffectiveDate time.Time
	CreatedAt     time.Time
}

type ReimbursementStatus string

const (
	ReimbursementStatusPending  ReimbursementStatus = "pending"
	ReimbursementStatusApproved ReimbursementStatus = "approved"
	ReimbursementStatusRejected ReimbursementStatus = "rejected"
)

// Reimbursement is an approved out-of-pocket claim paid back with salary.
type Reimbursement struct {
	ID         string
	EmployeeID string
	Title      string
	Amount     decimal.Decimal
	Date       time.Time
	Status     ReimbursementStatus
	CreatedAt  time.Time
}

// AdvanceInstallment is one scheduled repayment of a salary advance,
// deducted in the month it falls due.
type AdvanceInstallment struct {
	ID         string
	EmployeeID string
	AdvanceID  string
	Amount     decimal.Decimal
	DueMonth   time.Month
	DueYear    int
	Settled    bool
	CreatedAt  time.Time
}
