package payslip

import (
	"strings"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	hundred             = decimal.NewFromInt(100)
	defaultBasicPercent = decimal.NewFromInt(50)
)

// EarningsBreakdown itemizes everything an employee earns in a period.
// AllowanceTotal carries only the pay-grade allowances (no bonuses, no
// reimbursements) because the per-day proration rate builds on it.
type EarningsBreakdown struct {
	Basic          decimal.Decimal
	Lines          []payroll.PayslipLine
	AllowanceTotal decimal.Decimal
	Total          decimal.Decimal
}

// BasicSalary is the basic component of gross, rounded to a whole currency
// unit. A zero BasicPercent falls back to the 50% default.
func BasicSalary(gross, basicPercent decimal.Decimal) decimal.Decimal {
	if basicPercent.IsZero() {
		basicPercent = defaultBasicPercent
	}
	return gross.Mul(basicPercent).Div(hundred).Round(0)
}

// CalculateEarnings resolves the pay grade's allowance rules, the bonuses
// effective in the period and the approved reimbursements dated in it.
func CalculateEarnings(grade payroll.PayGrade, bonuses []payroll.BonusAllocation, reimbursements []payroll.Reimbursement, period SalaryPeriod) EarningsBreakdown {
	gross := grade.GrossSalary
	basic := BasicSalary(gross, grade.BasicPercent)

	b := EarningsBreakdown{Basic: basic, Total: basic}

	for _, comp := range grade.Allowances {
		amount := allowanceAmount(comp, basic, gross)
		b.Lines = append(b.Lines, payroll.PayslipLine{Name: comp.Name, Amount: amount})
		b.AllowanceTotal = b.AllowanceTotal.Add(amount)
	}
	b.Total = b.Total.Add(b.AllowanceTotal)

	for _, bonus := range bonuses {
		if !period.Contains(bonus.EffectiveDate) {
			continue
		}
		base := basic
		if bonus.Base == payroll.BaseGross {
			base = gross
		}
		amount := base.Mul(bonus.Percent).Div(hundred)
		b.Lines = append(b.Lines, payroll.PayslipLine{Name: bonus.Name, Amount: amount})
		b.Total = b.Total.Add(amount)
	}

	reimbursed := decimal.Zero
	for _, r := range reimbursements {
		if r.Status != payroll.ReimbursementStatusApproved || !period.Contains(r.Date) {
			continue
		}
		reimbursed = reimbursed.Add(r.Amount)
	}
	if reimbursed.IsPositive() {
		b.Lines = append(b.Lines, payroll.PayslipLine{Name: "Reimbursements", Amount: reimbursed})
		b.Total = b.Total.Add(reimbursed)
	}

	return b
}

func allowanceAmount(comp payroll.PayComponent, basic, gross decimal.Decimal) decimal.Decimal {
	if comp.Kind == payroll.ComponentKindFixed {
		return comp.Value
	}
	return comp.Value.Mul(allowanceBase(comp, basic, gross)).Div(hundred)
}

// allowanceBase picks the percentage base. The explicit Base field wins;
// without one, allowances named *HRA* compute on basic even when configured
// as percent-of-gross. The name check is the compatibility shim for grades
// configured before Base existed.
func allowanceBase(comp payroll.PayComponent, basic, gross decimal.Decimal) decimal.Decimal {
	switch comp.Base {
	case payroll.BaseBasic:
		return basic
	case payroll.BaseGross:
		return gross
	}
	if strings.Contains(strings.ToUpper(comp.Name), "HRA") {
		return basic
	}
	if comp.Kind == payroll.ComponentKindPercentOfBasic {
		return basic
	}
	return gross
}
