package payslip

import (
	"strings"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// DeductionsBreakdown itemizes the pay-grade deductions and the advance
// installments due in the period. The LOP amount is not part of it; proration
// tracks that separately.
type DeductionsBreakdown struct {
	Lines []payroll.PayslipLine
	Total decimal.Decimal
}

// CalculateDeductions resolves the pay grade's deduction rules plus the
// salary-advance installments whose due month matches the period's starting
// month.
func CalculateDeductions(grade payroll.PayGrade, advances []payroll.AdvanceInstallment, period SalaryPeriod) DeductionsBreakdown {
	gross := grade.GrossSalary
	basic := BasicSalary(gross, grade.BasicPercent)

	var b DeductionsBreakdown

	for _, comp := range grade.Deductions {
		amount := deductionAmount(comp, basic, gross)
		b.Lines = append(b.Lines, payroll.PayslipLine{Name: comp.Name, Amount: amount})
		b.Total = b.Total.Add(amount)
	}

	for _, inst := range advances {
		if inst.Settled || inst.DueMonth != period.Start.Month() || inst.DueYear != period.Start.Year() {
			continue
		}
		b.Lines = append(b.Lines, payroll.PayslipLine{Name: "Salary Advance Repayment", Amount: inst.Amount})
		b.Total = b.Total.Add(inst.Amount)
	}

	return b
}

func deductionAmount(comp payroll.PayComponent, basic, gross decimal.Decimal) decimal.Decimal {
	if comp.Kind == payroll.ComponentKindFixed {
		return comp.Value
	}
	return comp.Value.Mul(deductionBase(comp, basic, gross)).Div(hundred)
}

// deductionBase mirrors allowanceBase: explicit Base wins, and the legacy
// shim puts deductions named *PF* on basic regardless of configured kind.
func deductionBase(comp payroll.PayComponent, basic, gross decimal.Decimal) decimal.Decimal {
	switch comp.Base {
	case payroll.BaseBasic:
		return basic
	case payroll.BaseGross:
		return gross
	}
	if strings.Contains(strings.ToUpper(comp.Name), "PF") {
		return basic
	}
	if comp.Kind == payroll.ComponentKindPercentOfBasic {
		return basic
	}
	return gross
}
