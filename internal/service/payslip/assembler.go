package payslip

import (
	"github.com/google/uuid"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// AssemblePayslip combines proration, earnings and deductions into the final
// net-pay figure and breakdown. Pure function of its inputs aside from the
// generated payslip ID.
func AssemblePayslip(emp employee.Employee, period SalaryPeriod, cls ClassificationResult, pro Proration, earn EarningsBreakdown, ded DeductionsBreakdown) payroll.PayslipResponse {
	netRaw := earn.Total.Sub(ded.Total.Add(pro.LOPAmount))
	if netRaw.IsNegative() {
		netRaw = decimal.Zero
	}

	var diags []string
	diags = append(diags, cls.Diagnostics...)
	diags = append(diags, pro.Diagnostics...)

	return payroll.PayslipResponse{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		PeriodLabel:  period.Label(),
		PeriodStart:  period.Start.Format("2006-01-02"),
		PeriodEnd:    period.End.Format("2006-01-02"),
		Days: payroll.DayBuckets{
			TotalCalendarDays: period.TotalCalendarDays(),
			WeeklyOff:         cls.Tally.WeeklyOff,
			Holiday:           cls.Tally.Holiday,
			Full:              cls.Tally.Full,
			Half:              cls.Tally.Half,
			Absent:            cls.Tally.Absent,
			NonLOPLeave:       cls.Tally.NonLOPLeave,
			LOPLeave:          cls.Tally.LOPLeave,
			Skipped:           cls.Tally.Skipped,
		},
		PaidUnits:       pro.PaidUnits,
		LOPUnits:        pro.LOPUnits,
		PerDayRate:      pro.PerDayRate,
		Basic:           earn.Basic,
		Earnings:        earn.Lines,
		EarningsTotal:   earn.Total,
		Deductions:      ded.Lines,
		DeductionsTotal: ded.Total,
		LOPAmount:       pro.LOPAmount,
		// Round half up to the nearest whole currency unit.
		NetPay:      netRaw.Round(0),
		Diagnostics: diags,
	}
}
