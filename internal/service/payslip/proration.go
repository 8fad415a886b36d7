package payslip

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// Proration aggregates day statuses into paid and loss-of-pay units and the
// resulting LOP deduction amount.
type Proration struct {
	PaidUnits  decimal.Decimal
	LOPUnits   decimal.Decimal
	PerDayRate decimal.Decimal
	LOPAmount  decimal.Decimal

	Diagnostics []string
}

// Prorate derives pay units from the day tally. monthlyRate is the basic
// salary plus all non-bonus allowances; dividing it by calendar days (not
// working days) keeps the per-day rate independent of how weekly offs and
// holidays fall in the period.
func Prorate(tally DayTally, totalCalendarDays int, monthlyRate decimal.Decimal) Proration {
	fullDays := decimal.NewFromInt(int64(tally.Full))
	halfDays := decimal.NewFromInt(int64(tally.Half))
	punchAbsent := decimal.NewFromInt(int64(tally.Absent - tally.LOPLeave))
	lopLeave := decimal.NewFromInt(int64(tally.LOPLeave))

	perDayRate := monthlyRate.Div(decimal.NewFromInt(int64(totalCalendarDays)))

	p := Proration{
		PaidUnits:  fullDays.Add(half.Mul(halfDays)),
		LOPUnits:   punchAbsent.Add(half.Mul(halfDays)).Add(lopLeave),
		PerDayRate: perDayRate,
		LOPAmount: perDayRate.Mul(punchAbsent.Add(lopLeave)).
			Add(perDayRate.Mul(half).Mul(halfDays)),
	}

	// Paid and LOP units must reconcile against the period's working days.
	// Skipped days break this on purpose: the mismatch is surfaced rather
	// than papered over. Kept as a warning for now; see DESIGN.md for the
	// open question on promoting it to a hard failure.
	workingDays := decimal.NewFromInt(int64(totalCalendarDays - tally.WeeklyOff - tally.Holiday))
	if !p.PaidUnits.Add(p.LOPUnits).Equal(workingDays) {
		p.Diagnostics = append(p.Diagnostics, fmt.Sprintf(
			"day bucket mismatch: paid units %s + lop units %s do not reconcile against %s working days",
			p.PaidUnits, p.LOPUnits, workingDays))
	}

	return p
}
