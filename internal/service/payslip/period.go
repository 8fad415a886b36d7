package payslip

import (
	"fmt"
	"strings"
	"time"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/payroll"
)

const (
	monthLabelLayout = "January 2006"
	cycleLabelLayout = "2 January 2006"
	cycleSeparator   = " to "
)

// SalaryPeriod is an inclusive calendar date range. Start sits at 00:00:00
// and End at 23:59:59 of their respective days.
type SalaryPeriod struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod parses a human-readable salary-period label. Two shapes are
// accepted: "January 2026" for a whole-month period and
// "21 January 2026 to 20 February 2026" for a custom cycle.
func ResolvePeriod(label string) (SalaryPeriod, error) {
	label = strings.TrimSpace(label)

	if strings.Contains(label, cycleSeparator) {
		parts := strings.SplitN(label, cycleSeparator, 2)
		start, err := time.Parse(cycleLabelLayout, strings.TrimSpace(parts[0]))
		if err != nil {
			return SalaryPeriod{}, fmt.Errorf("%w: %q", payroll.ErrInvalidPeriodFormat, label)
		}
		end, err := time.Parse(cycleLabelLayout, strings.TrimSpace(parts[1]))
		if err != nil {
			return SalaryPeriod{}, fmt.Errorf("%w: %q", payroll.ErrInvalidPeriodFormat, label)
		}
		if end.Before(start) {
			return SalaryPeriod{}, fmt.Errorf("%w: %q ends before it starts", payroll.ErrInvalidPeriodFormat, label)
		}
		return SalaryPeriod{
			Start: start,
			End:   endOfDay(end),
		}, nil
	}

	month, err := time.Parse(monthLabelLayout, label)
	if err != nil {
		return SalaryPeriod{}, fmt.Errorf("%w: %q", payroll.ErrInvalidPeriodFormat, label)
	}
	return SalaryPeriod{
		Start: month,
		End:   month.AddDate(0, 1, 0).Add(-time.Second),
	}, nil
}

// TotalCalendarDays is the inclusive day count of the period.
func (p SalaryPeriod) TotalCalendarDays() int {
	return int(p.End.Sub(p.Start)/(24*time.Hour)) + 1
}

// Contains reports whether t falls inside the period.
func (p SalaryPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Days returns the midnight of every calendar day of the period, in order.
func (p SalaryPeriod) Days() []time.Time {
	days := make([]time.Time, 0, p.TotalCalendarDays())
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Label formats the period back into one of the two supported label shapes.
// A resolved label round-trips to an equivalent parse.
func (p SalaryPeriod) Label() string {
	if p.isWholeMonth() {
		return p.Start.Format(monthLabelLayout)
	}
	return p.Start.Format(cycleLabelLayout) + cycleSeparator + p.End.Format(cycleLabelLayout)
}

func (p SalaryPeriod) isWholeMonth() bool {
	firstOfMonth := time.Date(p.Start.Year(), p.Start.Month(), 1, 0, 0, 0, 0, p.Start.Location())
	return p.Start.Equal(firstOfMonth) && p.End.Equal(firstOfMonth.AddDate(0, 1, 0).Add(-time.Second))
}

func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
}
