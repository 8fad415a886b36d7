package payslip

import (
	"time"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/schedule"
)

// ShiftFrame holds the expected work window and the policy-driven tolerance
// boundaries derived for one calendar day.
type ShiftFrame struct {
	ShiftStart time.Time
	ShiftEnd   time.Time

	// EarliestIn and LatestOut bound which punch logs are considered.
	EarliestIn time.Time
	LatestOut  time.Time

	// GraceEnd is the latest on-time check-in; a first punch in
	// (GraceEnd, LateEnd] is a late mark, after LateEnd it is very late.
	GraceEnd time.Time
	LateEnd  time.Time

	// EarlyOutStart is the earliest check-out not treated as leaving early.
	EarlyOutStart time.Time

	FullShiftMinutes int
}

// BuildShiftFrame derives the frame for day from the employee's shift
// template and policy. ok is false when the weekday has no configured
// ShiftDay; such a day cannot be evaluated at all.
func BuildShiftFrame(day time.Time, shift schedule.WorkShift, policy attendance.AttendancePolicy) (ShiftFrame, bool) {
	sd, ok := shift.DayFor(schedule.ISOWeekday(day))
	if !ok {
		return ShiftFrame{}, false
	}

	start := atClock(day, sd.StartTime)
	end := atClock(day, sd.EndTime)
	if !end.After(start) {
		// Overnight shift: checkout on the next calendar day.
		end = end.AddDate(0, 0, 1)
	}

	return ShiftFrame{
		ShiftStart:       start,
		ShiftEnd:         end,
		EarliestIn:       start.Add(-minutes(policy.CheckinBeginBeforeMin)),
		LatestOut:        end.Add(minutes(policy.CheckoutEndAfterMin)),
		GraceEnd:         start.Add(minutes(policy.CheckinGraceMin)),
		LateEnd:          start.Add(minutes(policy.CheckinGraceMin + policy.MaxLateCheckInMin)),
		EarlyOutStart:    end.Add(-minutes(policy.EarlyCheckoutBeforeEndMin)),
		FullShiftMinutes: int(end.Sub(start).Minutes()),
	}, true
}

func atClock(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
