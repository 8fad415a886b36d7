package payslip

import (
	"testing"
	"time"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(day time.Time, h, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, min, 0, 0, time.UTC)
}

func clock(h, min int) time.Time {
	return time.Date(0, time.January, 1, h, min, 0, 0, time.UTC)
}

// weeklyShift builds a template covering all seven weekdays with the given
// work window; weeklyOffDays are ISO weekdays (1=Monday..7=Sunday).
func weeklyShift(start, end time.Time, weeklyOffDays ...int) schedule.WorkShift {
	offs := make(map[int]bool)
	for _, d := range weeklyOffDays {
		offs[d] = true
	}
	shift := schedule.WorkShift{ID: "shift-1", Name: "General"}
	for dow := 1; dow <= 7; dow++ {
		shift.Days = append(shift.Days, schedule.ShiftDay{
			DayOfWeek:   dow,
			StartTime:   start,
			EndTime:     end,
			IsWeeklyOff: offs[dow],
		})
	}
	return shift
}

func flexiblePolicy() attendance.AttendancePolicy {
	return attendance.AttendancePolicy{
		WorkingHoursType:          attendance.WorkingHoursFlexible,
		CheckinBeginBeforeMin:     60,
		CheckoutEndAfterMin:       120,
		CheckinGraceMin:           10,
		EarlyCheckoutBeforeEndMin: 30,
		MaxLateCheckInMin:         60,
		HalfDayThresholdMinutes:   240,
	}
}

func fixedPolicy() attendance.AttendancePolicy {
	p := flexiblePolicy()
	p.WorkingHoursType = attendance.WorkingHoursFixed
	p.LateMarkCount = 3
	p.MarkAsOnLateMarkExceeded = attendance.DayStatusHalf
	return p
}

func punchesAt(day time.Time, times ...[2]int) []attendance.PunchLog {
	logs := make([]attendance.PunchLog, 0, len(times))
	for _, t := range times {
		logs = append(logs, attendance.PunchLog{EmployeeID: "emp-1", Timestamp: at(day, t[0], t[1])})
	}
	return logs
}

// boundaryPunches yields an in and an out punch exactly at the shift window
// boundaries for every scheduled working day of the period, except the
// dates listed in skip (formatted 2006-01-02).
func boundaryPunches(period SalaryPeriod, shift schedule.WorkShift, skip ...string) []attendance.PunchLog {
	skipped := make(map[string]bool)
	for _, s := range skip {
		skipped[s] = true
	}
	var logs []attendance.PunchLog
	for _, day := range period.Days() {
		sd, ok := shift.DayFor(schedule.ISOWeekday(day))
		if !ok || sd.IsWeeklyOff || skipped[day.Format("2006-01-02")] {
			continue
		}
		logs = append(logs,
			attendance.PunchLog{EmployeeID: "emp-1", Timestamp: at(day, sd.StartTime.Hour(), sd.StartTime.Minute())},
			attendance.PunchLog{EmployeeID: "emp-1", Timestamp: at(day, sd.EndTime.Hour(), sd.EndTime.Minute())},
		)
	}
	return logs
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(dec(want)), "want %s, got %s", want, got)
}
