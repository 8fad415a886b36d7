package payslip

import (
	"fmt"
	"sort"
	"time"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/holiday"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/leave"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/schedule"
)

// DayTally counts days per status. WeeklyOff + Holiday + Full + Half +
// Absent + Skipped always equals the period's calendar days. NonLOPLeave is
// a subset of Full and LOPLeave a subset of Absent; both are tracked
// separately so proration can tell leave-derived absence from punch-derived
// absence.
type DayTally struct {
	WeeklyOff   int
	Holiday     int
	Full        int
	Half        int
	Absent      int
	NonLOPLeave int
	LOPLeave    int
	Skipped     int
}

// DayRecord is the classification of a single calendar day. Rule names the
// precedence rule that decided it.
type DayRecord struct {
	Date    time.Time
	Status  attendance.DayStatus
	Rule    string
	Skipped bool
}

const (
	ruleWeeklyOff      = "weekly_off"
	ruleHoliday        = "holiday"
	ruleRegularisation = "regularisation"
	ruleLeave          = "leave"
	rulePunch          = "punch"
	ruleUnscheduled    = "unscheduled"
)

type ClassifierInput struct {
	Period          SalaryPeriod
	Shift           schedule.WorkShift
	Policy          attendance.AttendancePolicy
	Logs            []attendance.PunchLog
	Holidays        []holiday.PublicHoliday
	Leaves          []leave.LeaveApplication
	Regularisations []attendance.Regularisation
}

type ClassificationResult struct {
	Days        []DayRecord
	Tally       DayTally
	Diagnostics []string
}

// lateMarkState is the accumulator threaded through fixed-hours evaluation.
// It is carried by value: each day's evaluation returns the next state.
type lateMarkState struct {
	Used int
}

// ClassifyPeriod assigns exactly one status to every calendar day of the
// period. Rules apply in fixed precedence, stopping at the first match:
// weekly-off, holiday, approved regularisation, approved leave, punch logs.
// Days whose weekday has no configured ShiftDay are excluded from every
// bucket and reported via a diagnostic.
func ClassifyPeriod(in ClassifierInput) ClassificationResult {
	logs := make([]attendance.PunchLog, len(in.Logs))
	copy(logs, in.Logs)
	sort.Slice(logs, func(i, j int) bool { return logs[i].Timestamp.Before(logs[j].Timestamp) })

	regByDate := make(map[string]attendance.Regularisation, len(in.Regularisations))
	for _, reg := range in.Regularisations {
		if reg.Status != attendance.RegularisationStatusApproved {
			continue
		}
		regByDate[reg.Date.Format("2006-01-02")] = reg
	}

	var res ClassificationResult
	marks := lateMarkState{}

	for _, day := range in.Period.Days() {
		sd, scheduled := in.Shift.DayFor(schedule.ISOWeekday(day))
		if !scheduled {
			res.Tally.Skipped++
			res.Days = append(res.Days, DayRecord{Date: day, Rule: ruleUnscheduled, Skipped: true})
			continue
		}

		if sd.IsWeeklyOff {
			res.Tally.WeeklyOff++
			res.Days = append(res.Days, DayRecord{Date: day, Status: attendance.DayStatusWeeklyOff, Rule: ruleWeeklyOff})
			continue
		}

		if coveredByHoliday(day, in.Holidays) {
			res.Tally.Holiday++
			res.Days = append(res.Days, DayRecord{Date: day, Status: attendance.DayStatusHoliday, Rule: ruleHoliday})
			continue
		}

		if reg, ok := regByDate[day.Format("2006-01-02")]; ok {
			res.bucket(day, reg.ResultingDay, ruleRegularisation)
			continue
		}

		if lv, ok := coveringLeave(day, in.Leaves); ok {
			if lv.Type == leave.LeaveTypeNonLOP {
				res.bucket(day, attendance.DayStatusFull, ruleLeave)
				res.Tally.NonLOPLeave++
			} else {
				res.bucket(day, attendance.DayStatusAbsent, ruleLeave)
				res.Tally.LOPLeave++
			}
			continue
		}

		frame, _ := BuildShiftFrame(day, in.Shift, in.Policy)
		qualifying := logsWithin(logs, frame.EarliestIn, frame.LatestOut)

		var status attendance.DayStatus
		if in.Policy.WorkingHoursType == attendance.WorkingHoursFixed {
			status, marks = classifyFixed(qualifying, frame, in.Policy, marks)
		} else {
			status = classifyFlexible(qualifying, frame, in.Policy)
		}
		res.bucket(day, status, rulePunch)
	}

	if res.Tally.Skipped > 0 {
		res.Diagnostics = append(res.Diagnostics, fmt.Sprintf(
			"%d day(s) had no shift configured for their weekday and were excluded from attendance evaluation", res.Tally.Skipped))
	}

	return res
}

// bucket records a full/half/absent day. Regularisations carry the status
// verbatim, so anything outside the three attendance buckets counts as full.
func (r *ClassificationResult) bucket(day time.Time, status attendance.DayStatus, rule string) {
	switch status {
	case attendance.DayStatusHalf:
		r.Tally.Half++
	case attendance.DayStatusAbsent:
		r.Tally.Absent++
	default:
		status = attendance.DayStatusFull
		r.Tally.Full++
	}
	r.Days = append(r.Days, DayRecord{Date: day, Status: status, Rule: rule})
}

// classifyFlexible cares only about total time between the first and last
// qualifying punch.
func classifyFlexible(logs []attendance.PunchLog, frame ShiftFrame, policy attendance.AttendancePolicy) attendance.DayStatus {
	if len(logs) < 2 {
		return attendance.DayStatusAbsent
	}
	worked := workedMinutes(logs)
	switch {
	case worked < policy.HalfDayThresholdMinutes:
		return attendance.DayStatusAbsent
	case worked >= frame.FullShiftMinutes:
		return attendance.DayStatusFull
	default:
		return attendance.DayStatusHalf
	}
}

// classifyFixed evaluates punctuality violations against the frame
// boundaries and threads the late-mark accumulator: when accumulated marks
// reach the policy's LateMarkCount the configured penalty status applies and
// the counter resets.
func classifyFixed(logs []attendance.PunchLog, frame ShiftFrame, policy attendance.AttendancePolicy, marks lateMarkState) (attendance.DayStatus, lateMarkState) {
	if len(logs) < 2 {
		return attendance.DayStatusAbsent, marks
	}
	worked := workedMinutes(logs)
	if worked < policy.HalfDayThresholdMinutes {
		return attendance.DayStatusAbsent, marks
	}

	first := logs[0].Timestamp
	last := logs[len(logs)-1].Timestamp

	isLateMark := first.After(frame.GraceEnd) && !first.After(frame.LateEnd)
	isVeryLate := first.After(frame.LateEnd)
	isEarlyCheckout := last.Before(frame.EarlyOutStart) && !last.Before(frame.ShiftStart)

	if isEarlyCheckout {
		return attendance.DayStatusHalf, marks
	}
	if isVeryLate {
		if worked >= policy.HalfDayThresholdMinutes {
			return attendance.DayStatusHalf, marks
		}
		return attendance.DayStatusAbsent, marks
	}

	violations := 0
	if isLateMark {
		violations++
	}
	if isEarlyCheckout {
		violations++
	}

	if policy.LateMarkCount > 0 && marks.Used+violations >= policy.LateMarkCount {
		marks.Used = 0
		return policy.MarkAsOnLateMarkExceeded, marks
	}

	marks.Used += violations
	return attendance.DayStatusFull, marks
}

func workedMinutes(logs []attendance.PunchLog) int {
	first := logs[0].Timestamp
	last := logs[len(logs)-1].Timestamp
	return int(last.Sub(first).Minutes())
}

// logsWithin assumes logs are sorted by timestamp.
func logsWithin(logs []attendance.PunchLog, from, to time.Time) []attendance.PunchLog {
	var out []attendance.PunchLog
	for _, l := range logs {
		if l.Timestamp.Before(from) {
			continue
		}
		if l.Timestamp.After(to) {
			break
		}
		out = append(out, l)
	}
	return out
}

func coveredByHoliday(day time.Time, holidays []holiday.PublicHoliday) bool {
	for _, h := range holidays {
		if h.Covers(day) {
			return true
		}
	}
	return false
}

func coveringLeave(day time.Time, leaves []leave.LeaveApplication) (leave.LeaveApplication, bool) {
	for _, l := range leaves {
		if l.Status == leave.LeaveStatusApproved && l.Covers(day) {
			return l, true
		}
	}
	return leave.LeaveApplication{}, false
}
