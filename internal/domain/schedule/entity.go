package schedule

import "time"

// ShiftDay is one weekday's expected work window. StartTime and EndTime only
// carry a clock-of-day; the date part is ignored. EndTime at or before
// StartTime means the shift ends on the next calendar day.
type ShiftDay struct {
	ID          string
	WorkShiftID string
	DayOfWeek   int // 1=Monday, ..., 7=Sunday
	StartTime   time.Time
	EndTime     time.Time
	IsWeeklyOff bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkShift is an employee's weekly shift template: at most one ShiftDay per
// weekday. Weekdays without an entry are not evaluable for attendance.
type WorkShift struct {
	ID        string
	CompanyID string
	Name      string
	Days      []ShiftDay
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayFor returns the ShiftDay configured for an ISO weekday (1=Monday).
func (s WorkShift) DayFor(dayOfWeek int) (ShiftDay, bool) {
	for _, d := range s.Days {
		if d.DayOfWeek == dayOfWeek {
			return d, true
		}
	}
	return ShiftDay{}, false
}

// ISOWeekday maps time.Weekday to the 1=Monday..7=Sunday convention used by
// ShiftDay.DayOfWeek.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
