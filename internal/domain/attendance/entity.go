package attendance

import "time"

// DayStatus is the per-day classification produced by attendance evaluation.
// Exactly one status applies to each evaluable calendar day of a period.
type DayStatus string

const (
	DayStatusWeeklyOff DayStatus = "weekly_off"
	DayStatusHoliday   DayStatus = "holiday"
	DayStatusFull      DayStatus = "full"
	DayStatusHalf      DayStatus = "half"
	DayStatusAbsent    DayStatus = "absent"
)

type WorkingHoursType string

const (
	WorkingHoursFlexible WorkingHoursType = "flexible"
	WorkingHoursFixed    WorkingHoursType = "fixed"
)

// AttendancePolicy holds the tolerance boundaries applied when punch logs are
// evaluated against a shift window. All *_Min fields are minutes.
type AttendancePolicy struct {
	ID               string
	CompanyID        string
	WorkingHoursType WorkingHoursType

	CheckinBeginBeforeMin     int
	CheckoutEndAfterMin       int
	CheckinGraceMin           int
	EarlyCheckoutBeforeEndMin int
	MaxLateCheckInMin         int
	HalfDayThresholdMinutes   int

	// LateMarkCount is how many accumulated late marks trigger the penalty;
	// zero disables late-mark tracking. MarkAsOnLateMarkExceeded is the
	// status applied when the counter trips (Half or Absent).
	LateMarkCount            int
	MarkAsOnLateMarkExceeded DayStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PunchLog is a single biometric or mobile punch. Logs are immutable and
// append-only; only logs inside a day's tolerance window are considered.
type PunchLog struct {
	ID         string
	EmployeeID string
	Timestamp  time.Time
	Source     string
}

type RegularisationStatus string

const (
	RegularisationStatusWaitingApproval RegularisationStatus = "waiting_approval"
	RegularisationStatusApproved        RegularisationStatus = "approved"
	RegularisationStatusRejected        RegularisationStatus = "rejected"
)

// Regularisation is an approved manual override of the computed status for a
// specific date. Only approved entries take effect.
type Regularisation struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Status       RegularisationStatus
	ResultingDay DayStatus // full, half or absent
	Reason       *string
	ApprovedBy   *string
	ApprovedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
