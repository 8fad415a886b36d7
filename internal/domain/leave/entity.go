package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusWaitingApproval LeaveStatus = "waiting_approval"
	LeaveStatusApproved        LeaveStatus = "approved"
	LeaveStatusRejected        LeaveStatus = "rejected"
	LeaveStatusCancelled       LeaveStatus = "cancelled"
)

// LeaveType distinguishes paid leave from loss-of-pay leave.
type LeaveType string

const (
	LeaveTypeLOP    LeaveType = "lop"
	LeaveTypeNonLOP LeaveType = "non_lop"
)

// LeaveApplication covers an inclusive date range. Only approved entries
// count toward attendance classification.
type LeaveApplication struct {
	ID         string
	EmployeeID string
	FromDate   time.Time
	ToDate     time.Time
	Status     LeaveStatus
	Type       LeaveType
	Reason     string
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether the calendar day of t falls inside the leave range.
func (l LeaveApplication) Covers(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	from := time.Date(l.FromDate.Year(), l.FromDate.Month(), l.FromDate.Day(), 0, 0, 0, 0, t.Location())
	to := time.Date(l.ToDate.Year(), l.ToDate.Month(), l.ToDate.Day(), 0, 0, 0, 0, t.Location())
	return !d.Before(from) && !d.After(to)
}
