package leave

import (
	"context"
	"time"
)

// LeaveRepository lists approved leave applications overlapping a date range.
type LeaveRepository interface {
	ListApprovedBetween(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveApplication, error)
}
