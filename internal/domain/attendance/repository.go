package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines read access to the punch log store, the policy
// configuration and approved regularisations. The log source is append-only;
// nothing here mutates it.
type AttendanceRepository interface {
	GetPolicyByEmployeeID(ctx context.Context, employeeID string) (AttendancePolicy, error)

	// ListPunchLogs returns logs ordered by timestamp. The window is wider
	// than the salary period because shift tolerance boundaries can reach
	// into the neighbouring days.
	ListPunchLogs(ctx context.Context, employeeID string, from, to time.Time) ([]PunchLog, error)

	// ListApprovedRegularisations returns approved overrides whose date
	// falls inside [from, to].
	ListApprovedRegularisations(ctx context.Context, employeeID string, from, to time.Time) ([]Regularisation, error)
}
