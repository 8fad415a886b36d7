package schedule

import "context"

// WorkShiftRepository resolves the weekly shift template assigned to an
// employee, including all configured ShiftDays.
type WorkShiftRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (WorkShift, error)
}
