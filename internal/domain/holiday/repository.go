package holiday

import (
	"context"
	"time"
)

// HolidayRepository lists the public holidays of a branch overlapping a date
// range. Malformed rows are skipped, never fatal: a broken holiday record
// must not abort payslip generation.
type HolidayRepository interface {
	ListByBranchBetween(ctx context.Context, branchID string, from, to time.Time) ([]PublicHoliday, error)
}
