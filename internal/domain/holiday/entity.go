package holiday

import "time"

// PublicHoliday is a branch-scoped holiday range. Every calendar day within
// [StartDate, EndDate] counts as a holiday for that branch.
type PublicHoliday struct {
	ID        string
	BranchID  string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the calendar day of t falls inside the holiday range.
func (h PublicHoliday) Covers(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start := time.Date(h.StartDate.Year(), h.StartDate.Month(), h.StartDate.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(h.EndDate.Year(), h.EndDate.Month(), h.EndDate.Day(), 0, 0, 0, 0, t.Location())
	return !d.Before(start) && !d.After(end)
}
