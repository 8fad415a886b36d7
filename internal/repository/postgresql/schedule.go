package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/schedule"
	"github.com/kalea-hr/payroll-backend-go/internal/pkg/database"
)

type workShiftRepository struct {
	db *database.DB
}

func NewWorkShiftRepository(db *database.DB) schedule.WorkShiftRepository {
	return &workShiftRepository{db: db}
}

// GetByEmployeeID implements schedule.WorkShiftRepository.
func (r *workShiftRepository) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ws.id, ws.company_id, ws.name, ws.created_at, ws.updated_at
		FROM work_shifts ws
		JOIN employees e ON e.work_shift_id = ws.id
		WHERE e.id = $1
	`

	var s schedule.WorkShift
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkShift{}, schedule.ErrShiftNotFound
		}
		return schedule.WorkShift{}, fmt.Errorf("failed to get work shift: %w", err)
	}

	daysQuery := `
		SELECT id, work_shift_id, day_of_week, start_time, end_time,
			   is_weekly_off, created_at, updated_at
		FROM work_shift_days
		WHERE work_shift_id = $1
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, daysQuery, s.ID)
	if err != nil {
		return schedule.WorkShift{}, fmt.Errorf("failed to list shift days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d schedule.ShiftDay
		if err := rows.Scan(
			&d.ID, &d.WorkShiftID, &d.DayOfWeek, &d.StartTime, &d.EndTime,
			&d.IsWeeklyOff, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return schedule.WorkShift{}, fmt.Errorf("failed to scan shift day: %w", err)
		}
		s.Days = append(s.Days, d)
	}
	if err := rows.Err(); err != nil {
		return schedule.WorkShift{}, fmt.Errorf("failed to read shift days: %w", err)
	}

	return s, nil
}
