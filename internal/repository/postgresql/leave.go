package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/leave"
	"github.com/kalea-hr/payroll-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// ListApprovedBetween implements leave.LeaveRepository.
func (r *leaveRepository) ListApprovedBetween(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, from_date, to_date, status, leave_type,
			   reason, approved_by, approved_at, created_at, updated_at
		FROM leave_applications
		WHERE employee_id = $1 AND status = 'approved'
		  AND from_date <= $3 AND to_date >= $2
		ORDER BY from_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	var leaves []leave.LeaveApplication
	for rows.Next() {
		var l leave.LeaveApplication
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.FromDate, &l.ToDate, &l.Status, &l.Type,
			&l.Reason, &l.ApprovedBy, &l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			continue
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave applications: %w", err)
	}

	return leaves, nil
}
