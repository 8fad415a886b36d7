package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/kalea-hr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// GetPolicyByEmployeeID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetPolicyByEmployeeID(ctx context.Context, employeeID string) (attendance.AttendancePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.company_id, p.working_hours_type,
			   p.checkin_begin_before_min, p.checkout_end_after_min,
			   p.checkin_grace_min, p.early_checkout_before_end_min,
			   p.max_late_checkin_min, p.half_day_threshold_minutes,
			   p.late_mark_count, p.mark_as_on_late_mark_exceeded,
			   p.created_at, p.updated_at
		FROM attendance_policies p
		JOIN employees e ON e.attendance_policy_id = p.id
		WHERE e.id = $1
	`

	var p attendance.AttendancePolicy
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&p.ID, &p.CompanyID, &p.WorkingHoursType,
		&p.CheckinBeginBeforeMin, &p.CheckoutEndAfterMin,
		&p.CheckinGraceMin, &p.EarlyCheckoutBeforeEndMin,
		&p.MaxLateCheckInMin, &p.HalfDayThresholdMinutes,
		&p.LateMarkCount, &p.MarkAsOnLateMarkExceeded,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendancePolicy{}, attendance.ErrPolicyNotFound
		}
		return attendance.AttendancePolicy{}, fmt.Errorf("failed to get attendance policy: %w", err)
	}

	return p, nil
}

// ListPunchLogs implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListPunchLogs(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.PunchLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, logged_at, source
		FROM attendance_logs
		WHERE employee_id = $1 AND logged_at BETWEEN $2 AND $3
		ORDER BY logged_at
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.PunchLog
	for rows.Next() {
		var l attendance.PunchLog
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Timestamp, &l.Source); err != nil {
			// A malformed log row must not abort payslip generation.
			continue
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch logs: %w", err)
	}

	return logs, nil
}

// ListApprovedRegularisations implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListApprovedRegularisations(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Regularisation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, resulting_day, reason,
			   approved_by, approved_at, created_at, updated_at
		FROM attendance_regularisations
		WHERE employee_id = $1 AND status = 'approved' AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list regularisations: %w", err)
	}
	defer rows.Close()

	var regs []attendance.Regularisation
	for rows.Next() {
		var reg attendance.Regularisation
		if err := rows.Scan(
			&reg.ID, &reg.EmployeeID, &reg.Date, &reg.Status, &reg.ResultingDay,
			&reg.Reason, &reg.ApprovedBy, &reg.ApprovedAt, &reg.CreatedAt, &reg.UpdatedAt,
		); err != nil {
			continue
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read regularisations: %w", err)
	}

	return regs, nil
}
