package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kalea-hr/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// GetPayGradeByEmployeeID implements payroll.PayrollRepository.
func (r *payrollRepository) GetPayGradeByEmployeeID(ctx context.Context, employeeID string) (payroll.PayGrade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, g.company_id, g.name, g.gross_salary, g.basic_percent,
			   g.created_at, g.updated_at
		FROM pay_grades g
		JOIN employees e ON e.pay_grade_id = g.id
		WHERE e.id = $1
	`

	var g payroll.PayGrade
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&g.ID, &g.CompanyID, &g.Name, &g.GrossSalary, &g.BasicPercent,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayGrade{}, payroll.ErrPayGradeNotFound
		}
		return payroll.PayGrade{}, fmt.Errorf("failed to get pay grade: %w", err)
	}

	componentsQuery := `
		SELECT id, name, component_type, kind, value, base
		FROM pay_grade_components
		WHERE pay_grade_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, componentsQuery, g.ID)
	if err != nil {
		return payroll.PayGrade{}, fmt.Errorf("failed to list pay grade components: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c payroll.PayComponent
		var componentType string
		if err := rows.Scan(&c.ID, &c.Name, &componentType, &c.Kind, &c.Value, &c.Base); err != nil {
			continue
		}
		if componentType == "deduction" {
			g.Deductions = append(g.Deductions, c)
		} else {
			g.Allowances = append(g.Allowances, c)
		}
	}
	if err := rows.Err(); err != nil {
		return payroll.PayGrade{}, fmt.Errorf("failed to read pay grade components: %w", err)
	}

	return g, nil
}

// ListBonusAllocations implements payroll.PayrollRepository.
func (r *payrollRepository) ListBonusAllocations(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.BonusAllocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, name, percent, base, effective_date, created_at
		FROM bonus_allocations
		WHERE employee_id = $1 AND effective_date BETWEEN $2 AND $3
		ORDER BY effective_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus allocations: %w", err)
	}
	defer rows.Close()

	var bonuses []payroll.BonusAllocation
	for rows.Next() {
		var b payroll.BonusAllocation
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.Name, &b.Percent, &b.Base, &b.EffectiveDate, &b.CreatedAt); err != nil {
			continue
		}
		bonuses = append(bonuses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bonus allocations: %w", err)
	}

	return bonuses, nil
}

// ListApprovedReimbursements implements payroll.PayrollRepository.
func (r *payrollRepository) ListApprovedReimbursements(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, title, amount, date, status, created_at
		FROM reimbursements
		WHERE employee_id = $1 AND status = 'approved' AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list reimbursements: %w", err)
	}
	defer rows.Close()

	var claims []payroll.Reimbursement
	for rows.Next() {
		var c payroll.Reimbursement
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.Title, &c.Amount, &c.Date, &c.Status, &c.CreatedAt); err != nil {
			continue
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reimbursements: %w", err)
	}

	return claims, nil
}

// ListDueAdvanceInstallments implements payroll.PayrollRepository.
func (r *payrollRepository) ListDueAdvanceInstallments(ctx context.Context, employeeID string, month time.Month, year int) ([]payroll.AdvanceInstallment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, advance_id, amount, due_month, due_year, settled, created_at
		FROM salary_advance_installments
		WHERE employee_id = $1 AND due_month = $2 AND due_year = $3 AND settled = false
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID, int(month), year)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance installments: %w", err)
	}
	defer rows.Close()

	var installments []payroll.AdvanceInstallment
	for rows.Next() {
		var inst payroll.AdvanceInstallment
		var dueMonth int
		if err := rows.Scan(&inst.ID, &inst.EmployeeID, &inst.AdvanceID, &inst.Amount, &dueMonth, &inst.DueYear, &inst.Settled, &inst.CreatedAt); err != nil {
			continue
		}
		inst.DueMonth = time.Month(dueMonth)
		installments = append(installments, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read advance installments: %w", err)
	}

	return installments, nil
}
