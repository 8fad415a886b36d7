package payslip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/holiday"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/leave"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/schedule"
	"github.com/kalea-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore backs every repository interface with fixture data so the
// service can be exercised without a database.
type stubStore struct {
	emp             employee.Employee
	shift           schedule.WorkShift
	policy          attendance.AttendancePolicy
	logs            []attendance.PunchLog
	regularisations []attendance.Regularisation
	holidays        []holiday.PublicHoliday
	leaves          []leave.LeaveApplication
	grade           payroll.PayGrade
	bonuses         []payroll.BonusAllocation
	reimbursements  []payroll.Reimbursement
	advances        []payroll.AdvanceInstallment

	empErr    error
	shiftErr  error
	policyErr error
	gradeErr  error
}

func (s *stubStore) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return s.emp, s.empErr
}

func (s *stubStore) GetByEmployeeID(_ context.Context, _ string) (schedule.WorkShift, error) {
	return s.shift, s.shiftErr
}

func (s *stubStore) GetPolicyByEmployeeID(_ context.Context, _ string) (attendance.AttendancePolicy, error) {
	return s.policy, s.policyErr
}

func (s *stubStore) ListPunchLogs(_ context.Context, _ string, _, _ time.Time) ([]attendance.PunchLog, error) {
	return s.logs, nil
}

func (s *stubStore) ListApprovedRegularisations(_ context.Context, _ string, _, _ time.Time) ([]attendance.Regularisation, error) {
	return s.regularisations, nil
}

func (s *stubStore) ListByBranchBetween(_ context.Context, _ string, _, _ time.Time) ([]holiday.PublicHoliday, error) {
	return s.holidays, nil
}

func (s *stubStore) ListApprovedBetween(_ context.Context, _ string, _, _ time.Time) ([]leave.LeaveApplication, error) {
	return s.leaves, nil
}

func (s *stubStore) GetPayGradeByEmployeeID(_ context.Context, _ string) (payroll.PayGrade, error) {
	return s.grade, s.gradeErr
}

func (s *stubStore) ListBonusAllocations(_ context.Context, _ string, _, _ time.Time) ([]payroll.BonusAllocation, error) {
	return s.bonuses, nil
}

func (s *stubStore) ListApprovedReimbursements(_ context.Context, _ string, _, _ time.Time) ([]payroll.Reimbursement, error) {
	return s.reimbursements, nil
}

func (s *stubStore) ListDueAdvanceInstallments(_ context.Context, _ string, _ time.Month, _ int) ([]payroll.AdvanceInstallment, error) {
	return s.advances, nil
}

func (s *stubStore) service() payroll.PayslipService {
	return NewPayslipService(s, s, s, s, s, s)
}

// newStore builds a store for a 30-day June 2025 run: Sundays off,
// 09:00-18:00 shift, gross 30000 with a fixed transport allowance and a PF
// deduction.
func newStore(policy attendance.AttendancePolicy) *stubStore {
	return &stubStore{
		emp: employee.Employee{
			ID:       "emp-1",
			BranchID: "branch-1",
			Name:     "Asha Nair",
			IsActive: true,
		},
		shift:  weeklyShift(clock(9, 0), clock(18, 0), 7),
		policy: policy,
		grade: payroll.PayGrade{
			ID:          "grade-1",
			Name:        "L2",
			GrossSalary: dec("30000"),
			Allowances: []payroll.PayComponent{
				{Name: "Transport", Kind: payroll.ComponentKindFixed, Value: dec("2000")},
			},
			Deductions: []payroll.PayComponent{
				{Name: "PF", Kind: payroll.ComponentKindPercentOfGross, Value: dec("12")},
			},
		},
	}
}

func generate(t *testing.T, store *stubStore, period string) payroll.PayslipResponse {
	t.Helper()
	resp, err := store.service().GeneratePayslip(context.Background(), payroll.GeneratePayslipRequest{
		EmployeeID: "emp-1",
		Period:     period,
	})
	require.NoError(t, err)
	return resp
}

func TestGeneratePayslip_PerfectFlexibleMonth(t *testing.T) {
	store := newStore(flexiblePolicy())
	period := mustPeriod(t, "June 2025")
	store.logs = boundaryPunches(period, store.shift)

	resp := generate(t, store, "June 2025")

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "Asha Nair", resp.EmployeeName)
	assert.Equal(t, "June 2025", resp.PeriodLabel)
	assert.Equal(t, "2025-06-01", resp.PeriodStart)
	assert.Equal(t, "2025-06-30", resp.PeriodEnd)

	assert.Equal(t, 30, resp.Days.TotalCalendarDays)
	assert.Equal(t, 5, resp.Days.WeeklyOff) // five Sundays in June 2025
	assert.Equal(t, 25, resp.Days.Full)
	assert.Equal(t, 0, resp.Days.Absent)

	assertDecimal(t, "25", resp.PaidUnits)
	assertDecimal(t, "0", resp.LOPUnits)
	assertDecimal(t, "0", resp.LOPAmount)

	assertDecimal(t, "15000", resp.Basic)
	assertDecimal(t, "17000", resp.EarningsTotal)
	assertDecimal(t, "1800", resp.DeductionsTotal) // PF shim: 12% of basic
	assertDecimal(t, "15200", resp.NetPay)
	assert.Empty(t, resp.Diagnostics)

	// Per-day rate divides basic + allowances by calendar days.
	assert.True(t, resp.PerDayRate.Equal(dec("17000").Div(dec("30"))),
		"per-day rate %s", resp.PerDayRate)
}

func TestGeneratePayslip_NoPunchDayCostsOnePerDayRate(t *testing.T) {
	store := newStore(fixedPolicy())
	period := mustPeriod(t, "June 2025")
	store.logs = boundaryPunches(period, store.shift, "2025-06-03")

	resp := generate(t, store, "June 2025")

	assert.Equal(t, 24, resp.Days.Full)
	assert.Equal(t, 1, resp.Days.Absent)
	assert.True(t, resp.LOPAmount.Equal(resp.PerDayRate),
		"one absent day should cost exactly one per-day rate, got %s vs %s", resp.LOPAmount, resp.PerDayRate)

	wantNet := resp.EarningsTotal.Sub(resp.DeductionsTotal).Sub(resp.LOPAmount).Round(0)
	assert.True(t, resp.NetPay.Equal(wantNet), "net pay %s, want %s", resp.NetPay, wantNet)
	assert.Empty(t, resp.Diagnostics)
}

func TestGeneratePayslip_NetPayNeverNegative(t *testing.T) {
	store := newStore(flexiblePolicy())
	store.grade.Deductions = []payroll.PayComponent{
		{Name: "Recovery", Kind: payroll.ComponentKindFixed, Value: dec("100000")},
	}
	period := mustPeriod(t, "June 2025")
	store.logs = boundaryPunches(period, store.shift)

	resp := generate(t, store, "June 2025")

	assertDecimal(t, "0", resp.NetPay)
	// The breakdown still reports the real totals.
	assertDecimal(t, "100000", resp.DeductionsTotal)
}

func TestGeneratePayslip_EmployeeGrossOverride(t *testing.T) {
	store := newStore(flexiblePolicy())
	store.grade.GrossSalary = decimal.Zero
	override := dec("20000")
	store.emp.GrossSalary = &override
	period := mustPeriod(t, "June 2025")
	store.logs = boundaryPunches(period, store.shift)

	resp := generate(t, store, "June 2025")

	assertDecimal(t, "10000", resp.Basic)
}

func TestGeneratePayslip_AdvanceInstallmentDeducted(t *testing.T) {
	store := newStore(flexiblePolicy())
	store.advances = []payroll.AdvanceInstallment{
		{Amount: dec("2500"), DueMonth: time.June, DueYear: 2025},
	}
	period := mustPeriod(t, "June 2025")
	store.logs = boundaryPunches(period, store.shift)

	resp := generate(t, store, "June 2025")

	assertDecimal(t, "4300", resp.DeductionsTotal)
	assertDecimal(t, "12700", resp.NetPay)
}

func TestGeneratePayslip_SkippedDaysReported(t *testing.T) {
	store := newStore(flexiblePolicy())
	// Drop Saturday from the template entirely.
	days := store.shift.Days[:0]
	for _, sd := range store.shift.Days {
		if sd.DayOfWeek != 6 {
			days = append(days, sd)
		}
	}
	store.shift.Days = days
	period := mustPeriod(t, "June 2025")
	store.logs = boundaryPunches(period, store.shift)

	resp := generate(t, store, "June 2025")

	assert.Equal(t, 4, resp.Days.Skipped) // four Saturdays in June 2025
	require.NotEmpty(t, resp.Diagnostics)
	assert.Contains(t, resp.Diagnostics[0], "no shift configured")
	// Skipped days also break paid/LOP reconciliation, which is reported
	// too rather than silently absorbed.
	assert.Len(t, resp.Diagnostics, 2)
	assert.Contains(t, resp.Diagnostics[1], "day bucket mismatch")
}

func TestGeneratePayslip_RequestValidation(t *testing.T) {
	store := newStore(flexiblePolicy())

	_, err := store.service().GeneratePayslip(context.Background(), payroll.GeneratePayslipRequest{})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
}

func TestGeneratePayslip_InvalidPeriod(t *testing.T) {
	store := newStore(flexiblePolicy())

	_, err := store.service().GeneratePayslip(context.Background(), payroll.GeneratePayslipRequest{
		EmployeeID: "emp-1",
		Period:     "sometime soon",
	})
	assert.True(t, errors.Is(err, payroll.ErrInvalidPeriodFormat), "got %v", err)
}

func TestGeneratePayslip_FatalLookupFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*stubStore)
		wantErr error
	}{
		{
			name:    "employee not found",
			mutate:  func(s *stubStore) { s.empErr = employee.ErrEmployeeNotFound },
			wantErr: employee.ErrEmployeeNotFound,
		},
		{
			name:    "shift not found",
			mutate:  func(s *stubStore) { s.shiftErr = schedule.ErrShiftNotFound },
			wantErr: schedule.ErrShiftNotFound,
		},
		{
			name:    "policy not found",
			mutate:  func(s *stubStore) { s.policyErr = attendance.ErrPolicyNotFound },
			wantErr: attendance.ErrPolicyNotFound,
		},
		{
			name:    "pay grade not found",
			mutate:  func(s *stubStore) { s.gradeErr = payroll.ErrPayGradeNotFound },
			wantErr: payroll.ErrPayGradeNotFound,
		},
		{
			name: "gross salary missing everywhere",
			mutate: func(s *stubStore) {
				s.grade.GrossSalary = decimal.Zero
				s.emp.GrossSalary = nil
			},
			wantErr: employee.ErrMissingGrossSalary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(flexiblePolicy())
			tt.mutate(store)

			_, err := store.service().GeneratePayslip(context.Background(), payroll.GeneratePayslipRequest{
				EmployeeID: "emp-1",
				Period:     "June 2025",
			})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
