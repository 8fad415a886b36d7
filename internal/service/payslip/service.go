package payslip

import (
	"context"
	"fmt"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/holiday"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/leave"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kalea-hr/payroll-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type PayslipServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	shiftRepo      schedule.WorkShiftRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	leaveRepo      leave.LeaveRepository
	payrollRepo    payroll.PayrollRepository
}

func NewPayslipService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo schedule.WorkShiftRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRepository,
	payrollRepo payroll.PayrollRepository,
) payroll.PayslipService {
	return &PayslipServiceImpl{
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
	}
}

// snapshot is the immutable input set one payslip computation runs on. All
// reads are independent, so they are fetched concurrently; the calculation
// itself only starts once every field is resolved.
type snapshot struct {
	employee        employee.Employee
	shift           schedule.WorkShift
	policy          attendance.AttendancePolicy
	logs            []attendance.PunchLog
	holidays        []holiday.PublicHoliday
	leaves          []leave.LeaveApplication
	regularisations []attendance.Regularisation
	grade           payroll.PayGrade
	bonuses         []payroll.BonusAllocation
	reimbursements  []payroll.Reimbursement
	advances        []payroll.AdvanceInstallment
}

// GeneratePayslip implements payroll.PayslipService.
func (s *PayslipServiceImpl) GeneratePayslip(ctx context.Context, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	period, err := ResolvePeriod(req.Period)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	snap, err := s.fetchSnapshot(ctx, req.EmployeeID, period)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	gross, err := resolveGross(snap.grade, snap.employee)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	snap.grade.GrossSalary = gross

	cls := ClassifyPeriod(ClassifierInput{
		Period:          period,
		Shift:           snap.shift,
		Policy:          snap.policy,
		Logs:            snap.logs,
		Holidays:        snap.holidays,
		Leaves:          snap.leaves,
		Regularisations: snap.regularisations,
	})

	earn := CalculateEarnings(snap.grade, snap.bonuses, snap.reimbursements, period)
	ded := CalculateDeductions(snap.grade, snap.advances, period)
	pro := Prorate(cls.Tally, period.TotalCalendarDays(), earn.Basic.Add(earn.AllowanceTotal))

	return AssemblePayslip(snap.employee, period, cls, pro, earn, ded), nil
}

func (s *PayslipServiceImpl) fetchSnapshot(ctx context.Context, employeeID string, period SalaryPeriod) (snapshot, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// Tolerance boundaries can reach into the neighbouring days, so punch
	// logs are fetched with a one-day margin on both ends.
	logsFrom := period.Start.AddDate(0, 0, -1)
	logsTo := period.End.AddDate(0, 0, 1)

	snap := snapshot{employee: emp}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		snap.shift, err = s.shiftRepo.GetByEmployeeID(gctx, emp.ID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.policy, err = s.attendanceRepo.GetPolicyByEmployeeID(gctx, emp.ID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.logs, err = s.attendanceRepo.ListPunchLogs(gctx, emp.ID, logsFrom, logsTo)
		return err
	})
	g.Go(func() error {
		var err error
		snap.regularisations, err = s.attendanceRepo.ListApprovedRegularisations(gctx, emp.ID, period.Start, period.End)
		return err
	})
	g.Go(func() error {
		var err error
		snap.holidays, err = s.holidayRepo.ListByBranchBetween(gctx, emp.BranchID, period.Start, period.End)
		return err
	})
	g.Go(func() error {
		var err error
		snap.leaves, err = s.leaveRepo.ListApprovedBetween(gctx, emp.ID, period.Start, period.End)
		return err
	})
	g.Go(func() error {
		var err error
		snap.grade, err = s.payrollRepo.GetPayGradeByEmployeeID(gctx, emp.ID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.bonuses, err = s.payrollRepo.ListBonusAllocations(gctx, emp.ID, period.Start, period.End)
		return err
	})
	g.Go(func() error {
		var err error
		snap.reimbursements, err = s.payrollRepo.ListApprovedReimbursements(gctx, emp.ID, period.Start, period.End)
		return err
	})
	g.Go(func() error {
		var err error
		snap.advances, err = s.payrollRepo.ListDueAdvanceInstallments(gctx, emp.ID, period.Start.Month(), period.Start.Year())
		return err
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// resolveGross prefers the pay grade's gross salary, then the employee-level
// override. A missing gross is fatal: it must never default to zero.
func resolveGross(grade payroll.PayGrade, emp employee.Employee) (decimal.Decimal, error) {
	if grade.GrossSalary.IsPositive() {
		return grade.GrossSalary, nil
	}
	if emp.GrossSalary != nil && emp.GrossSalary.IsPositive() {
		return *emp.GrossSalary, nil
	}
	return decimal.Decimal{}, employee.ErrMissingGrossSalary
}
