package payroll

import "context"

// PayslipService turns an employee's attendance and payroll configuration
// for one salary period into a net-pay breakdown. It is stateless: every
// call fetches a fresh input snapshot, so computing payslips for different
// employees or periods is safely parallelizable by the caller.
type PayslipService interface {
	GeneratePayslip(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)
}
