package employee

import "context"

// EmployeeRepository defines read access to employee records. Payslip
// generation only ever reads snapshots; employee CRUD lives elsewhere.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
}
