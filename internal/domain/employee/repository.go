package employee

import "context"

// EmployeeRepository is the employee master table. Every call re-reads
// the backing workbook; nothing is cached between operations.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int, error)
}
