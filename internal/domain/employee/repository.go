package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	List(ctx context.Context, includeInactive bool) ([]Employee, error)
}
