package employee

import "context"

// Source provides read access to the roster owned by the external backend.
type Source interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id string) (Employee, error)
}
