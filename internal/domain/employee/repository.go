package employee

import "context"

type EmployeeRepository interface {
	// List returns all employees ordered by ascending id
	List(ctx context.Context) ([]Employee, error)
}
