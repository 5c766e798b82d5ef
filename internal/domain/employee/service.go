package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns every employee ordered by ascending id
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
}
