package employee

import "errors"

var (
	ErrListEmployees = errors.New("failed to list employees")
)
