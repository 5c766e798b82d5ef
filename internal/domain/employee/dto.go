package employee

type EmployeeResponse struct {
	EmployeeID int64  `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Role:       e.Role,
	}
}
