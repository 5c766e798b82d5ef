package employee

type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Role      string
}
