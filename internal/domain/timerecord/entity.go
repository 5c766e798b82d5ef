package timerecord

import "time"

type TimeRecord struct {
	ID           int64
	EmployeeID   int64
	WorkDate     *time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	IsLate       bool

	// Joined from employees
	FirstName *string
	LastName  *string
	Role      *string
}

// DefaultLimit caps how many recent records are returned.
const DefaultLimit = 50
