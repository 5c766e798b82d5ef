package timerecord

import "time"

const (
	DateLayout = "2006-01-02"
	// TimestampLayout matches JavaScript's Date.prototype.toISOString.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type TimeRecordResponse struct {
	RecordID     int64   `json:"record_id"`
	EmployeeID   int64   `json:"employee_id"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Role         *string `json:"role"`
	WorkDate     *string `json:"work_date"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	IsLate       bool    `json:"is_late"`
}

func NewTimeRecordResponse(r TimeRecord) TimeRecordResponse {
	return TimeRecordResponse{
		RecordID:     r.ID,
		EmployeeID:   r.EmployeeID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Role:         r.Role,
		WorkDate:     formatUTC(r.WorkDate, DateLayout),
		CheckInTime:  formatUTC(r.CheckInTime, TimestampLayout),
		CheckOutTime: formatUTC(r.CheckOutTime, TimestampLayout),
		IsLate:       r.IsLate,
	}
}

func formatUTC(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(layout)
	return &s
}
