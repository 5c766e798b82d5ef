package attendance

import "time"

// WorkHours describes when the working day starts and how long check-in stays on time.
type WorkHours struct {
	Start time.Duration // offset from local midnight
	Grace time.Duration
}

var DefaultWorkHours = WorkHours{Start: 9 * time.Hour, Grace: time.Minute}

// IsLate reports whether now is strictly after workStart+grace on now's calendar day.
func IsLate(now time.Time, workStart, grace time.Duration) bool {
	return now.After(Cutoff(now, workStart, grace))
}

// Cutoff returns the last on-time instant of now's day.
func Cutoff(now time.Time, workStart, grace time.Duration) time.Time {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return start.Add(workStart + grace)
}

func (w WorkHours) IsLate(now time.Time) bool {
	return IsLate(now, w.Start, w.Grace)
}
