package attendance

import "context"

// AttendanceService records the local attendance log for the current user
type AttendanceService interface {
	// CheckIn appends LATE (when past the cutoff) then CHECK_IN
	CheckIn(ctx context.Context) ([]Entry, error)

	// CheckOut appends CHECK_OUT after today's CHECK_IN
	CheckOut(ctx context.Context) (Entry, error)

	// SubmitLeave appends LEAVE from the form and resets it
	SubmitLeave(ctx context.Context, form *LeaveForm) (Entry, error)

	// ClearAll discards the log once confirm returns true
	ClearAll(ctx context.Context, confirm func() bool) error

	// Entries returns the log, newest first
	Entries(ctx context.Context) ([]Entry, error)

	// Summary derives today's state from the log and the clock
	Summary(ctx context.Context) (Summary, error)

	// Today is the current local date as YYYY-MM-DD
	Today() string
}
