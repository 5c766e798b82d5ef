package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrLeaveDateRequired = errors.New("please select a leave date")
	ErrClearCancelled    = errors.New("clear cancelled")
)
