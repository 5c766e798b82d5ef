package attendance

import (
	"strings"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

// LeaveForm holds the leave panel state between edits and submission.
type LeaveForm struct {
	Open bool      `json:"-"`
	Date string    `json:"leave_date" validate:"required,datetime=2006-01-02"`
	Type LeaveType `json:"leave_type" validate:"omitempty,oneof=SICK PERSONAL VACATION OTHER"`
	Note string    `json:"note"`
}

// NewLeaveForm returns a closed form defaulting to today.
func NewLeaveForm(today string) *LeaveForm {
	return &LeaveForm{Date: today}
}

func (f *LeaveForm) Show() { f.Open = true }

func (f *LeaveForm) Cancel() { f.Open = false }

// Reset clears type and note, restores the date to today and closes the panel.
func (f *LeaveForm) Reset(today string) {
	f.Date = today
	f.Type = LeaveUnspecified
	f.Note = ""
	f.Open = false
}

func (f *LeaveForm) Validate() error {
	if validator.IsEmpty(f.Date) {
		return ErrLeaveDateRequired
	}
	return validator.Struct(f)
}

// TrimmedNote is the note as stored on the entry.
func (f *LeaveForm) TrimmedNote() string {
	return strings.TrimSpace(f.Note)
}

// Summary is the header shown above the history table.
type Summary struct {
	Date       string
	Time       string
	State      DayState
	LateNow    bool
	TodayCount int
}

// LateHint explains what a check-in right now would record.
func (s Summary) LateHint() string {
	if s.LateNow {
		return "Past start time (check-in will be recorded as late)"
	}
	return "Within start time"
}
