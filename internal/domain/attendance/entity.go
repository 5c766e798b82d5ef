package attendance

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Entry is one line of the local attendance log. JSON keys match the blob the
// browser client stored, so existing logs load unchanged.
type Entry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt string    `json:"createdAt"`
	Type      EntryType `json:"type"`
	Note      string    `json:"note"`
	LeaveDate string    `json:"leaveDate"`
	LeaveType LeaveType `json:"leaveType"`
}

type EntryType string

const (
	EntryCheckIn  EntryType = "CHECK_IN"
	EntryCheckOut EntryType = "CHECK_OUT"
	EntryLate     EntryType = "LATE"
	EntryLeave    EntryType = "LEAVE"
)

// Label is the human readable name shown in the history table.
func (t EntryType) Label() string {
	switch t {
	case EntryCheckIn:
		return "Check in"
	case EntryCheckOut:
		return "Check out"
	case EntryLate:
		return "Late"
	case EntryLeave:
		return "Leave"
	}
	return string(t)
}

type LeaveType string

const (
	LeaveUnspecified LeaveType = ""
	LeaveSick        LeaveType = "SICK"
	LeavePersonal    LeaveType = "PERSONAL"
	LeaveVacation    LeaveType = "VACATION"
	LeaveOther       LeaveType = "OTHER"
)

// DayState is derived from today's entries, never stored.
type DayState string

const (
	StateNotCheckedIn DayState = "NOT_CHECKED_IN"
	StateCheckedIn    DayState = "CHECKED_IN"
	StateCheckedOut   DayState = "CHECKED_OUT"
)

func (s DayState) Label() string {
	switch s {
	case StateCheckedIn:
		return "Checked in"
	case StateCheckedOut:
		return "Checked out"
	}
	return "Not checked in"
}

const LateNote = "checked in after start time"

// NewEntry stamps an entry with the local date and time of now.
func NewEntry(now time.Time, typ EntryType) Entry {
	return Entry{
		ID:        newEntryID(now),
		Date:      now.Format(DateLayout),
		Time:      now.Format(TimeLayout),
		CreatedAt: now.UTC().Format(CreatedAtLayout),
		Type:      typ,
	}
}

// DisplayDate is the leave date for LEAVE entries and the entry date otherwise.
func (e Entry) DisplayDate() string {
	if e.Type == EntryLeave {
		return e.LeaveDate
	}
	return e.Date
}

// DisplayNote prefixes the leave type and falls back to "-".
func (e Entry) DisplayNote() string {
	note := e.Note
	if note == "" {
		note = "-"
	}
	if e.LeaveType != LeaveUnspecified {
		return fmt.Sprintf("(%s) %s", e.LeaveType, note)
	}
	return note
}

func newEntryID(now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("%d_%s", now.UnixMilli(), hex.EncodeToString(u[10:]))
}
