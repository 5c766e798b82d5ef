package attendance

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEntry_StampsLocalDateAndTime(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	now := time.Date(2024, 1, 10, 8, 59, 3, 250*int(time.Millisecond), loc)

	e := NewEntry(now, EntryCheckIn)

	assert.Equal(t, "2024-01-10", e.Date)
	assert.Equal(t, "08:59:03", e.Time)
	assert.Equal(t, "2024-01-10T01:59:03.250Z", e.CreatedAt)
	assert.Equal(t, EntryCheckIn, e.Type)
	assert.Regexp(t, regexp.MustCompile(`^1704851943250_[0-9a-f]{12}$`), e.ID)
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	now := time.Now()
	assert.NotEqual(t, NewEntry(now, EntryCheckIn).ID, NewEntry(now, EntryCheckIn).ID)
}

func TestEntry_Display(t *testing.T) {
	leave := Entry{Type: EntryLeave, Date: "2024-01-09", LeaveDate: "2024-01-10", LeaveType: LeaveSick, Note: "flu"}
	assert.Equal(t, "2024-01-10", leave.DisplayDate())
	assert.Equal(t, "(SICK) flu", leave.DisplayNote())

	checkIn := Entry{Type: EntryCheckIn, Date: "2024-01-09"}
	assert.Equal(t, "2024-01-09", checkIn.DisplayDate())
	assert.Equal(t, "-", checkIn.DisplayNote())
	assert.Equal(t, "Check in", checkIn.Type.Label())
	assert.Equal(t, "UNKNOWN", EntryType("UNKNOWN").Label())
}
