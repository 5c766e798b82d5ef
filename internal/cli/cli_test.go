package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/kv"
	attendanceService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/attendance"
)

type fakeAPI struct {
	employees []employee.EmployeeResponse
	records   []timerecord.TimeRecordResponse
	err       error
}

func (f *fakeAPI) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.employees, f.err
}

func (f *fakeAPI) ListTimeRecords(ctx context.Context) ([]timerecord.TimeRecordResponse, error) {
	return f.records, f.err
}

type harness struct {
	app    *App
	stdin  *strings.Reader
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	now    time.Time
}

func newHarness(t *testing.T, api APIClient) *harness {
	t.Helper()

	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	h := &harness{
		stdin:  strings.NewReader(""),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		now:    time.Date(2024, 1, 10, 8, 30, 0, 0, time.Local),
	}
	tracker := attendanceService.NewAttendanceService(
		kv.NewAttendanceLog(local, "attendance_records_v1"),
		attendance.DefaultWorkHours,
		attendanceService.WithClock(func() time.Time { return h.now }),
	)
	h.app = &App{
		API: api,
		OpenTracker: func(ctx context.Context) (attendance.AttendanceService, func() error, error) {
			return tracker, nil, nil
		},
		In:   h.stdin,
		Out:  h.stdout,
		Err:  h.stderr,
		Tick: 10 * time.Millisecond,
	}
	return h
}

func (h *harness) run(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()
	cmd := NewRootCommand(h.app)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func strPtr(s string) *string { return &s }

func TestEmployees_RendersTable(t *testing.T) {
	h := newHarness(t, &fakeAPI{employees: []employee.EmployeeResponse{
		{EmployeeID: 1, FirstName: "Somchai", LastName: "Jaidee", Role: "Engineer"},
		{EmployeeID: 2, FirstName: "Malee", LastName: "Suksan", Role: "Designer"},
	}})

	require.NoError(t, h.run("employees"))

	assert.Contains(t, h.stderr.String(), "Loading employees...")
	out := h.stdout.String()
	assert.Contains(t, out, "FIRST NAME")
	assert.Contains(t, out, "Somchai")
	assert.Contains(t, out, "Designer")
	assert.NotContains(t, out, "No employees found.")
}

func TestEmployees_FetchFailureRendersEmptyTable(t *testing.T) {
	h := newHarness(t, &fakeAPI{err: errors.New("connection refused")})

	err := h.run("employees")

	require.NoError(t, err)
	assert.Contains(t, h.stdout.String(), "FIRST NAME")
	assert.Contains(t, h.stdout.String(), "No employees found.")
}

func TestRecords_RendersNullsAsDash(t *testing.T) {
	h := newHarness(t, &fakeAPI{records: []timerecord.TimeRecordResponse{{
		RecordID:    9,
		EmployeeID:  1,
		FirstName:   strPtr("Somchai"),
		LastName:    strPtr("Jaidee"),
		Role:        strPtr("Engineer"),
		WorkDate:    strPtr("2024-01-10"),
		CheckInTime: strPtr("2024-01-10T02:02:00.000Z"),
		IsLate:      true,
	}}})

	require.NoError(t, h.run("records"))

	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Somchai Jaidee")
	assert.Contains(t, lines[1], "2024-01-10T02:02:00.000Z")
	assert.Contains(t, lines[1], "yes")
}

func TestCheckIn_OnTimeThenRepeatRejected(t *testing.T) {
	h := newHarness(t, &fakeAPI{})

	require.NoError(t, h.run("check-in"))
	assert.Contains(t, h.stdout.String(), "Checked in at 2024-01-10 08:30:00")
	assert.NotContains(t, h.stdout.String(), "Late")

	err := h.run("check-in")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	require.NoError(t, h.run("log"))
	assert.Equal(t, 1, strings.Count(h.stdout.String(), "Check in"))
}

func TestCheckIn_LateAddsMarker(t *testing.T) {
	h := newHarness(t, &fakeAPI{})
	h.now = time.Date(2024, 1, 10, 9, 2, 0, 0, time.Local)

	require.NoError(t, h.run("check-in"))
	assert.Contains(t, h.stdout.String(), "Late: "+attendance.LateNote)

	require.NoError(t, h.run("log"))
	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Check in")
	assert.Contains(t, lines[2], "Late")
}

func TestCheckOut_Flow(t *testing.T) {
	h := newHarness(t, &fakeAPI{})

	assert.ErrorIs(t, h.run("check-out"), attendance.ErrNotCheckedIn)

	require.NoError(t, h.run("check-in"))
	h.now = h.now.Add(9 * time.Hour)
	require.NoError(t, h.run("check-out"))
	assert.Contains(t, h.stdout.String(), "Checked out at 2024-01-10 17:30:00")

	assert.ErrorIs(t, h.run("check-out"), attendance.ErrAlreadyCheckedOut)
}

func TestLeave(t *testing.T) {
	h := newHarness(t, &fakeAPI{})

	require.NoError(t, h.run("leave", "--date", "2024-02-01", "--type", "sick", "--note", "  flu  "))
	assert.Contains(t, h.stdout.String(), "Leave recorded for 2024-02-01 (SICK) flu")

	require.NoError(t, h.run("leave"))
	assert.Contains(t, h.stdout.String(), "Leave recorded for 2024-01-10 -")

	assert.ErrorIs(t, h.run("leave", "--date", ""), attendance.ErrLeaveDateRequired)
	assert.Error(t, h.run("leave", "--type", "HOLIDAY"))

	require.NoError(t, h.run("log"))
	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "2024-02-01")
	assert.Contains(t, lines[2], "Leave")
}

func TestClear(t *testing.T) {
	h := newHarness(t, &fakeAPI{})
	require.NoError(t, h.run("check-in"))

	h.app.In = strings.NewReader("n\n")
	require.NoError(t, h.run("clear"))
	assert.Contains(t, h.stderr.String(), "Clear all records? [y/N]")
	assert.Contains(t, h.stdout.String(), "Nothing cleared.")

	h.app.In = strings.NewReader("y\n")
	require.NoError(t, h.run("clear"))
	assert.Contains(t, h.stdout.String(), "All records cleared.")

	require.NoError(t, h.run("log"))
	assert.Contains(t, h.stdout.String(), "No records yet.")
}

func TestClear_YesSkipsPrompt(t *testing.T) {
	h := newHarness(t, &fakeAPI{})
	require.NoError(t, h.run("check-in"))

	require.NoError(t, h.run("clear", "--yes"))
	assert.Empty(t, h.stderr.String())
	assert.Contains(t, h.stdout.String(), "All records cleared.")
}

func TestStatus(t *testing.T) {
	h := newHarness(t, &fakeAPI{})

	require.NoError(t, h.run("status"))
	assert.Contains(t, h.stdout.String(), "2024-01-10 08:30:00")
	assert.Contains(t, h.stdout.String(), "Not checked in")
	assert.Contains(t, h.stdout.String(), "Within start time")

	require.NoError(t, h.run("check-in"))
	require.NoError(t, h.run("status"))
	assert.Contains(t, h.stdout.String(), "Checked in")
	assert.Contains(t, h.stdout.String(), "(1 entries today)")
}

func TestStatus_WatchStopsOnCancel(t *testing.T) {
	h := newHarness(t, &fakeAPI{})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	cmd := NewRootCommand(h.app)
	cmd.SetArgs([]string{"status", "--watch"})
	require.NoError(t, cmd.ExecuteContext(ctx))

	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	assert.GreaterOrEqual(t, len(lines), 2)
}

func TestOpenTracker_FileBackend(t *testing.T) {
	cfg := &config.Config{Attendance: config.AttendanceConfig{
		Storage:    config.StorageFile,
		Dir:        t.TempDir(),
		StorageKey: "attendance_records_v1",
		WorkStart:  9 * time.Hour,
		LateGrace:  time.Minute,
	}}

	tracker, closeFn, err := OpenTracker(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, closeFn)

	entries, err := tracker.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
