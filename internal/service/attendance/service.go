package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	store     attendance.EntryStore
	workHours attendance.WorkHours
	now       func() time.Time

	// serializes check-then-append so two calls cannot both pass a guard
	mu sync.Mutex
}

type Option func(*AttendanceServiceImpl)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *AttendanceServiceImpl) { s.now = now }
}

func NewAttendanceService(store attendance.EntryStore, workHours attendance.WorkHours, opts ...Option) attendance.AttendanceService {
	s := &AttendanceServiceImpl{
		store:     store,
		workHours: workHours,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) ([]attendance.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today, err := s.todaysEntries(ctx, now)
	if err != nil {
		return nil, err
	}
	if hasType(today, attendance.EntryCheckIn) {
		return nil, attendance.ErrAlreadyCheckedIn
	}

	var added []attendance.Entry
	if s.workHours.IsLate(now) {
		late := attendance.NewEntry(now, attendance.EntryLate)
		late.Note = attendance.LateNote
		added = append(added, late)
	}
	added = append(added, attendance.NewEntry(now, attendance.EntryCheckIn))

	if err := s.store.Append(ctx, added...); err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}
	slog.Debug("Checked in", "date", added[0].Date, "late", len(added) > 1)
	return added, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today, err := s.todaysEntries(ctx, now)
	if err != nil {
		return attendance.Entry{}, err
	}
	if !hasType(today, attendance.EntryCheckIn) {
		return attendance.Entry{}, attendance.ErrNotCheckedIn
	}
	if hasType(today, attendance.EntryCheckOut) {
		return attendance.Entry{}, attendance.ErrAlreadyCheckedOut
	}

	entry := attendance.NewEntry(now, attendance.EntryCheckOut)
	if err := s.store.Append(ctx, entry); err != nil {
		return attendance.Entry{}, fmt.Errorf("failed to record check-out: %w", err)
	}
	return entry, nil
}

// SubmitLeave implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SubmitLeave(ctx context.Context, form *attendance.LeaveForm) (attendance.Entry, error) {
	if err := form.Validate(); err != nil {
		return attendance.Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := attendance.NewEntry(now, attendance.EntryLeave)
	entry.LeaveDate = form.Date
	entry.LeaveType = form.Type
	entry.Note = form.TrimmedNote()

	if err := s.store.Append(ctx, entry); err != nil {
		return attendance.Entry{}, fmt.Errorf("failed to record leave: %w", err)
	}

	form.Reset(now.Format(attendance.DateLayout))
	return entry, nil
}

// ClearAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClearAll(ctx context.Context, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return attendance.ErrClearCancelled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear attendance log: %w", err)
	}
	return nil
}

// Entries implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Entries(ctx context.Context) ([]attendance.Entry, error) {
	return s.store.Load(ctx)
}

// Summary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summary(ctx context.Context) (attendance.Summary, error) {
	now := s.now()
	today, err := s.todaysEntries(ctx, now)
	if err != nil {
		return attendance.Summary{}, err
	}

	return attendance.Summary{
		Date:       now.Format(attendance.DateLayout),
		Time:       now.Format(attendance.TimeLayout),
		State:      dayState(today),
		LateNow:    s.workHours.IsLate(now),
		TodayCount: len(today),
	}, nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today() string {
	return s.now().Format(attendance.DateLayout)
}

func (s *AttendanceServiceImpl) todaysEntries(ctx context.Context, now time.Time) ([]attendance.Entry, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	date := now.Format(attendance.DateLayout)
	var today []attendance.Entry
	for _, e := range entries {
		if e.Date == date {
			today = append(today, e)
		}
	}
	return today, nil
}

func dayState(today []attendance.Entry) attendance.DayState {
	switch {
	case hasType(today, attendance.EntryCheckOut):
		return attendance.StateCheckedOut
	case hasType(today, attendance.EntryCheckIn):
		return attendance.StateCheckedIn
	default:
		return attendance.StateNotCheckedIn
	}
}

func hasType(entries []attendance.Entry, typ attendance.EntryType) bool {
	for _, e := range entries {
		if e.Type == typ {
			return true
		}
	}
	return false
}
