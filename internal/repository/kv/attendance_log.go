package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/storage"
)

type attendanceLogImpl struct {
	store storage.KeyValueStore
	key   string
	mu    sync.Mutex
}

func NewAttendanceLog(store storage.KeyValueStore, key string) attendance.EntryStore {
	return &attendanceLogImpl{store: store, key: key}
}

// Load implements attendance.EntryStore.
func (l *attendanceLogImpl) Load(ctx context.Context) ([]attendance.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.load(ctx)
}

// Append implements attendance.EntryStore.
func (l *attendanceLogImpl) Append(ctx context.Context, entries ...attendance.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current, err := l.load(ctx)
	if err != nil {
		return err
	}

	next := make([]attendance.Entry, 0, len(current)+len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		next = append(next, entries[i])
	}
	next = append(next, current...)

	return l.save(ctx, next)
}

// Clear implements attendance.EntryStore.
func (l *attendanceLogImpl) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.save(ctx, []attendance.Entry{})
}

func (l *attendanceLogImpl) load(ctx context.Context) ([]attendance.Entry, error) {
	raw, err := l.store.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []attendance.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read attendance log: %w", err)
	}

	var entries []attendance.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.Warn("Attendance log is corrupt, starting empty", "key", l.key, "error", err)
		return []attendance.Entry{}, nil
	}
	if entries == nil {
		entries = []attendance.Entry{}
	}
	return entries, nil
}

func (l *attendanceLogImpl) save(ctx context.Context, entries []attendance.Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode attendance log: %w", err)
	}
	if err := l.store.Set(ctx, l.key, raw); err != nil {
		return fmt.Errorf("failed to write attendance log: %w", err)
	}
	return nil
}
