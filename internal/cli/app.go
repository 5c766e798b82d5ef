package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/client"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/logger"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/kv"
	attendanceService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/attendance"
)

const redisKeyPrefix = "attendance:"

// APIClient is the part of the backend the CLI reads from.
type APIClient interface {
	ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error)
	ListTimeRecords(ctx context.Context) ([]timerecord.TimeRecordResponse, error)
}

// OpenTrackerFunc opens the attendance log backend. The returned close func releases it.
type OpenTrackerFunc func(ctx context.Context) (attendance.AttendanceService, func() error, error)

// App carries everything the commands need. Zero Tick means one second.
type App struct {
	API         APIClient
	OpenTracker OpenTrackerFunc
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
	Tick        time.Duration

	tracker attendance.AttendanceService
	closers []func() error
}

func (a *App) loadTracker(ctx context.Context) (attendance.AttendanceService, error) {
	if a.tracker != nil {
		return a.tracker, nil
	}
	tracker, closeFn, err := a.OpenTracker(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open attendance log: %w", err)
	}
	a.tracker = tracker
	if closeFn != nil {
		a.closers = append(a.closers, closeFn)
	}
	return tracker, nil
}

func (a *App) tick() time.Duration {
	if a.Tick <= 0 {
		return time.Second
	}
	return a.Tick
}

// Close releases the attendance log backend if one was opened.
func (a *App) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			slog.Warn("Failed to close attendance storage", "error", err)
		}
	}
	a.closers = nil
}

// Execute runs the attendance CLI with os.Args and returns the process exit code.
func Execute(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		return 1
	}

	slog.SetDefault(logger.New(os.Stderr, "attendance-cli", cfg.App.Env, cfg.LogLevel()))

	app := &App{
		API: client.New(cfg.API.BaseURL, cfg.API.Timeout),
		OpenTracker: func(ctx context.Context) (attendance.AttendanceService, func() error, error) {
			return OpenTracker(ctx, cfg)
		},
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
	defer app.Close()

	if err := NewRootCommand(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(app.Err, err)
		return 1
	}
	return 0
}

// OpenTracker builds the attendance service over the configured storage backend.
func OpenTracker(ctx context.Context, cfg *config.Config) (attendance.AttendanceService, func() error, error) {
	var (
		store   storage.KeyValueStore
		closeFn func() error
	)

	switch cfg.Attendance.Storage {
	case config.StorageRedis:
		rdb, err := storage.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		store = storage.NewRedisStorage(rdb, redisKeyPrefix)
		closeFn = rdb.Close
	default:
		local, err := storage.NewLocalStorage(cfg.Attendance.Dir)
		if err != nil {
			return nil, nil, err
		}
		store = local
	}

	slog.Debug("Attendance storage opened", "backend", cfg.Attendance.Storage, "key", cfg.Attendance.StorageKey)

	workHours := attendance.WorkHours{Start: cfg.Attendance.WorkStart, Grace: cfg.Attendance.LateGrace}
	entryLog := kv.NewAttendanceLog(store, cfg.Attendance.StorageKey)
	return attendanceService.NewAttendanceService(entryLog, workHours), closeFn, nil
}
