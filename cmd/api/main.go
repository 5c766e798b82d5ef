package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/logger"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	employeeService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/employee"
	timeRecordService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/timerecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, "attendance-api", cfg.App.Env, cfg.LogLevel())
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	timeRecordSvc := timeRecordService.NewTimeRecordService(timeRecordRepo)

	healthHandler := appHTTP.NewHealthHandler(db)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeRecordHandler := appHTTP.NewTimeRecordHandler(timeRecordSvc)

	router := appHTTP.NewRouter(
		log,
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			LogLevel:       cfg.LogLevel(),
		},
		healthHandler,
		employeeHandler,
		timeRecordHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", fmt.Sprintf("http://localhost%s", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
