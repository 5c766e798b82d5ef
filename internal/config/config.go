package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	API        APIConfig
	Attendance AttendanceConfig
	Redis      RedisConfig
}

type DatabaseConfig struct {
	URL           string
	Host          string
	Port          int
	User          string
	Password      string
	Name          string
	SSLMode       string
	RunMigrations bool
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
}

// APIConfig holds settings the CLI uses to reach the backend
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AttendanceConfig holds settings of the local attendance log
type AttendanceConfig struct {
	Storage    string
	Dir        string
	StorageKey string
	WorkStart  time.Duration
	LateGrace  time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	runMigrations, err := strconv.ParseBool(getEnv("DB_RUN_MIGRATIONS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_RUN_MIGRATIONS: %w", err)
	}

	config.Database = DatabaseConfig{
		URL:           getEnv("DATABASE_URL", ""),
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          dbPort,
		User:          getEnv("DB_USER", "postgres"),
		Password:      getEnv("DB_PASSWORD", ""),
		Name:          getEnv("DB_NAME", "attendance"),
		SSLMode:       getEnv("DB_SSL_MODE", "disable"),
		RunMigrations: runMigrations,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "4000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	// API client configuration
	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	config.API = APIConfig{
		BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:4000"), "/"),
		Timeout: apiTimeout,
	}

	// Attendance log configuration
	workStart, err := ParseClock(getEnv("WORK_START", "09:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_START: %w", err)
	}

	lateGrace, err := time.ParseDuration(getEnv("LATE_GRACE", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_GRACE: %w", err)
	}

	config.Attendance = AttendanceConfig{
		Storage:    getEnv("ATTENDANCE_STORAGE", StorageFile),
		Dir:        getEnv("ATTENDANCE_DIR", defaultAttendanceDir()),
		StorageKey: getEnv("ATTENDANCE_STORAGE_KEY", "attendance_records_v1"),
		WorkStart:  workStart,
		LateGrace:  lateGrace,
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	switch c.Attendance.Storage {
	case StorageFile:
		if c.Attendance.Dir == "" {
			return fmt.Errorf("ATTENDANCE_DIR is required for file storage")
		}
	case StorageRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for redis storage")
		}
	default:
		return fmt.Errorf("unsupported ATTENDANCE_STORAGE: %s", c.Attendance.Storage)
	}
	if c.Attendance.StorageKey == "" {
		return fmt.Errorf("ATTENDANCE_STORAGE_KEY is required")
	}
	if c.Attendance.LateGrace < 0 {
		return fmt.Errorf("LATE_GRACE cannot be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// LogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseClock parses a wall-clock time "HH:MM" into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func defaultAttendanceDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".attendance"
	}
	return filepath.Join(homeDir, ".attendance")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
