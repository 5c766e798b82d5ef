package logger

import (
	"io"
	"log/slog"

	"github.com/go-chi/httplog/v3"
)

const Version = "v1.0.0"

// New builds a JSON slog logger using the ECS field schema shared with the request logger.
func New(w io.Writer, app, env string, level slog.Level) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app),
		slog.String("version", Version),
		slog.String("env", env),
	)
}
