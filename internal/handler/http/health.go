package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
)

const healthMessage = "Backend is running"

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
	Ready(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db Pinger
}

func NewHealthHandler(db Pinger) HealthHandler {
	return &healthHandlerImpl{db: db}
}

// Health implements HealthHandler
func (h *healthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	response.Text(w, healthMessage)
}

// Ready implements HealthHandler
func (h *healthHandlerImpl) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("Database not ready", "error", err)
		response.ServiceUnavailable(w, "database not ready")
		return
	}
	response.Text(w, "ready")
}
