package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rigparts/storefront/internal/pkg/httputil"
)

// HandleHealth reports process liveness plus the state of the Postgres
// and Redis connections when probes are attached.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]any{"status": "ok"}
	healthy := true

	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			status["database"] = "down"
			healthy = false
		} else {
			status["database"] = "ok"
		}
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			status["redis"] = "down"
			healthy = false
		} else {
			status["redis"] = "ok"
		}
	}

	if !healthy {
		status["status"] = "degraded"
		httputil.JSON(w, http.StatusServiceUnavailable, status)
		return
	}
	httputil.OK(w, status)
}
