package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rigparts/storefront/internal/pkg/httputil"
)

// HandleAdminStats returns per-campaign engagement totals.
// Query param: days (trailing window, default 30).
func (s *Server) HandleAdminStats(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	if days <= 0 {
		days = 30
	}

	stats, err := s.tracking.Stats(r.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, map[string]any{
		"window_days": days,
		"campaigns":   stats,
	})
}

// HandleAdminEvents returns recent tracking events.
// Query params: campaign (filter), limit.
func (s *Server) HandleAdminEvents(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := s.tracking.RecentEvents(r.Context(), r.URL.Query().Get("campaign"), limit)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, map[string]any{"events": events})
}
