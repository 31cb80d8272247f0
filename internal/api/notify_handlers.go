package api

import (
	"encoding/json"
	"net/http"

	"github.com/rigparts/storefront/internal/domain"
	"github.com/rigparts/storefront/internal/pkg/httputil"
)

// notifyResponse is the envelope for notification endpoints. These are a
// best-effort side channel: a failed SMS must never block the order or
// quote submission that triggered it, so failures are reported in-band
// with HTTP 200 and never retried.
type notifyResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// HandleOrderNotification texts an order summary to the operator.
func (s *Server) HandleOrderNotification(w http.ResponseWriter, r *http.Request) {
	var payload domain.OrderNotification
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.OK(w, notifyResponse{Success: false, Error: "invalid payload: " + err.Error()})
		return
	}

	if err := s.notifier.NotifyOrder(r.Context(), &payload); err != nil {
		httputil.OK(w, notifyResponse{Success: false, Error: err.Error()})
		return
	}
	httputil.OK(w, notifyResponse{Success: true})
}

// HandleQuoteNotification texts a quote request to the operator.
func (s *Server) HandleQuoteNotification(w http.ResponseWriter, r *http.Request) {
	var payload domain.QuoteNotification
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.OK(w, notifyResponse{Success: false, Error: "invalid payload: " + err.Error()})
		return
	}

	if err := s.notifier.NotifyQuote(r.Context(), &payload); err != nil {
		httputil.OK(w, notifyResponse{Success: false, Error: err.Error()})
		return
	}
	httputil.OK(w, notifyResponse{Success: true})
}
