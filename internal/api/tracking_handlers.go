package api

import (
	"net/http"

	"github.com/rigparts/storefront/internal/service/tracking"
)

// 1x1 transparent GIF
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00,
	0x80, 0x00, 0x00, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x2c,
	0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x02,
	0x02, 0x44, 0x01, 0x00, 0x3b,
}

// HandleOpenPixel records an open event and serves the tracking pixel.
// Query params: c=campaign id, e=customer email. The pixel is served
// with caching disabled so every email load re-hits the endpoint; the
// dedup lives in the store, not the cache.
//
// Tracking endpoints return plain-text errors by contract, not the JSON
// envelope.
func (s *Server) HandleOpenPixel(w http.ResponseWriter, r *http.Request) {
	campaignID := r.URL.Query().Get("c")
	email := r.URL.Query().Get("e")

	if err := s.tracking.RecordOpen(r.Context(), campaignID, email); err != nil {
		if tracking.IsBadRequest(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.servePixel(w)
}

// HandleClickRedirect records a click event and redirects to the part's
// catalog page. Query params: c=campaign id, e=customer email,
// p=part id. The redirect is withheld if the event could not be
// recorded.
func (s *Server) HandleClickRedirect(w http.ResponseWriter, r *http.Request) {
	campaignID := r.URL.Query().Get("c")
	email := r.URL.Query().Get("e")
	partID := r.URL.Query().Get("p")

	target, err := s.tracking.RecordClick(r.Context(), campaignID, email, partID)
	if err != nil {
		if tracking.IsBadRequest(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

func (s *Server) servePixel(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.Write(pixelGIF)
}
