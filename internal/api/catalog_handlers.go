package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rigparts/storefront/internal/pkg/httputil"
	"github.com/rigparts/storefront/internal/service/catalog"
)

// HandleListParts returns a paginated part listing.
// Query params: q (search), category, limit, offset.
func (s *Server) HandleListParts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	parts, total, err := s.catalog.List(r.Context(), catalog.ListFilter{
		Search:   q.Get("q"),
		Category: q.Get("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, map[string]any{
		"parts": parts,
		"total": total,
	})
}

// HandleGetPart returns one part by id.
func (s *Server) HandleGetPart(w http.ResponseWriter, r *http.Request) {
	part, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			httputil.NotFound(w, "part not found")
			return
		}
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, part)
}
