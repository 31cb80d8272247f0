package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Routes builds the full router.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Credentialed CORS for the storefront front-end; tracking endpoints
	// are loaded cross-origin from email clients and need no CORS.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.siteURL, "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.HandleHealth)

	// Engagement tracking (public, fire-and-forget from the client side).
	r.Get("/track/open", s.HandleOpenPixel)
	r.Get("/track/click", s.HandleClickRedirect)

	// SEO scaffolding.
	r.Get("/sitemap.xml", s.HandleSitemap)
	r.Get("/robots.txt", s.HandleRobots)

	if s.authMgr != nil {
		r.Get("/auth/login", s.authMgr.HandleLogin)
		r.Get("/auth/callback", s.authMgr.HandleCallback)
		r.Get("/auth/logout", s.authMgr.HandleLogout)
		r.Get("/auth/user", s.authMgr.HandleUserInfo)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/parts", s.HandleListParts)
		r.Get("/parts/{id}", s.HandleGetPart)

		r.Post("/notifications/order", s.HandleOrderNotification)
		r.Post("/notifications/quote", s.HandleQuoteNotification)

		// Admin area: the gate runs on every request, before any
		// protected handler.
		r.Route("/admin", func(r chi.Router) {
			r.Use(s.gate.RequireAdmin)
			r.Get("/stats", s.HandleAdminStats)
			r.Get("/events", s.HandleAdminEvents)
		})
	})

	return r
}
