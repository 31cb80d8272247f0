// Package api wires the HTTP surface of the storefront backend: tracking
// endpoints, notification endpoints, the catalog read API, the gated
// admin API, auth routes and SEO scaffolding.
package api

import (
	"context"
	"database/sql"

	"github.com/redis/go-redis/v9"

	"github.com/rigparts/storefront/internal/auth"
	"github.com/rigparts/storefront/internal/domain"
	"github.com/rigparts/storefront/internal/service/catalog"
	"github.com/rigparts/storefront/internal/service/tracking"
)

// Notifier is the outbound notification contract. *sms.Notifier
// satisfies it; handler tests substitute fakes.
type Notifier interface {
	NotifyOrder(ctx context.Context, o *domain.OrderNotification) error
	NotifyQuote(ctx context.Context, q *domain.QuoteNotification) error
}

// Server holds the handler dependencies. Everything is injected at
// startup; there are no package-level singletons.
type Server struct {
	tracking *tracking.Service
	catalog  *catalog.Service
	notifier Notifier
	gate     *auth.Gate
	authMgr  *auth.Manager
	siteURL  string

	// Optional, for /health; nil skips the corresponding check.
	db    *sql.DB
	redis *redis.Client
}

// NewServer creates the API server.
func NewServer(
	trackingSvc *tracking.Service,
	catalogSvc *catalog.Service,
	notifier Notifier,
	gate *auth.Gate,
	authMgr *auth.Manager,
	siteURL string,
) *Server {
	return &Server{
		tracking: trackingSvc,
		catalog:  catalogSvc,
		notifier: notifier,
		gate:     gate,
		authMgr:  authMgr,
		siteURL:  siteURL,
	}
}

// SetHealthProbes attaches the connections checked by /health.
func (s *Server) SetHealthProbes(db *sql.DB, rdb *redis.Client) {
	s.db = db
	s.redis = rdb
}
