package tracking

import (
	"context"
	"time"

	"github.com/rigparts/storefront/internal/domain"
)

// Repository defines the data access contract for tracking events.
// Implementations must be safe for concurrent use.
type Repository interface {
	// InsertOpen records an open event unless one already exists for
	// (campaignID, email). Returns true if a row was inserted, false if
	// the pair was already recorded. The dedup guarantee is the store's:
	// implementations must be atomic under concurrent first opens, not
	// read-then-write.
	InsertOpen(ctx context.Context, campaignID, email string) (bool, error)

	// InsertClick records a click event. Clicks are never deduplicated.
	InsertClick(ctx context.Context, campaignID, email, partID string) error

	// ListEvents returns the most recent events, optionally filtered by
	// campaign, newest first.
	ListEvents(ctx context.Context, campaignID string, limit int) ([]domain.TrackingEvent, error)

	// CampaignStats aggregates open/click totals per campaign since the
	// given time.
	CampaignStats(ctx context.Context, since time.Time) ([]domain.CampaignStats, error)
}
