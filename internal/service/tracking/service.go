package tracking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rigparts/storefront/internal/domain"
	"github.com/rigparts/storefront/internal/pkg/logger"
)

// Service implements engagement-recording business logic. All methods are
// safe for concurrent use if the underlying repository is.
type Service struct {
	repo    Repository
	siteURL string
}

// NewService creates a tracking service. siteURL is the public storefront
// origin used to build click-redirect targets; a trailing slash is
// trimmed so redirect URLs are always {siteURL}/catalog/{partID}.
func NewService(repo Repository, siteURL string) *Service {
	return &Service{
		repo:    repo,
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

// RecordOpen records an open event for (campaignID, email). At most one
// open row ever exists per pair; repeat calls are no-ops. The caller
// serves the pixel regardless of whether an insert happened.
func (s *Service) RecordOpen(ctx context.Context, campaignID, email string) error {
	if campaignID == "" {
		return ErrMissingCampaign
	}
	if email == "" {
		return ErrMissingEmail
	}

	inserted, err := s.repo.InsertOpen(ctx, campaignID, email)
	if err != nil {
		return fmt.Errorf("record open: %w", err)
	}
	if inserted {
		logger.Info("open recorded", "campaign", campaignID, "email", email)
	} else {
		logger.Debug("open already recorded", "campaign", campaignID, "email", email)
	}
	return nil
}

// RecordClick records a click event and returns the catalog URL to
// redirect to. Clicks are recorded unconditionally; if the insert fails,
// no redirect URL is returned and the caller responds with an error (the
// redirect must not outrun the record).
func (s *Service) RecordClick(ctx context.Context, campaignID, email, partID string) (string, error) {
	if campaignID == "" {
		return "", ErrMissingCampaign
	}
	if email == "" {
		return "", ErrMissingEmail
	}
	if partID == "" {
		return "", ErrMissingPart
	}

	if err := s.repo.InsertClick(ctx, campaignID, email, partID); err != nil {
		return "", fmt.Errorf("record click: %w", err)
	}

	logger.Info("click recorded", "campaign", campaignID, "email", email, "part", partID)
	return s.RedirectURL(partID), nil
}

// RedirectURL returns the catalog detail page address for a part.
func (s *Service) RedirectURL(partID string) string {
	return fmt.Sprintf("%s/catalog/%s", s.siteURL, partID)
}

// RecentEvents returns up to limit recent events, optionally filtered by
// campaign.
func (s *Service) RecentEvents(ctx context.Context, campaignID string, limit int) ([]domain.TrackingEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.ListEvents(ctx, campaignID, limit)
}

// Stats aggregates per-campaign engagement over the trailing window.
func (s *Service) Stats(ctx context.Context, window time.Duration) ([]domain.CampaignStats, error) {
	if window <= 0 {
		window = 30 * 24 * time.Hour
	}
	return s.repo.CampaignStats(ctx, time.Now().Add(-window))
}
