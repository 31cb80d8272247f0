// Package postgres contains the PostgreSQL implementations of the
// repository interfaces defined in the service packages.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rigparts/storefront/internal/domain"
)

// TrackingRepo implements tracking.Repository against PostgreSQL.
//
// Open dedup relies on the partial unique index
//
//	CREATE UNIQUE INDEX ux_tracking_events_open
//	  ON tracking_events (campaign_id, customer_email)
//	  WHERE event_type = 'open';
//
// so two concurrent first-opens for the same pair resolve to one row
// without a read-before-write.
type TrackingRepo struct{ db *sql.DB }

// NewTrackingRepo creates a Postgres-backed tracking repository.
func NewTrackingRepo(db *sql.DB) *TrackingRepo { return &TrackingRepo{db: db} }

func (r *TrackingRepo) InsertOpen(ctx context.Context, campaignID, email string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tracking_events (id, campaign_id, customer_email, event_type, created_at)
		VALUES ($1, $2, $3, 'open', NOW())
		ON CONFLICT (campaign_id, customer_email) WHERE event_type = 'open' DO NOTHING
	`, uuid.New().String(), campaignID, email)
	if err != nil {
		return false, fmt.Errorf("insert open event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert open event: rows affected: %w", err)
	}
	return n == 1, nil
}

func (r *TrackingRepo) InsertClick(ctx context.Context, campaignID, email, partID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tracking_events (id, campaign_id, customer_email, event_type, part_id, created_at)
		VALUES ($1, $2, $3, 'click', $4, NOW())
	`, uuid.New().String(), campaignID, email, partID)
	if err != nil {
		return fmt.Errorf("insert click event: %w", err)
	}
	return nil
}

func (r *TrackingRepo) ListEvents(ctx context.Context, campaignID string, limit int) ([]domain.TrackingEvent, error) {
	q := `
		SELECT id, campaign_id, customer_email, event_type, COALESCE(part_id, ''), created_at
		FROM tracking_events`
	args := []interface{}{}
	idx := 1
	if campaignID != "" {
		q += fmt.Sprintf(" WHERE campaign_id = $%d", idx)
		args = append(args, campaignID)
		idx++
	}
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", idx)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	defer rows.Close()

	var out []domain.TrackingEvent
	for rows.Next() {
		var e domain.TrackingEvent
		if err := rows.Scan(&e.ID, &e.CampaignID, &e.CustomerEmail, &e.EventType, &e.PartID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tracking event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *TrackingRepo) CampaignStats(ctx context.Context, since time.Time) ([]domain.CampaignStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT campaign_id,
		       COUNT(*) FILTER (WHERE event_type = 'open'),
		       COUNT(*) FILTER (WHERE event_type = 'click'),
		       COUNT(DISTINCT customer_email) FILTER (WHERE event_type = 'open'),
		       COUNT(DISTINCT customer_email) FILTER (WHERE event_type = 'click')
		FROM tracking_events
		WHERE created_at >= $1
		GROUP BY campaign_id
		ORDER BY campaign_id
	`, since)
	if err != nil {
		return nil, fmt.Errorf("campaign stats: %w", err)
	}
	defer rows.Close()

	var out []domain.CampaignStats
	for rows.Next() {
		var s domain.CampaignStats
		if err := rows.Scan(&s.CampaignID, &s.OpenCount, &s.ClickCount, &s.UniqueOpens, &s.UniqueClicks); err != nil {
			return nil, fmt.Errorf("scan campaign stats: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
