package domain

import "time"

// TrackingEventType enumerates the kinds of campaign engagement events.
type TrackingEventType string

const (
	EventOpen  TrackingEventType = "open"
	EventClick TrackingEventType = "click"
)

// TrackingEvent is a single engagement signal from a campaign recipient.
// Events are append-only: created once by the tracking endpoints and never
// updated or deleted. Open events are unique per (campaign, email); click
// events are unbounded and always carry the part that was followed.
type TrackingEvent struct {
	ID            string            `json:"id"`
	CampaignID    string            `json:"campaign_id"`
	CustomerEmail string            `json:"customer_email"`
	EventType     TrackingEventType `json:"event_type"`
	PartID        string            `json:"part_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// CampaignStats aggregates engagement totals for one campaign.
type CampaignStats struct {
	CampaignID   string `json:"campaign_id"`
	OpenCount    int    `json:"open_count"`
	ClickCount   int    `json:"click_count"`
	UniqueOpens  int    `json:"unique_opens"`
	UniqueClicks int    `json:"unique_clicks"`
}
