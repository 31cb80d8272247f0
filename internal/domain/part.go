package domain

import "time"

// Part is a catalog item. The catalog itself is managed elsewhere; the
// storefront backend only reads parts for the API, click-redirect targets
// and the sitemap.
type Part struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Category    string    `json:"category,omitempty"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}
