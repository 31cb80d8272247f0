// Package catalog exposes read access to the parts catalog. The catalog
// is managed by an external system; this backend only lists and fetches
// parts for the API, click-redirect targets and the sitemap.
package catalog

import (
	"context"
	"errors"

	"github.com/rigparts/storefront/internal/domain"
)

// ErrNotFound is returned when a part does not exist.
var ErrNotFound = errors.New("part not found")

// Repository defines the data access contract for catalog parts.
type Repository interface {
	// Get returns a single part. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Part, error)

	// List returns parts matching the filter plus the total match count,
	// ordered by created_at DESC.
	List(ctx context.Context, f ListFilter) ([]domain.Part, int, error)

	// IDs returns every part id, for sitemap generation.
	IDs(ctx context.Context) ([]string, error)
}

// ListFilter controls pagination and search for part listings.
type ListFilter struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}

// Service implements catalog reads over a Repository.
type Service struct {
	repo Repository
}

// NewService creates a catalog service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns a single part.
func (s *Service) Get(ctx context.Context, id string) (*domain.Part, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// List returns parts matching the filter.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Part, int, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	return s.repo.List(ctx, f)
}

// PartIDs returns every catalog part id.
func (s *Service) PartIDs(ctx context.Context) ([]string, error) {
	return s.repo.IDs(ctx)
}
