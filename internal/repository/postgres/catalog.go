package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rigparts/storefront/internal/domain"
	"github.com/rigparts/storefront/internal/service/catalog"
)

// CatalogRepo implements catalog.Repository against PostgreSQL.
type CatalogRepo struct{ db *sql.DB }

// NewCatalogRepo creates a Postgres-backed catalog repository.
func NewCatalogRepo(db *sql.DB) *CatalogRepo { return &CatalogRepo{db: db} }

func (r *CatalogRepo) Get(ctx context.Context, id string) (*domain.Part, error) {
	p := &domain.Part{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price_cents, COALESCE(category, ''),
		       in_stock, created_at
		FROM parts
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Category, &p.InStock, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

func (r *CatalogRepo) List(ctx context.Context, f catalog.ListFilter) ([]domain.Part, int, error) {
	where := ""
	args := []interface{}{}
	idx := 1
	if f.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", idx, idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}
	if f.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", idx)
		args = append(args, f.Category)
		idx++
	}

	var total int
	countQ := "SELECT COUNT(*) FROM parts WHERE 1=1" + where
	if err := r.db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count parts: %w", err)
	}

	q := `
		SELECT id, name, COALESCE(description, ''), price_cents, COALESCE(category, ''),
		       in_stock, created_at
		FROM parts WHERE 1=1` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var out []domain.Part
	for rows.Next() {
		var p domain.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Category, &p.InStock, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan part: %w", err)
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *CatalogRepo) IDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM parts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list part ids: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan part id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
