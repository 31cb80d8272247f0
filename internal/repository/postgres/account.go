package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rigparts/storefront/internal/auth"
	"github.com/rigparts/storefront/internal/domain"
)

// AccountRepo implements auth.AccountRepository against PostgreSQL.
type AccountRepo struct{ db *sql.DB }

// NewAccountRepo creates a Postgres-backed account repository.
func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{db: db} }

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a := &domain.Account{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, COALESCE(name, ''), is_admin, created_at
		FROM accounts
		WHERE LOWER(email) = LOWER($1)
	`, strings.TrimSpace(email)).Scan(&a.ID, &a.Email, &a.Name, &a.IsAdmin, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, auth.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return a, nil
}
