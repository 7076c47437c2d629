package postgres

import (
	"context"
	"errors"
	"fmt"

	"listing-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStorageAdapter implements UserStoragePort for PostgreSQL.
type UserStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewUserStorageAdapter(pool *pgxpool.Pool) (*UserStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &UserStorageAdapter{pool: pool}, nil
}

func (a *UserStorageAdapter) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u domain.User
	query := "SELECT id, username, password_hash FROM users WHERE username = $1"
	err := a.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return &u, nil
}
