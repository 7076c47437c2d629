package port

import (
	"context"

	"listing-service/internal/core/domain"
)

type UserStoragePort interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
