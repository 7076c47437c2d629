package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type ListPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.PropertyFilters, page, limit int) (*domain.PageResult, error)
}

type GetPropertyUseCase interface {
	Execute(ctx context.Context, id string) (*domain.Property, error)
}

type GetRelatedPropertiesUseCase interface {
	Execute(ctx context.Context, id string, limit int) ([]domain.Property, error)
}

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, p domain.Property) (*domain.Property, error)
}

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, id string) error
}
