package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// PropertyStoragePort is the live store behind the listing service.
//
// FindWithFilters runs the compiled predicates as a count query plus a
// bounded, ordered fetch and returns the page rows together with the total
// matching row count. The two reads are independent; under concurrent
// writes total and page are not guaranteed mutually consistent, which is
// acceptable for this read-mostly domain.
type PropertyStoragePort interface {
	FindWithFilters(ctx context.Context, filters domain.PropertyFilters, limit, offset int) ([]domain.Property, int, error)

	GetByID(ctx context.Context, id string) (*domain.Property, error)

	// GetRelated returns up to limit listings from the same city as the
	// given property, nearest (by geohash prefix) and newest first.
	GetRelated(ctx context.Context, id string, limit int) ([]domain.Property, error)

	Create(ctx context.Context, p domain.Property) error
	Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
}

// FallbackPort supplies the degraded-mode result set. It applies the same
// pagination contract as the live path but deliberately ignores filters:
// in degraded mode availability wins over filter fidelity.
type FallbackPort interface {
	ListPage(page, limit int) *domain.PageResult
}
