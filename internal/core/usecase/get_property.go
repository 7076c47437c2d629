package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// GetPropertyUseCase serves the property detail page. Unlike the listing,
// the detail view has no fallback: a missing store surfaces as an error.
type GetPropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyUseCase(storage port.PropertyStoragePort) *GetPropertyUseCase {
	return &GetPropertyUseCase{storage: storage}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetProperty", "property_id": id})

	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}

	property, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	return property, nil
}
