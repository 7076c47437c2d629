package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

const defaultRelatedLimit = 4

type GetRelatedPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetRelatedPropertiesUseCase(storage port.PropertyStoragePort) *GetRelatedPropertiesUseCase {
	return &GetRelatedPropertiesUseCase{storage: storage}
}

func (uc *GetRelatedPropertiesUseCase) Execute(ctx context.Context, id string, limit int) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetRelatedProperties", "property_id": id})

	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if limit < 1 {
		limit = defaultRelatedLimit
	}

	related, err := uc.storage.GetRelated(ctx, id, limit)
	if err != nil {
		ucLogger.Warn("Related lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Debug("Related listings found", port.Fields{"count": len(related)})
	return related, nil
}
