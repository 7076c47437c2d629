package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// UpdatePropertyUseCase applies a partial update: fields absent from the
// patch keep their stored values.
type UpdatePropertyUseCase struct {
	storage   port.PropertyStoragePort
	publisher port.PropertyEventPublisherPort
}

func NewUpdatePropertyUseCase(storage port.PropertyStoragePort, publisher port.PropertyEventPublisherPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{storage: storage, publisher: publisher}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateProperty", "property_id": id})

	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}

	updated, err := uc.storage.Update(ctx, id, patch)
	if err != nil {
		ucLogger.Warn("Property update failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Property updated", nil)
	publishPropertyEvent(ctx, uc.publisher, domain.PropertyUpdated, id)

	return updated, nil
}
