package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// DeletePropertyUseCase removes a listing for good. No soft delete, no
// tombstone: the row is gone.
type DeletePropertyUseCase struct {
	storage   port.PropertyStoragePort
	publisher port.PropertyEventPublisherPort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort, publisher port.PropertyEventPublisherPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{storage: storage, publisher: publisher}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DeleteProperty", "property_id": id})

	if uc.storage == nil {
		return domain.ErrStoreUnavailable
	}

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Warn("Property delete failed", port.Fields{"error": err.Error()})
		return err
	}

	ucLogger.Info("Property deleted", nil)
	publishPropertyEvent(ctx, uc.publisher, domain.PropertyDeleted, id)

	return nil
}
