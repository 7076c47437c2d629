package usecase

import (
	"context"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

// CreatePropertyUseCase assigns the identity and timestamps, persists the
// listing and emits a best-effort catalog event. Write paths have no
// fallback: a store failure surfaces to the caller.
type CreatePropertyUseCase struct {
	storage   port.PropertyStoragePort
	publisher port.PropertyEventPublisherPort
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort, publisher port.PropertyEventPublisherPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{storage: storage, publisher: publisher}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, p domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateProperty"})

	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}

	now := time.Now().UTC()
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Badges == nil {
		p.Badges = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}

	if err := uc.storage.Create(ctx, p); err != nil {
		ucLogger.Error("Failed to create property", err, nil)
		return nil, err
	}

	ucLogger.Info("Property created", port.Fields{"property_id": p.ID})
	publishPropertyEvent(ctx, uc.publisher, domain.PropertyCreated, p.ID)

	return &p, nil
}

// publishPropertyEvent emits a catalog event without letting delivery
// problems reach the write path.
func publishPropertyEvent(ctx context.Context, publisher port.PropertyEventPublisherPort, action, propertyID string) {
	if publisher == nil {
		return
	}
	logger := contextkeys.LoggerFromContext(ctx)

	event := domain.PropertyEvent{
		Action:     action,
		PropertyID: propertyID,
		OccurredAt: time.Now().UTC(),
	}
	if err := publisher.PublishPropertyEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish property event", port.Fields{
			"action":      action,
			"property_id": propertyID,
			"error":       err.Error(),
		})
	}
}
