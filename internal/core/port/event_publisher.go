package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// PropertyEventPublisherPort delivers catalog mutation events to downstream
// consumers. Implementations must be safe to call concurrently.
type PropertyEventPublisherPort interface {
	PublishPropertyEvent(ctx context.Context, event domain.PropertyEvent) error
	Close() error
}
