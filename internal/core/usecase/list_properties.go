package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// ListPropertiesUseCase is the listing orchestrator. Each call tries the
// live store first and falls back to the static provider for that call
// only; the shared health flag is updated for observability but never
// consulted for routing. A nil storage (the pool could not be built at
// startup) pins the service to the fallback for its whole lifetime.
type ListPropertiesUseCase struct {
	storage  port.PropertyStoragePort
	fallback port.FallbackPort
	health   *domain.StoreHealth
}

func NewListPropertiesUseCase(storage port.PropertyStoragePort, fallback port.FallbackPort, health *domain.StoreHealth) *ListPropertiesUseCase {
	uc := &ListPropertiesUseCase{storage: storage, fallback: fallback, health: health}
	if storage == nil {
		health.MarkDegraded()
	}
	return uc
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters, page, limit int) (*domain.PageResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListProperties",
		"page":     page,
		"limit":    limit,
	})

	if uc.storage == nil {
		ucLogger.Debug("No store configured, serving fallback dataset", nil)
		return uc.fallback.ListPage(page, limit), nil
	}

	offset := domain.Pagination{Page: page, Limit: limit}.Offset()

	data, total, err := uc.storage.FindWithFilters(ctx, filters, limit, offset)
	if err != nil {
		// Any store failure degrades this call to the fallback dataset.
		// The client still gets a well-formed page; filters are ignored.
		uc.health.MarkDegraded()
		ucLogger.Error("Store failed, serving fallback dataset", err, nil)
		return uc.fallback.ListPage(page, limit), nil
	}

	uc.health.MarkLive()
	ucLogger.Info("Listing served from store", port.Fields{
		"total_found":   total,
		"items_on_page": len(data),
	})

	return domain.NewPageResult(data, total, page, limit), nil
}
