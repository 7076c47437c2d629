package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// TrackVisitUseCase records one page view from the public site.
type TrackVisitUseCase struct {
	storage port.AnalyticsStoragePort
}

func NewTrackVisitUseCase(storage port.AnalyticsStoragePort) *TrackVisitUseCase {
	return &TrackVisitUseCase{storage: storage}
}

func (uc *TrackVisitUseCase) Execute(ctx context.Context, page, ipAddress, country string) error {
	if uc.storage == nil {
		return domain.ErrStoreUnavailable
	}
	if err := uc.storage.InsertVisit(ctx, page, ipAddress, country); err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to track visit", err, port.Fields{"page": page})
		return err
	}
	return nil
}

// AnalyticsUseCase serves the admin dashboard's visit reports.
type AnalyticsUseCase struct {
	storage port.AnalyticsStoragePort
}

func NewAnalyticsUseCase(storage port.AnalyticsStoragePort) *AnalyticsUseCase {
	return &AnalyticsUseCase{storage: storage}
}

func (uc *AnalyticsUseCase) Stats(ctx context.Context) (*domain.AnalyticsStats, error) {
	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return uc.storage.Stats(ctx)
}

func (uc *AnalyticsUseCase) Logs(ctx context.Context) ([]domain.VisitLog, error) {
	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return uc.storage.Logs(ctx)
}

func (uc *AnalyticsUseCase) Daily(ctx context.Context, days int) ([]domain.DailyStat, error) {
	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if days < 1 || days > 365 {
		days = 30
	}
	return uc.storage.Daily(ctx, days)
}

func (uc *AnalyticsUseCase) Pages(ctx context.Context) ([]domain.PageStat, error) {
	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return uc.storage.Pages(ctx)
}
