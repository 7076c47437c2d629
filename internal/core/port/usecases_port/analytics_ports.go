package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type TrackVisitUseCase interface {
	Execute(ctx context.Context, page, ipAddress, country string) error
}

type GetAnalyticsUseCase interface {
	Stats(ctx context.Context) (*domain.AnalyticsStats, error)
	Logs(ctx context.Context) ([]domain.VisitLog, error)
	Daily(ctx context.Context, days int) ([]domain.DailyStat, error)
	Pages(ctx context.Context) ([]domain.PageStat, error)
}
