package port

import (
	"context"

	"listing-service/internal/core/domain"
)

type AnalyticsStoragePort interface {
	InsertVisit(ctx context.Context, page, ipAddress, country string) error
	Stats(ctx context.Context) (*domain.AnalyticsStats, error)
	Logs(ctx context.Context) ([]domain.VisitLog, error)
	Daily(ctx context.Context, days int) ([]domain.DailyStat, error)
	Pages(ctx context.Context) ([]domain.PageStat, error)
}
