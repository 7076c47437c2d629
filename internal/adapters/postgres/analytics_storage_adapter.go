package postgres

import (
	"context"
	"errors"
	"fmt"

	"listing-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// logsLimit caps the raw log listing for the admin dashboard.
const logsLimit = 1000

// AnalyticsStorageAdapter implements AnalyticsStoragePort for PostgreSQL.
type AnalyticsStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewAnalyticsStorageAdapter(pool *pgxpool.Pool) (*AnalyticsStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &AnalyticsStorageAdapter{pool: pool}, nil
}

func (a *AnalyticsStorageAdapter) InsertVisit(ctx context.Context, page, ipAddress, country string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	sql := "INSERT INTO analytics_logs (page, ip_address, country, timestamp) VALUES ($1, $2, $3, now())"
	if _, err := a.pool.Exec(ctx, sql, page, ipAddress, country); err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}
	return nil
}

func (a *AnalyticsStorageAdapter) Stats(ctx context.Context) (*domain.AnalyticsStats, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stats := &domain.AnalyticsStats{
		AvgSessionDuration: "N/A",
		BounceRate:         "N/A",
	}

	query := "SELECT COUNT(*), COUNT(DISTINCT ip_address) FROM analytics_logs"
	if err := a.pool.QueryRow(ctx, query).Scan(&stats.PageViews, &stats.UniqueVisitors); err != nil {
		return nil, fmt.Errorf("failed to aggregate visits: %w", err)
	}
	stats.TotalVisitors = stats.PageViews

	topQuery := `
		SELECT country FROM analytics_logs
		WHERE country != ''
		GROUP BY country
		ORDER BY COUNT(*) DESC, country ASC
		LIMIT 1`
	if err := a.pool.QueryRow(ctx, topQuery).Scan(&stats.TopCountry); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to find top country: %w", err)
		}
	}
	return stats, nil
}

func (a *AnalyticsStorageAdapter) Logs(ctx context.Context) ([]domain.VisitLog, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT id, page, ip_address, country, timestamp
		FROM analytics_logs
		ORDER BY timestamp DESC, id DESC
		LIMIT %d`, logsLimit,
	)
	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query visit logs: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.VisitLog, 0)
	for rows.Next() {
		var l domain.VisitLog
		if err := rows.Scan(&l.ID, &l.Page, &l.IPAddress, &l.Country, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan visit log row: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (a *AnalyticsStorageAdapter) Daily(ctx context.Context, days int) ([]domain.DailyStat, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT to_char(timestamp::date, 'YYYY-MM-DD') AS day,
			COUNT(DISTINCT ip_address), COUNT(*)
		FROM analytics_logs
		WHERE timestamp >= now() - make_interval(days => $1)
		GROUP BY day
		ORDER BY day ASC`
	rows, err := a.pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	defer rows.Close()

	stats := make([]domain.DailyStat, 0, days)
	for rows.Next() {
		var s domain.DailyStat
		if err := rows.Scan(&s.Date, &s.Visitors, &s.PageViews); err != nil {
			return nil, fmt.Errorf("failed to scan daily stat row: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (a *AnalyticsStorageAdapter) Pages(ctx context.Context) ([]domain.PageStat, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT page, COUNT(*)
		FROM analytics_logs
		GROUP BY page
		ORDER BY COUNT(*) DESC, page ASC`
	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query page stats: %w", err)
	}
	defer rows.Close()

	stats := make([]domain.PageStat, 0)
	for rows.Next() {
		var s domain.PageStat
		if err := rows.Scan(&s.Page, &s.Views); err != nil {
			return nil, fmt.Errorf("failed to scan page stat row: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
