package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"listing-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mmcloughlin/geohash"
)

// queryTimeout bounds every store read and write. A slow database must
// surface as an error so the caller can switch to the fallback dataset
// instead of hanging the request.
const queryTimeout = 5 * time.Second

// geohashPrecision is the cell size stored per listing (~1.2km x 0.6km),
// fine enough to rank "same neighbourhood" in related queries.
const geohashPrecision = 6

// PropertyStorageAdapter implements PropertyStoragePort for PostgreSQL.
type PropertyStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPropertyStorageAdapter(pool *pgxpool.Pool) (*PropertyStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyStorageAdapter{pool: pool}, nil
}

// FindWithFilters runs the compiled filters as a count query plus a bounded
// fetch. The two reads run outside a transaction; under concurrent writes
// total and page rows can skew slightly.
func (a *PropertyStorageAdapter) FindWithFilters(ctx context.Context, filters domain.PropertyFilters, limit, offset int) ([]domain.Property, int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	whereClause, args := applyFilters(filters)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM properties p %s", whereClause)
	var total int
	if err := a.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}
	if total == 0 {
		return []domain.Property{}, 0, nil
	}

	fetchQuery := fmt.Sprintf(`
		SELECT %s
		FROM properties p
		LEFT JOIN team_members a ON p.agent_id = a.id
		%s
		ORDER BY p.created_at DESC, p.id ASC
		LIMIT $%d OFFSET $%d`,
		propertyColumns, whereClause, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := a.pool.Query(ctx, fetchQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0, limit)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, total, rows.Err()
}

func (a *PropertyStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM properties p
		LEFT JOIN team_members a ON p.agent_id = a.id
		WHERE p.id = $1`, propertyColumns,
	)

	p, err := scanProperty(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property %s: %w", id, err)
	}
	return &p, nil
}

// GetRelated returns up to limit listings from the same city, ranking the
// reference listing's geohash neighbourhood first and newest listings next.
func (a *PropertyStorageAdapter) GetRelated(ctx context.Context, id string, limit int) ([]domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var city, cell string
	err := a.pool.QueryRow(ctx, "SELECT city, geohash FROM properties WHERE id = $1", id).Scan(&city, &cell)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load reference property %s: %w", id, err)
	}

	// Prefix comparison one level coarser than the stored cell, so direct
	// neighbours land in the preferred bucket too.
	query := fmt.Sprintf(`
		SELECT %s
		FROM properties p
		LEFT JOIN team_members a ON p.agent_id = a.id
		WHERE p.id != $1 AND p.city = $2
		ORDER BY (p.geohash != '' AND left(p.geohash, 5) = left($3, 5)) DESC,
			p.created_at DESC, p.id ASC
		LIMIT $4`, propertyColumns,
	)

	rows, err := a.pool.Query(ctx, query, id, city, cell, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query related properties: %w", err)
	}
	defer rows.Close()

	related := make([]domain.Property, 0, limit)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan related row: %w", err)
		}
		related = append(related, p)
	}
	return related, rows.Err()
}

func (a *PropertyStorageAdapter) Create(ctx context.Context, p domain.Property) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var agentID *string
	if p.AgentID != "" {
		agentID = &p.AgentID
	}

	sql := `
		INSERT INTO properties (
			id, title, description, type, location, address, city, county,
			price, area, rooms, floor, year_built,
			video_url, thumbnail_url, badges, amenities,
			agent_id, latitude, longitude, geohash,
			title_normalized, location_normalized,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)`

	latitude, longitude, cell := locationColumns(p.Coordinates)
	_, err := a.pool.Exec(ctx, sql,
		p.ID, p.Title, p.Description, p.Type, p.Location, p.Address, p.City, p.County,
		p.Price, p.Area, p.Rooms, p.Floor, p.YearBuilt,
		p.VideoURL, p.ThumbnailURL, encodeStringList(p.Badges), encodeStringList(p.Amenities),
		agentID, latitude, longitude, cell,
		domain.NormalizeText(p.Title), domain.NormalizeText(p.Location),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}

// Update applies a partial patch under a row lock, so two concurrent
// patches of the same listing serialize instead of overwriting each other.
func (a *PropertyStorageAdapter) Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		SELECT %s
		FROM properties p
		LEFT JOIN team_members a ON p.agent_id = a.id
		WHERE p.id = $1
		FOR UPDATE OF p`, propertyColumns,
	)

	current, err := scanProperty(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load property %s for update: %w", id, err)
	}

	patch.Apply(&current)
	current.UpdatedAt = time.Now().UTC()

	var agentID *string
	if current.AgentID != "" {
		agentID = &current.AgentID
	}

	sql := `
		UPDATE properties SET
			title = $2, description = $3, type = $4, location = $5,
			address = $6, city = $7, county = $8,
			price = $9, area = $10, rooms = $11, floor = $12, year_built = $13,
			video_url = $14, thumbnail_url = $15, badges = $16, amenities = $17,
			agent_id = $18, latitude = $19, longitude = $20, geohash = $21,
			title_normalized = $22, location_normalized = $23,
			updated_at = $24
		WHERE id = $1`

	latitude, longitude, cell := locationColumns(current.Coordinates)
	_, err = tx.Exec(ctx, sql,
		id, current.Title, current.Description, current.Type, current.Location,
		current.Address, current.City, current.County,
		current.Price, current.Area, current.Rooms, current.Floor, current.YearBuilt,
		current.VideoURL, current.ThumbnailURL,
		encodeStringList(current.Badges), encodeStringList(current.Amenities),
		agentID, latitude, longitude, cell,
		domain.NormalizeText(current.Title), domain.NormalizeText(current.Location),
		current.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update property %s: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit property update: %w", err)
	}

	// Re-read outside the transaction so a changed agent_id projects the
	// fresh team member.
	return a.GetByID(ctx, id)
}

func (a *PropertyStorageAdapter) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := a.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete property %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// locationColumns derives the nullable coordinate columns and the geohash
// cell. Listings without coordinates store an empty cell and never win the
// neighbourhood ranking.
func locationColumns(c *domain.Coordinates) (*float64, *float64, string) {
	if c == nil {
		return nil, nil, ""
	}
	cell := geohash.EncodeWithPrecision(c.Latitude, c.Longitude, geohashPrecision)
	return &c.Latitude, &c.Longitude, cell
}
