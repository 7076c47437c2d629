package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"listing-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const teamMemberColumns = "id, name, role, phone, email, image, created_at, updated_at"

// TeamStorageAdapter implements TeamStoragePort for PostgreSQL.
type TeamStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewTeamStorageAdapter(pool *pgxpool.Pool) (*TeamStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &TeamStorageAdapter{pool: pool}, nil
}

func scanTeamMember(row rowScanner) (domain.TeamMember, error) {
	var m domain.TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Phone, &m.Email, &m.Image, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (a *TeamStorageAdapter) List(ctx context.Context) ([]domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM team_members ORDER BY created_at ASC, id ASC", teamMemberColumns)
	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member row: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (a *TeamStorageAdapter) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM team_members WHERE id = $1", teamMemberColumns)
	m, err := scanTeamMember(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team member %s: %w", id, err)
	}
	return &m, nil
}

func (a *TeamStorageAdapter) Create(ctx context.Context, m domain.TeamMember) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	sql := `
		INSERT INTO team_members (id, name, role, phone, email, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := a.pool.Exec(ctx, sql, m.ID, m.Name, m.Role, m.Phone, m.Email, m.Image, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert team member: %w", err)
	}
	return nil
}

func (a *TeamStorageAdapter) Update(ctx context.Context, id string, patch domain.TeamMemberPatch) (*domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf("SELECT %s FROM team_members WHERE id = $1 FOR UPDATE", teamMemberColumns)
	current, err := scanTeamMember(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load team member %s for update: %w", id, err)
	}

	patch.Apply(&current)
	current.UpdatedAt = time.Now().UTC()

	sql := `
		UPDATE team_members SET name = $2, role = $3, phone = $4, email = $5, image = $6, updated_at = $7
		WHERE id = $1`
	_, err = tx.Exec(ctx, sql, id, current.Name, current.Role, current.Phone, current.Email, current.Image, current.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update team member %s: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit team member update: %w", err)
	}
	return &current, nil
}

// Delete removes the member; listings pointing at them fall back to no
// agent through the FK's ON DELETE SET NULL.
func (a *TeamStorageAdapter) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := a.pool.Exec(ctx, "DELETE FROM team_members WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete team member %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
