package usecase

import (
	"context"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

// TeamUseCase covers the team member CRUD behind the team page and the
// admin dashboard. Straight pass-through with identity assignment; the
// interesting behavior lives in the listing flow.
type TeamUseCase struct {
	storage port.TeamStoragePort
}

func NewTeamUseCase(storage port.TeamStoragePort) *TeamUseCase {
	return &TeamUseCase{storage: storage}
}

func (uc *TeamUseCase) List(ctx context.Context) ([]domain.TeamMember, error) {
	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return uc.storage.List(ctx)
}

func (uc *TeamUseCase) Get(ctx context.Context, id string) (*domain.TeamMember, error) {
	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return uc.storage.GetByID(ctx, id)
}

func (uc *TeamUseCase) Create(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}

	now := time.Now().UTC()
	m.ID = uuid.New().String()
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := uc.storage.Create(ctx, m); err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to create team member", err, nil)
		return nil, err
	}
	return &m, nil
}

func (uc *TeamUseCase) Update(ctx context.Context, id string, patch domain.TeamMemberPatch) (*domain.TeamMember, error) {
	if uc.storage == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return uc.storage.Update(ctx, id, patch)
}

func (uc *TeamUseCase) Delete(ctx context.Context, id string) error {
	if uc.storage == nil {
		return domain.ErrStoreUnavailable
	}
	return uc.storage.Delete(ctx, id)
}
