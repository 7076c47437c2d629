package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type ManageTeamUseCase interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	Get(ctx context.Context, id string) (*domain.TeamMember, error)
	Create(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error)
	Update(ctx context.Context, id string, patch domain.TeamMemberPatch) (*domain.TeamMember, error)
	Delete(ctx context.Context, id string) error
}
