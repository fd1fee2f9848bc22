package repositories

import (
	"context"

	"github.com/google/uuid"
	"rideathon.backend/internal/domain/entities"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	GetByName(ctx context.Context, name string) (*entities.Team, error)
	List(ctx context.Context) ([]*entities.Team, error)
	Update(ctx context.Context, team *entities.Team) error
}
