package repositories

import (
	"context"

	"github.com/google/uuid"
	"rideathon.backend/internal/domain/entities"
)

type GpxRepository interface {
	CreateUpload(ctx context.Context, upload *entities.GpxUpload) error
	CreateCleanup(ctx context.Context, cleanup *entities.GpxCleanup) error
	GetUpload(ctx context.Context, id uuid.UUID) (*entities.GpxUpload, error)
	ListUploadsByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.UploadWithCleanup, int64, error)
	ListCleanupsByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.GpxCleanup, error)
}
