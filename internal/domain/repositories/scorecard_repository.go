package repositories

import (
	"context"

	"github.com/google/uuid"
	"rideathon.backend/internal/domain/entities"
)

type ScorecardRepository interface {
	// Append writes a new scorecard row; rows are never updated in place
	Append(ctx context.Context, scorecard *entities.Scorecard) error
	GetLatestByTeam(ctx context.Context, teamID uuid.UUID) (*entities.Scorecard, error)
	// ListLatest returns the newest row per team, unordered; ranking is the
	// aggregator's concern.
	ListLatest(ctx context.Context) ([]*entities.Scorecard, error)
}
