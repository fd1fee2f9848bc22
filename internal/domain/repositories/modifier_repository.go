package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"rideathon.backend/internal/domain/entities"
)

type ModifierRepository interface {
	Create(ctx context.Context, modifier *entities.Modifier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Modifier, error)
	// ListForTeam returns modifiers addressed to the team plus global
	// (receiver-null) entries, oldest first.
	ListForTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Modifier, error)
	// ListPauseWindows returns the challenge-scoped zero-multiplier windows
	// that suspend distance accrual for the team. Challenge-less zero
	// multipliers are excluded; the ledger applies those.
	ListPauseWindows(ctx context.Context, teamID uuid.UUID) ([]entities.TimeWindow, error)
	// GetOpenByChallenge returns the still-open modifier installed for a
	// challenge/team pairing, or ErrNotFound.
	GetOpenByChallenge(ctx context.Context, challengeID, teamID uuid.UUID) (*entities.Modifier, error)
	// Close sets a previously-null end, the only in-place edit the ledger
	// permits. Closing an already-closed entry reports closed=false with a
	// nil error.
	Close(ctx context.Context, id uuid.UUID, end time.Time) (closed bool, err error)
}

type OffsetRepository interface {
	Create(ctx context.Context, offset *entities.Offset) error
	ListByReceiver(ctx context.Context, teamID uuid.UUID) ([]*entities.Offset, error)
}
