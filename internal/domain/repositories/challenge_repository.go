package repositories

import (
	"context"

	"github.com/google/uuid"
	"rideathon.backend/internal/domain/entities"
)

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entities.Challenge) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Challenge, error)
	List(ctx context.Context) ([]*entities.Challenge, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Challenge, error)
	CountCompletedByTeam(ctx context.Context, teamID uuid.UUID) (int, error)
	// Transition persists the challenge's mutated state but only when the
	// stored row is still in the expected `from` status. A stale status
	// yields ErrInvalidTransition, which makes the state machine safe
	// against concurrent writers without explicit row locks.
	Transition(ctx context.Context, challenge *entities.Challenge, from entities.ChallengeStatus) error
}
