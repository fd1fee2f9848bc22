package usecases

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/domain/repositories"
)

// ChallengeUsecase is the challenge state machine. Every transition and the
// ledger entries it produces apply inside one unit of work; a failed step
// rolls the whole transition back.
type ChallengeUsecase struct {
	challengeRepo    repositories.ChallengeRepository
	modifierRepo     repositories.ModifierRepository
	ledger           *LedgerUsecase
	uow              repositories.UnitOfWork
	scorecard        *ScorecardUsecase
	forfeitPenaltyKm float64
}

// NewChallengeUsecase creates a new challenge usecase
func NewChallengeUsecase(
	challengeRepo repositories.ChallengeRepository,
	modifierRepo repositories.ModifierRepository,
	ledger *LedgerUsecase,
	uow repositories.UnitOfWork,
	scorecard *ScorecardUsecase,
	forfeitPenaltyKm float64,
) *ChallengeUsecase {
	if forfeitPenaltyKm <= 0 {
		forfeitPenaltyKm = DefaultForfeitPenaltyKm
	}
	return &ChallengeUsecase{
		challengeRepo:    challengeRepo,
		modifierRepo:     modifierRepo,
		ledger:           ledger,
		uow:              uow,
		scorecard:        scorecard,
		forfeitPenaltyKm: forfeitPenaltyKm,
	}
}

// Activate claims an AVAILABLE challenge for the team. The supplied token
// must match the challenge's on-site token; that check is what keeps a team
// from activating a challenge it has never stood next to. When the
// challenge pauses distance, a zero multiplier is installed for the team in
// the same transaction.
func (u *ChallengeUsecase) Activate(ctx context.Context, challengeID, teamID uuid.UUID, token string) (*entities.Challenge, error) {
	challenge, err := u.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.Status != entities.ChallengeAvailable {
		return nil, domainerrors.NewError("challenge is not available", domainerrors.ErrInvalidTransition)
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(challenge.Token)) != 1 {
		return nil, domainerrors.NewError("wrong challenge token", domainerrors.ErrTokenMismatch)
	}

	now := time.Now()
	challenge.Status = entities.ChallengeActive
	challenge.TeamID = &teamID
	challenge.Start = null.TimeFrom(now)

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.challengeRepo.Transition(txCtx, challenge, entities.ChallengeAvailable); err != nil {
			return err
		}
		if challenge.PauseDistance {
			_, err := u.ledger.CreateModifier(txCtx, &entities.CreateModifierInput{
				Multiplier:  0,
				CreatorID:   teamID,
				ReceiverID:  &teamID,
				ChallengeID: &challengeID,
				Start:       null.TimeFrom(now),
			})
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := u.scorecard.Recompute(ctx, teamID); err != nil {
		return nil, err
	}
	return challenge, nil
}

// Complete finishes an ACTIVE challenge owned by the team and closes its
// open pause modifier, resuming distance accrual
func (u *ChallengeUsecase) Complete(ctx context.Context, challengeID, teamID uuid.UUID) (*entities.Challenge, error) {
	challenge, err := u.activeOwnedBy(ctx, challengeID, teamID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	challenge.Status = entities.ChallengeCompleted
	challenge.End = null.TimeFrom(now)

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.challengeRepo.Transition(txCtx, challenge, entities.ChallengeActive); err != nil {
			return err
		}
		return u.closePauseModifier(txCtx, challengeID, teamID, now)
	})
	if err != nil {
		return nil, err
	}

	if _, err := u.scorecard.Recompute(ctx, teamID); err != nil {
		return nil, err
	}
	return challenge, nil
}

// Forfeit abandons an ACTIVE challenge owned by the team: the pause modifier
// closes and a flat penalty offset lands in the ledger, both atomically with
// the status change
func (u *ChallengeUsecase) Forfeit(ctx context.Context, challengeID, teamID uuid.UUID) (*entities.Challenge, error) {
	challenge, err := u.activeOwnedBy(ctx, challengeID, teamID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	challenge.Status = entities.ChallengeForfeited
	challenge.End = null.TimeFrom(now)

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.challengeRepo.Transition(txCtx, challenge, entities.ChallengeActive); err != nil {
			return err
		}
		if err := u.closePauseModifier(txCtx, challengeID, teamID, now); err != nil {
			return err
		}
		_, err := u.ledger.CreateOffset(txCtx, &entities.CreateOffsetInput{
			Distance:    -u.forfeitPenaltyKm,
			CreatorID:   teamID,
			ReceiverID:  teamID,
			ChallengeID: &challengeID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if _, err := u.scorecard.Recompute(ctx, teamID); err != nil {
		return nil, err
	}
	return challenge, nil
}

// Get returns one challenge
func (u *ChallengeUsecase) Get(ctx context.Context, challengeID uuid.UUID) (*entities.Challenge, error) {
	return u.challengeRepo.GetByID(ctx, challengeID)
}

// List returns all challenges
func (u *ChallengeUsecase) List(ctx context.Context) ([]*entities.Challenge, error) {
	return u.challengeRepo.List(ctx)
}

func (u *ChallengeUsecase) activeOwnedBy(ctx context.Context, challengeID, teamID uuid.UUID) (*entities.Challenge, error) {
	challenge, err := u.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.Status != entities.ChallengeActive {
		return nil, domainerrors.NewError("challenge is not active", domainerrors.ErrInvalidTransition)
	}
	if challenge.TeamID == nil || *challenge.TeamID != teamID {
		return nil, domainerrors.Forbidden("challenge belongs to another team")
	}
	return challenge, nil
}

func (u *ChallengeUsecase) closePauseModifier(ctx context.Context, challengeID, teamID uuid.UUID, end time.Time) error {
	modifier, err := u.modifierRepo.GetOpenByChallenge(ctx, challengeID, teamID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}
	_, err = u.modifierRepo.Close(ctx, modifier.ID, end)
	return err
}
