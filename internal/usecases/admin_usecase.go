package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/domain/repositories"
	"rideathon.backend/pkg/crypto"
	"rideathon.backend/pkg/logger"
	"rideathon.backend/pkg/utils"
)

// challengeTokenBytes is the entropy of a generated challenge token.
// The hex-encoded token ends up on a printed QR code, so it stays short.
const challengeTokenBytes = 8

// AdminUsecase handles event setup: seeding teams and challenges before
// the competition starts.
type AdminUsecase struct {
	teamRepo      repositories.TeamRepository
	challengeRepo repositories.ChallengeRepository
}

func NewAdminUsecase(
	teamRepo repositories.TeamRepository,
	challengeRepo repositories.ChallengeRepository,
) *AdminUsecase {
	return &AdminUsecase{
		teamRepo:      teamRepo,
		challengeRepo: challengeRepo,
	}
}

// CreateTeam registers a new team with a shared secret credential.
// Only the bcrypt hash of the secret is stored.
func (u *AdminUsecase) CreateTeam(ctx context.Context, input *entities.CreateTeamInput) (*entities.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Secret == "" {
		return nil, domainerrors.BadRequest("team name and secret are required")
	}

	existing, err := u.teamRepo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("team name already taken", domainerrors.ErrAlreadyExists)
	}

	hash, err := crypto.HashSecret(input.Secret)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	team := &entities.Team{
		ID:         utils.GenerateUUIDv7(),
		Name:       name,
		Members:    input.Members,
		Color:      input.Color,
		SecretHash: hash,
	}
	if err := u.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Team created",
		zap.String("team_id", team.ID.String()),
		zap.String("name", team.Name),
	)
	return team, nil
}

// CreateChallenge seeds a challenge in AVAILABLE state and generates its
// activation token. The token is returned once here so it can be printed;
// challenge reads elsewhere never expose it.
func (u *AdminUsecase) CreateChallenge(ctx context.Context, input *entities.CreateChallengeInput) (*entities.Challenge, string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, "", domainerrors.BadRequest("challenge name is required")
	}

	token, err := crypto.GenerateRandomToken(challengeTokenBytes)
	if err != nil {
		return nil, "", domainerrors.InternalError(err)
	}

	challenge := &entities.Challenge{
		ID:            utils.GenerateUUIDv7(),
		Name:          name,
		Description:   input.Description,
		Token:         token,
		PauseDistance: input.PauseDistance,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Status:        entities.ChallengeAvailable,
	}
	if err := u.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, "", err
	}

	logger.Info(ctx, "Challenge created",
		zap.String("challenge_id", challenge.ID.String()),
		zap.String("name", challenge.Name),
	)
	return challenge, token, nil
}

// RecomputeAll rebuilds scorecards for every team. Used after manual
// ledger corrections.
func (u *AdminUsecase) RecomputeAll(ctx context.Context, scorecards *ScorecardUsecase) ([]uuid.UUID, error) {
	teams, err := u.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	recomputed := make([]uuid.UUID, 0, len(teams))
	for _, team := range teams {
		if _, err := scorecards.Recompute(ctx, team.ID); err != nil {
			return recomputed, err
		}
		recomputed = append(recomputed, team.ID)
	}
	return recomputed, nil
}
