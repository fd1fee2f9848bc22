package usecases

import (
	"context"
	"errors"

	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/domain/repositories"
	"rideathon.backend/pkg/crypto"
	"rideathon.backend/pkg/jwt"
)

// AuthUsecase validates shared team credentials and issues session tokens
type AuthUsecase struct {
	teamRepo   repositories.TeamRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(teamRepo repositories.TeamRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		teamRepo:   teamRepo,
		jwtService: jwtService,
	}
}

// Login checks the team name and shared secret and returns a token pair.
// An unknown name and a wrong secret are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	if input.Name == "" || input.Secret == "" {
		return nil, domainerrors.ErrBadRequest
	}

	team, err := u.teamRepo.GetByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckSecret(input.Secret, team.SecretHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := u.jwtService.GenerateTokenPair(team.ID, team.Name)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Team:         team,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}
