package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"rideathon.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock TeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*entities.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

// Mock ChallengeRepository
type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) Create(ctx context.Context, challenge *entities.Challenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockChallengeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) List(ctx context.Context) ([]*entities.Challenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Challenge, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) CountCompletedByTeam(ctx context.Context, teamID uuid.UUID) (int, error) {
	args := m.Called(ctx, teamID)
	return args.Int(0), args.Error(1)
}

func (m *MockChallengeRepository) Transition(ctx context.Context, challenge *entities.Challenge, from entities.ChallengeStatus) error {
	args := m.Called(ctx, challenge, from)
	return args.Error(0)
}

// Mock ModifierRepository
type MockModifierRepository struct {
	mock.Mock
}

func (m *MockModifierRepository) Create(ctx context.Context, modifier *entities.Modifier) error {
	args := m.Called(ctx, modifier)
	return args.Error(0)
}

func (m *MockModifierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Modifier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Modifier), args.Error(1)
}

func (m *MockModifierRepository) ListForTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Modifier, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Modifier), args.Error(1)
}

func (m *MockModifierRepository) ListPauseWindows(ctx context.Context, teamID uuid.UUID) ([]entities.TimeWindow, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TimeWindow), args.Error(1)
}

func (m *MockModifierRepository) GetOpenByChallenge(ctx context.Context, challengeID, teamID uuid.UUID) (*entities.Modifier, error) {
	args := m.Called(ctx, challengeID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Modifier), args.Error(1)
}

func (m *MockModifierRepository) Close(ctx context.Context, id uuid.UUID, end time.Time) (bool, error) {
	args := m.Called(ctx, id, end)
	return args.Bool(0), args.Error(1)
}

// Mock OffsetRepository
type MockOffsetRepository struct {
	mock.Mock
}

func (m *MockOffsetRepository) Create(ctx context.Context, offset *entities.Offset) error {
	args := m.Called(ctx, offset)
	return args.Error(0)
}

func (m *MockOffsetRepository) ListByReceiver(ctx context.Context, teamID uuid.UUID) ([]*entities.Offset, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Offset), args.Error(1)
}

// Mock GpxRepository
type MockGpxRepository struct {
	mock.Mock
}

func (m *MockGpxRepository) CreateUpload(ctx context.Context, upload *entities.GpxUpload) error {
	args := m.Called(ctx, upload)
	return args.Error(0)
}

func (m *MockGpxRepository) CreateCleanup(ctx context.Context, cleanup *entities.GpxCleanup) error {
	args := m.Called(ctx, cleanup)
	return args.Error(0)
}

func (m *MockGpxRepository) GetUpload(ctx context.Context, id uuid.UUID) (*entities.GpxUpload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GpxUpload), args.Error(1)
}

func (m *MockGpxRepository) ListUploadsByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.UploadWithCleanup, int64, error) {
	args := m.Called(ctx, teamID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.UploadWithCleanup), args.Get(1).(int64), args.Error(2)
}

func (m *MockGpxRepository) ListCleanupsByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.GpxCleanup, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GpxCleanup), args.Error(1)
}

// Mock ScorecardRepository
type MockScorecardRepository struct {
	mock.Mock
}

func (m *MockScorecardRepository) Append(ctx context.Context, scorecard *entities.Scorecard) error {
	args := m.Called(ctx, scorecard)
	return args.Error(0)
}

func (m *MockScorecardRepository) GetLatestByTeam(ctx context.Context, teamID uuid.UUID) (*entities.Scorecard, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Scorecard), args.Error(1)
}

func (m *MockScorecardRepository) ListLatest(ctx context.Context) ([]*entities.Scorecard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Scorecard), args.Error(1)
}

// Mock ScorecardNotifier
type MockScorecardNotifier struct {
	mock.Mock
}

func (m *MockScorecardNotifier) ScorecardChanged(ctx context.Context, teamID uuid.UUID) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

// Mock LeaderboardCache
type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) Get(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardCache) Set(ctx context.Context, entries []entities.LeaderboardEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLeaderboardCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
