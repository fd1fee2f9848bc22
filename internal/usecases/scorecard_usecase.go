package usecases

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/domain/repositories"
	"rideathon.backend/pkg/logger"
	"rideathon.backend/pkg/utils"
)

// ScorecardNotifier announces scorecard changes to interested observers.
// The transport behind it (Redis pub/sub here) is a collaborator decision.
type ScorecardNotifier interface {
	ScorecardChanged(ctx context.Context, teamID uuid.UUID) error
}

// LeaderboardCache holds the ranked scoreboard between recomputations
type LeaderboardCache interface {
	Get(ctx context.Context) ([]entities.LeaderboardEntry, error)
	Set(ctx context.Context, entries []entities.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

// ScorecardUsecase folds cleaned track distance, ledger adjustments, and
// challenge completions into per-team scorecards and the ranked leaderboard
type ScorecardUsecase struct {
	scorecardRepo repositories.ScorecardRepository
	challengeRepo repositories.ChallengeRepository
	gpxRepo       repositories.GpxRepository
	teamRepo      repositories.TeamRepository
	ledger        *LedgerUsecase
	notifier      ScorecardNotifier
	cache         LeaderboardCache
}

// NewScorecardUsecase creates a new scorecard usecase
func NewScorecardUsecase(
	scorecardRepo repositories.ScorecardRepository,
	challengeRepo repositories.ChallengeRepository,
	gpxRepo repositories.GpxRepository,
	teamRepo repositories.TeamRepository,
	ledger *LedgerUsecase,
	notifier ScorecardNotifier,
	cache LeaderboardCache,
) *ScorecardUsecase {
	return &ScorecardUsecase{
		scorecardRepo: scorecardRepo,
		challengeRepo: challengeRepo,
		gpxRepo:       gpxRepo,
		teamRepo:      teamRepo,
		ledger:        ledger,
		notifier:      notifier,
		cache:         cache,
	}
}

// Recompute rebuilds the team's scorecard from scratch and appends it as a
// new row. It is idempotent, derives everything from stored records, and a
// team with zero uploads simply gets an all-zero scorecard. Observers are
// notified after the row lands; notification failures are logged, not
// propagated, since the scorecard itself is already durable.
func (u *ScorecardUsecase) Recompute(ctx context.Context, teamID uuid.UUID) (*entities.Scorecard, error) {
	completed, err := u.challengeRepo.CountCompletedByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	cleanups, err := u.gpxRepo.ListCleanupsByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	var traveled float64
	windows := make([]entities.DistanceWindow, 0, len(cleanups))
	for _, c := range cleanups {
		traveled += c.ScoredDistance
		windows = append(windows, entities.DistanceWindow{
			Start:    c.TrackStart,
			End:      c.TrackEnd,
			Distance: c.ScoredDistance,
		})
	}

	earned, err := u.ledger.NetAdjustedDistance(ctx, teamID, windows)
	if err != nil {
		return nil, err
	}

	scorecard := &entities.Scorecard{
		ID:                  utils.GenerateUUIDv7(),
		TeamID:              teamID,
		ChallengesCompleted: completed,
		DistanceTraveled:    traveled,
		DistanceEarned:      earned,
		CreatedAt:           time.Now(),
	}
	if err := u.scorecardRepo.Append(ctx, scorecard); err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.Invalidate(ctx); err != nil {
			logger.Warn(ctx, "failed to invalidate leaderboard cache", zap.Error(err))
		}
	}
	if u.notifier != nil {
		if err := u.notifier.ScorecardChanged(ctx, teamID); err != nil {
			logger.Warn(ctx, "failed to publish scorecard change", zap.String("team_id", teamID.String()), zap.Error(err))
		}
	}
	return scorecard, nil
}

// Latest returns the team's newest scorecard, or an all-zero card when the
// team has never been scored
func (u *ScorecardUsecase) Latest(ctx context.Context, teamID uuid.UUID) (*entities.Scorecard, error) {
	scorecard, err := u.scorecardRepo.GetLatestByTeam(ctx, teamID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return &entities.Scorecard{TeamID: teamID}, nil
	}
	return scorecard, err
}

// Leaderboard returns every team ranked by challenges completed, then by
// distance earned. Results come from the cache when it is warm.
func (u *ScorecardUsecase) Leaderboard(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	if u.cache != nil {
		if cached, err := u.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	teams, err := u.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := u.scorecardRepo.ListLatest(ctx)
	if err != nil {
		return nil, err
	}

	byTeam := make(map[uuid.UUID]*entities.Scorecard, len(latest))
	for _, s := range latest {
		byTeam[s.TeamID] = s
	}

	entries := make([]entities.LeaderboardEntry, 0, len(teams))
	for _, team := range teams {
		entry := entities.LeaderboardEntry{
			TeamID:    team.ID,
			TeamName:  team.Name,
			TeamColor: team.Color,
		}
		if s, ok := byTeam[team.ID]; ok {
			entry.ChallengesCompleted = s.ChallengesCompleted
			entry.DistanceTraveled = s.DistanceTraveled
			entry.DistanceEarned = s.DistanceEarned
			entry.UpdatedAt = s.CreatedAt
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ChallengesCompleted != entries[j].ChallengesCompleted {
			return entries[i].ChallengesCompleted > entries[j].ChallengesCompleted
		}
		if entries[i].DistanceEarned != entries[j].DistanceEarned {
			return entries[i].DistanceEarned > entries[j].DistanceEarned
		}
		return entries[i].TeamName < entries[j].TeamName
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, entries); err != nil {
			logger.Warn(ctx, "failed to cache leaderboard", zap.Error(err))
		}
	}
	return entries, nil
}
