package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/interfaces/http/middleware"
	"rideathon.backend/internal/usecases"
	"rideathon.backend/pkg/jwt"
)

// Map-backed repository stubs. Handlers are exercised over the real
// usecases with these in place of the database.

type teamRepoStub struct {
	items map[uuid.UUID]*entities.Team
}

func newTeamRepoStub() *teamRepoStub {
	return &teamRepoStub{items: map[uuid.UUID]*entities.Team{}}
}

func (s *teamRepoStub) Create(_ context.Context, team *entities.Team) error {
	s.items[team.ID] = team
	return nil
}

func (s *teamRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Team, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *teamRepoStub) GetByName(_ context.Context, name string) (*entities.Team, error) {
	for _, item := range s.items {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *teamRepoStub) List(_ context.Context) ([]*entities.Team, error) {
	out := make([]*entities.Team, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *teamRepoStub) Update(_ context.Context, team *entities.Team) error {
	if _, ok := s.items[team.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[team.ID] = team
	return nil
}

type challengeRepoStub struct {
	items map[uuid.UUID]*entities.Challenge
}

func newChallengeRepoStub() *challengeRepoStub {
	return &challengeRepoStub{items: map[uuid.UUID]*entities.Challenge{}}
}

func (s *challengeRepoStub) Create(_ context.Context, challenge *entities.Challenge) error {
	s.items[challenge.ID] = challenge
	return nil
}

func (s *challengeRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Challenge, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *challengeRepoStub) List(_ context.Context) ([]*entities.Challenge, error) {
	out := make([]*entities.Challenge, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *challengeRepoStub) ListByTeam(_ context.Context, teamID uuid.UUID) ([]*entities.Challenge, error) {
	out := make([]*entities.Challenge, 0)
	for _, item := range s.items {
		if item.TeamID != nil && *item.TeamID == teamID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *challengeRepoStub) CountCompletedByTeam(_ context.Context, teamID uuid.UUID) (int, error) {
	count := 0
	for _, item := range s.items {
		if item.Status == entities.ChallengeCompleted && item.TeamID != nil && *item.TeamID == teamID {
			count++
		}
	}
	return count, nil
}

func (s *challengeRepoStub) Transition(_ context.Context, challenge *entities.Challenge, from entities.ChallengeStatus) error {
	stored, ok := s.items[challenge.ID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if stored.Status != from {
		return domainerrors.ErrInvalidTransition
	}
	copied := *challenge
	s.items[challenge.ID] = &copied
	return nil
}

type modifierRepoStub struct {
	items map[uuid.UUID]*entities.Modifier
}

func newModifierRepoStub() *modifierRepoStub {
	return &modifierRepoStub{items: map[uuid.UUID]*entities.Modifier{}}
}

func (s *modifierRepoStub) Create(_ context.Context, modifier *entities.Modifier) error {
	s.items[modifier.ID] = modifier
	return nil
}

func (s *modifierRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Modifier, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *modifierRepoStub) ListForTeam(_ context.Context, teamID uuid.UUID) ([]*entities.Modifier, error) {
	out := make([]*entities.Modifier, 0)
	for _, item := range s.items {
		if item.AppliesTo(teamID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *modifierRepoStub) ListPauseWindows(_ context.Context, teamID uuid.UUID) ([]entities.TimeWindow, error) {
	out := make([]entities.TimeWindow, 0)
	for _, item := range s.items {
		if item.Multiplier == 0 && item.ChallengeID != nil && item.AppliesTo(teamID) {
			out = append(out, entities.TimeWindow{Start: item.Start, End: item.End})
		}
	}
	return out, nil
}

func (s *modifierRepoStub) GetOpenByChallenge(_ context.Context, challengeID, teamID uuid.UUID) (*entities.Modifier, error) {
	for _, item := range s.items {
		if item.ChallengeID != nil && *item.ChallengeID == challengeID &&
			item.ReceiverID != nil && *item.ReceiverID == teamID && !item.End.Valid {
			return item, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *modifierRepoStub) Close(_ context.Context, id uuid.UUID, end time.Time) (bool, error) {
	item, ok := s.items[id]
	if !ok {
		return false, domainerrors.ErrNotFound
	}
	if item.End.Valid {
		return false, nil
	}
	item.End.SetValid(end)
	return true, nil
}

type offsetRepoStub struct {
	items []*entities.Offset
}

func newOffsetRepoStub() *offsetRepoStub {
	return &offsetRepoStub{}
}

func (s *offsetRepoStub) Create(_ context.Context, offset *entities.Offset) error {
	s.items = append(s.items, offset)
	return nil
}

func (s *offsetRepoStub) ListByReceiver(_ context.Context, teamID uuid.UUID) ([]*entities.Offset, error) {
	out := make([]*entities.Offset, 0)
	for _, item := range s.items {
		if item.ReceiverID == teamID {
			out = append(out, item)
		}
	}
	return out, nil
}

type gpxRepoStub struct {
	uploads  map[uuid.UUID]*entities.GpxUpload
	cleanups []*entities.GpxCleanup
}

func newGpxRepoStub() *gpxRepoStub {
	return &gpxRepoStub{uploads: map[uuid.UUID]*entities.GpxUpload{}}
}

func (s *gpxRepoStub) CreateUpload(_ context.Context, upload *entities.GpxUpload) error {
	s.uploads[upload.ID] = upload
	return nil
}

func (s *gpxRepoStub) CreateCleanup(_ context.Context, cleanup *entities.GpxCleanup) error {
	s.cleanups = append(s.cleanups, cleanup)
	return nil
}

func (s *gpxRepoStub) GetUpload(_ context.Context, id uuid.UUID) (*entities.GpxUpload, error) {
	item, ok := s.uploads[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *gpxRepoStub) ListUploadsByTeam(_ context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.UploadWithCleanup, int64, error) {
	matched := make([]*entities.UploadWithCleanup, 0)
	for _, upload := range s.uploads {
		if upload.TeamID != teamID {
			continue
		}
		item := &entities.UploadWithCleanup{Upload: upload}
		for _, cleanup := range s.cleanups {
			if cleanup.GpxUploadID == upload.ID {
				item.Cleanup = cleanup
			}
		}
		matched = append(matched, item)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entities.UploadWithCleanup{}, total, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

func (s *gpxRepoStub) ListCleanupsByTeam(_ context.Context, teamID uuid.UUID) ([]*entities.GpxCleanup, error) {
	out := make([]*entities.GpxCleanup, 0)
	for _, cleanup := range s.cleanups {
		upload, ok := s.uploads[cleanup.GpxUploadID]
		if ok && upload.TeamID == teamID {
			out = append(out, cleanup)
		}
	}
	return out, nil
}

type scorecardRepoStub struct {
	items []*entities.Scorecard
}

func newScorecardRepoStub() *scorecardRepoStub {
	return &scorecardRepoStub{}
}

func (s *scorecardRepoStub) Append(_ context.Context, scorecard *entities.Scorecard) error {
	s.items = append(s.items, scorecard)
	return nil
}

func (s *scorecardRepoStub) GetLatestByTeam(_ context.Context, teamID uuid.UUID) (*entities.Scorecard, error) {
	var latest *entities.Scorecard
	for _, item := range s.items {
		if item.TeamID == teamID {
			latest = item
		}
	}
	if latest == nil {
		return nil, domainerrors.ErrNotFound
	}
	return latest, nil
}

func (s *scorecardRepoStub) ListLatest(_ context.Context) ([]*entities.Scorecard, error) {
	byTeam := map[uuid.UUID]*entities.Scorecard{}
	for _, item := range s.items {
		byTeam[item.TeamID] = item
	}
	out := make([]*entities.Scorecard, 0, len(byTeam))
	for _, item := range byTeam {
		out = append(out, item)
	}
	return out, nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// handlerEnv bundles the stub repos and the real usecases wired over them
type handlerEnv struct {
	teams      *teamRepoStub
	challenges *challengeRepoStub
	modifiers  *modifierRepoStub
	offsets    *offsetRepoStub
	gpx        *gpxRepoStub
	scorecards *scorecardRepoStub

	auth      *usecases.AuthUsecase
	admin     *usecases.AdminUsecase
	ledger    *usecases.LedgerUsecase
	scorecard *usecases.ScorecardUsecase
	track     *usecases.TrackUsecase
	challenge *usecases.ChallengeUsecase
}

func newHandlerEnv() *handlerEnv {
	env := &handlerEnv{
		teams:      newTeamRepoStub(),
		challenges: newChallengeRepoStub(),
		modifiers:  newModifierRepoStub(),
		offsets:    newOffsetRepoStub(),
		gpx:        newGpxRepoStub(),
		scorecards: newScorecardRepoStub(),
	}

	jwtService := jwt.NewJWTService("handler-test-key", time.Hour, 24*time.Hour)
	env.auth = usecases.NewAuthUsecase(env.teams, jwtService)
	env.admin = usecases.NewAdminUsecase(env.teams, env.challenges)
	env.ledger = usecases.NewLedgerUsecase(env.modifiers, env.offsets)
	env.scorecard = usecases.NewScorecardUsecase(env.scorecards, env.challenges, env.gpx, env.teams, env.ledger, nil, nil)
	env.track = usecases.NewTrackUsecase(env.gpx, env.modifiers, uowStub{}, env.scorecard, 50)
	env.challenge = usecases.NewChallengeUsecase(env.challenges, env.modifiers, env.ledger, uowStub{}, env.scorecard, 5)
	return env
}

// asTeam injects the authenticated team identity the way AuthMiddleware does
func asTeam(teamID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.TeamIDKey, teamID)
		c.Set(middleware.TeamNameKey, "test-team")
		c.Next()
	}
}
