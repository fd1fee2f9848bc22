package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rideathon.backend/internal/domain/entities"
	domainerrors "rideathon.backend/internal/domain/errors"
	"rideathon.backend/internal/infrastructure/models"
)

type ScorecardRepository struct {
	db *gorm.DB
}

func NewScorecardRepository(db *gorm.DB) *ScorecardRepository {
	return &ScorecardRepository{db: db}
}

func (r *ScorecardRepository) Append(ctx context.Context, scorecard *entities.Scorecard) error {
	m := r.toModel(scorecard)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	scorecard.CreatedAt = m.CreatedAt
	return nil
}

func (r *ScorecardRepository) GetLatestByTeam(ctx context.Context, teamID uuid.UUID) (*entities.Scorecard, error) {
	var m models.Scorecard
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ScorecardRepository) ListLatest(ctx context.Context) ([]*entities.Scorecard, error) {
	// Newest row per team; older rows are history
	var ms []models.Scorecard
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where(`created_at = (SELECT MAX(s2.created_at) FROM scorecards s2 WHERE s2.team_id = scorecards.team_id)`).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Scorecard, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ScorecardRepository) toEntity(m *models.Scorecard) *entities.Scorecard {
	return &entities.Scorecard{
		ID:                  m.ID,
		TeamID:              m.TeamID,
		ChallengesCompleted: m.ChallengesCompleted,
		DistanceTraveled:    m.DistanceTraveled,
		DistanceEarned:      m.DistanceEarned,
		CreatedAt:           m.CreatedAt,
	}
}

func (r *ScorecardRepository) toModel(e *entities.Scorecard) *models.Scorecard {
	return &models.Scorecard{
		ID:                  e.ID,
		TeamID:              e.TeamID,
		ChallengesCompleted: e.ChallengesCompleted,
		DistanceTraveled:    e.DistanceTraveled,
		DistanceEarned:      e.DistanceEarned,
		CreatedAt:           e.CreatedAt,
	}
}
